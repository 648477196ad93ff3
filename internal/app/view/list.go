package view

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"adresses/internal/domain/entity"
	"adresses/internal/util"
)

// ListKind selects which addresses a list view shows.
type ListKind int

const (
	ListMine ListKind = iota
	ListPublic
)

const (
	descriptionLimit = 120

	untitled      = "Sans titre"
	badgePublic   = "Publique"
	badgePrivate  = "Privée"
	noRating      = "Pas de note"
	ownerTagMine  = "Moi"
	emptyMine     = "Aucune adresse pour le moment."
	emptyPublic   = "Aucune adresse publique trouvée."
	loadListError = "Impossible de charger les adresses."
)

// ListItem is one rendered row.
type ListItem struct {
	ID          string
	Title       string
	Description string
	Badge       string // Mine only.
	RatingLabel string
	OwnerTag    string
	Cover       string
}

// ListState is what the list view renders.
type ListState struct {
	Loading bool
	Items   []ListItem
	Empty   string // Empty-state text, set when the loaded list has no items.
	Failed  bool
}

// ListView renders the caller's addresses or other users' public addresses.
type ListView struct {
	kind        ListKind
	deps        Deps
	logger      *slog.Logger
	seq         atomic.Uint64
	unsubscribe func()

	mu    sync.Mutex
	state ListState
}

// NewListView creates the view and refreshes it whenever the session identity changes.
func NewListView(kind ListKind, deps Deps) *ListView {
	v := &ListView{kind: kind, deps: deps, logger: deps.logger()}
	if deps.Session != nil {
		v.unsubscribe = deps.Session.Subscribe(func(*entity.Identity) {
			v.Refresh(context.Background())
		})
	}

	return v
}

// Close stops following the session.
func (v *ListView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
}

// State returns a copy of the current state.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := v.state
	state.Items = append([]ListItem(nil), v.state.Items...)

	return state
}

// Refresh queries the list again. A response older than the latest refresh is dropped.
func (v *ListView) Refresh(ctx context.Context) {
	token := v.seq.Add(1)

	v.mu.Lock()
	v.state.Loading = true
	v.mu.Unlock()

	addresses, err := v.fetch(ctx)

	v.apply(token, addresses, err).show(v.deps.Notifier)
}

func (v *ListView) apply(token uint64, addresses []*entity.Address, err error) alert {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.seq.Load() {
		v.logger.Debug("Dropping stale list response", slog.Uint64("token", token))

		return alert{}
	}

	v.state.Loading = false
	if err != nil {
		v.logger.Error("List refresh failed", slog.Any("error", err))
		v.state.Failed = true
		v.state.Items = nil
		v.state.Empty = v.emptyText()

		return errorAlert(err, loadListError)
	}

	v.state.Failed = false
	v.state.Items = v.render(addresses)
	v.state.Empty = ""
	if len(v.state.Items) == 0 {
		v.state.Empty = v.emptyText()
	}

	return alert{}
}

func (v *ListView) fetch(ctx context.Context) ([]*entity.Address, error) {
	identity := v.deps.identity()
	if v.kind == ListMine {
		if identity == nil {
			return nil, nil
		}

		return v.deps.Addresses.ListMyAddresses(ctx, identity)
	}

	return v.deps.Addresses.ListPublicAddresses(ctx, identity)
}

func (v *ListView) emptyText() string {
	if v.kind == ListMine {
		return emptyMine
	}

	return emptyPublic
}

func (v *ListView) render(addresses []*entity.Address) []ListItem {
	items := make([]ListItem, 0, len(addresses))
	for _, a := range addresses {
		item := ListItem{
			ID:          a.ID,
			Title:       util.FirstNonEmpty(untitled, a.Title),
			Description: util.Truncate(a.Description, descriptionLimit),
			RatingLabel: RatingLabel(a.AverageRating, a.RatingsCount),
			Cover:       a.Cover(),
		}
		if v.kind == ListMine {
			item.Badge = badgePrivate
			if a.IsPublic {
				item.Badge = badgePublic
			}
			item.OwnerTag = ownerTagMine
		} else {
			item.OwnerTag = "par " + util.FirstNonEmpty(entity.AnonymousName, a.OwnerName)
		}
		items = append(items, item)
	}

	return items
}

// Select opens the detail view of an address.
func (v *ListView) Select(addressID string) {
	if v.deps.Navigator != nil {
		v.deps.Navigator.Navigate(RouteAddressDetail, addressID)
	}
}

// Create opens the creation view.
func (v *ListView) Create() {
	if v.deps.Navigator != nil {
		v.deps.Navigator.Navigate(RouteCreateAddress, "")
	}
}

// RatingLabel renders "4.5 / 5 · 2 avis", or "Pas de note" without ratings.
func RatingLabel(average *float64, count int) string {
	if average == nil || count == 0 {
		return noRating
	}

	return strconv.FormatFloat(*average, 'f', 1, 64) + " / 5 · " + strconv.Itoa(count) + " avis"
}

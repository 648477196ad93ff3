package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
	"adresses/internal/usecase"
)

const (
	// DefaultSearchDebounce is the pause in typing that triggers a place search.
	DefaultSearchDebounce = 400 * time.Millisecond
	minSearchLength       = 2

	labelCurrentPosition  = "Position actuelle"
	labelMapTap           = "Point choisi sur la carte"
	msgPermissionDenied   = "Permission de localisation refusée"
	msgPositionFailed     = "Position indisponible."
	msgSearchFailed       = "Recherche de lieu impossible."
	msgCreateAddressError = "Erreur lors de la création de l'adresse"
)

// CreateState is what the creation form renders.
type CreateState struct {
	Title         string
	Description   string
	IsPublic      bool
	Photo         *entity.Image
	Location      *entity.Location
	LocationLabel string
	Query         string
	Suggestions   []*entity.Place
	Submitting    bool
}

// CreateView is the address creation form.
type CreateView struct {
	deps      Deps
	logger    *slog.Logger
	debounce  time.Duration
	searchSeq atomic.Uint64

	mu    sync.Mutex
	state CreateState
	timer *time.Timer
}

// NewCreateView returns an empty private form.
func NewCreateView(deps Deps) *CreateView {
	return &CreateView{deps: deps, logger: deps.logger(), debounce: DefaultSearchDebounce}
}

// State returns a copy of the current state.
func (v *CreateView) State() CreateState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := v.state
	state.Suggestions = append([]*entity.Place(nil), v.state.Suggestions...)

	return state
}

func (v *CreateView) SetTitle(title string) {
	v.mu.Lock()
	v.state.Title = title
	v.mu.Unlock()
}

func (v *CreateView) SetDescription(description string) {
	v.mu.Lock()
	v.state.Description = description
	v.mu.Unlock()
}

func (v *CreateView) SetPublic(public bool) {
	v.mu.Lock()
	v.state.IsPublic = public
	v.mu.Unlock()
}

// SetPhoto picks the optional photo. A nil image removes it.
func (v *CreateView) SetPhoto(image *entity.Image) {
	v.mu.Lock()
	v.state.Photo = image
	v.mu.Unlock()
}

func (v *CreateView) setLocation(location entity.Location, label string) {
	v.mu.Lock()
	v.state.Location = &location
	v.state.LocationLabel = label
	v.mu.Unlock()
}

// TapMap uses a point picked on the map.
func (v *CreateView) TapMap(location entity.Location) {
	if !location.Valid() {
		notify(v.deps.Notifier, titleError, domainerrors.ErrLocationOutOfRange.Message())

		return
	}

	v.setLocation(location, labelMapTap)
}

// UseCurrentLocation asks the device for its position.
func (v *CreateView) UseCurrentLocation(ctx context.Context) {
	if v.deps.Geolocator == nil {
		notify(v.deps.Notifier, titlePermission, msgPermissionDenied)

		return
	}

	location, err := v.deps.Geolocator.CurrentPosition(ctx)
	switch {
	case errors.Is(err, ErrPermissionDenied):
		notify(v.deps.Notifier, titlePermission, msgPermissionDenied)
	case err != nil:
		v.logger.Warn("Geolocation failed", slog.Any("error", err))
		notify(v.deps.Notifier, titleError, msgPositionFailed)
	default:
		v.setLocation(location, labelCurrentPosition)
	}
}

// SetQuery updates the place search field. The search runs once typing pauses
// and only for queries of at least two characters.
func (v *CreateView) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Query = query
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSearchLength {
		v.searchSeq.Add(1)
		v.state.Suggestions = nil

		return
	}

	v.timer = time.AfterFunc(v.debounce, func() {
		v.search(context.Background(), trimmed)
	})
}

func (v *CreateView) search(ctx context.Context, query string) {
	token := v.searchSeq.Add(1)
	places, err := v.deps.Places.Search(ctx, query)

	v.mu.Lock()
	if token != v.searchSeq.Load() {
		v.mu.Unlock()

		return
	}
	if err == nil {
		v.state.Suggestions = places
	}
	v.mu.Unlock()

	if err != nil {
		v.logger.Warn("Place search failed", slog.String("query", query), slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgSearchFailed)
	}
}

// SelectPlace uses a search result as the location and clears the suggestions.
func (v *CreateView) SelectPlace(place *entity.Place) {
	if place == nil {
		return
	}

	v.searchSeq.Add(1)
	v.mu.Lock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	location := place.Location()
	v.state.Location = &location
	v.state.LocationLabel = place.Label
	v.state.Query = place.Label
	v.state.Suggestions = nil
	v.mu.Unlock()
}

// Submit validates the form locally, creates the address and navigates back.
// Local rejections never reach the backend.
func (v *CreateView) Submit(ctx context.Context) (*entity.Address, bool) {
	identity := v.deps.identity()

	v.mu.Lock()
	if v.state.Submitting {
		v.mu.Unlock()

		return nil, false
	}
	state := v.state
	rejected := rejectForm(state, identity)
	if rejected == nil {
		v.state.Submitting = true
	}
	v.mu.Unlock()

	if rejected != nil {
		notify(v.deps.Notifier, titleError, rejected.Message())

		return nil, false
	}
	defer v.setSubmitting(false)

	address, err := v.deps.Addresses.CreateAddress(ctx, identity, &usecase.CreateAddressInput{
		Title:       state.Title,
		Description: state.Description,
		IsPublic:    state.IsPublic,
		Location:    state.Location,
		Photo:       state.Photo,
	})
	if err != nil {
		v.logger.Error("Address creation failed", slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgCreateAddressError)

		return nil, false
	}

	v.logger.Info("Address created", slog.String("address_id", address.ID))
	if v.deps.Navigator != nil {
		v.deps.Navigator.Back()
	}

	return address, true
}

// rejectForm returns the first local validation failure of the form, or nil.
func rejectForm(state CreateState, identity *entity.Identity) domainerrors.AppError {
	switch {
	case strings.TrimSpace(state.Title) == "":
		return domainerrors.ErrTitleRequired
	case state.Location == nil:
		return domainerrors.ErrLocationRequired
	case identity == nil:
		return domainerrors.ErrNotSignedIn
	default:
		return nil
	}
}

func (v *CreateView) setSubmitting(submitting bool) {
	v.mu.Lock()
	v.state.Submitting = submitting
	v.mu.Unlock()
}

// Close cancels a pending search.
func (v *CreateView) Close() {
	v.searchSeq.Add(1)
	v.mu.Lock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.mu.Unlock()
}

package view

import (
	"context"
	"sync"
	"testing"

	"adresses/internal/app/session"
	"adresses/internal/domain/entity"
	mockUsecase "adresses/internal/mocks/usecase"
)

var (
	alice = &entity.Identity{UID: "alice", DisplayName: "Alice", Email: "alice@example.com"}
	bob   = &entity.Identity{UID: "bob", DisplayName: "Bob"}
)

type notice struct {
	Title   string
	Message string
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice

	// onNotify runs inside Notify, like a modal dialog that re-renders the screen.
	onNotify func()
}

func (n *fakeNotifier) Notify(title, message string) {
	n.mu.Lock()
	n.notices = append(n.notices, notice{Title: title, Message: message})
	onNotify := n.onNotify
	n.mu.Unlock()

	if onNotify != nil {
		onNotify()
	}
}

func (n *fakeNotifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]notice(nil), n.notices...)
}

func (n *fakeNotifier) last() notice {
	all := n.all()
	if len(all) == 0 {
		return notice{}
	}

	return all[len(all)-1]
}

type navigation struct {
	Route     Route
	AddressID string
}

type fakeNavigator struct {
	mu    sync.Mutex
	moves []navigation
	backs int
}

func (n *fakeNavigator) Navigate(route Route, addressID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.moves = append(n.moves, navigation{Route: route, AddressID: addressID})
}

func (n *fakeNavigator) Back() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.backs++
}

type fakeConfirmer struct {
	answer bool
	asked  []notice
}

func (c *fakeConfirmer) Confirm(_ context.Context, title, message string) bool {
	c.asked = append(c.asked, notice{Title: title, Message: message})

	return c.answer
}

type fakeGeolocator struct {
	location entity.Location
	err      error
}

func (g fakeGeolocator) CurrentPosition(context.Context) (entity.Location, error) {
	return g.location, g.err
}

type fixture struct {
	deps      Deps
	addresses *mockUsecase.MockAddressUsecase
	identity  *mockUsecase.MockIdentityUsecase
	places    *mockUsecase.MockPlaceUsecase
	session   *session.Session
	notifier  *fakeNotifier
	navigator *fakeNavigator
	confirmer *fakeConfirmer
}

func newFixture(t *testing.T, signedIn *entity.Identity) *fixture {
	t.Helper()

	f := &fixture{
		addresses: mockUsecase.NewMockAddressUsecase(t),
		identity:  mockUsecase.NewMockIdentityUsecase(t),
		places:    mockUsecase.NewMockPlaceUsecase(t),
		session:   session.New(),
		notifier:  &fakeNotifier{},
		navigator: &fakeNavigator{},
		confirmer: &fakeConfirmer{answer: true},
	}
	if signedIn != nil {
		f.session.Start(&entity.Session{Identity: signedIn, Token: "tok-" + signedIn.UID})
	}

	f.deps = Deps{
		Addresses: f.addresses,
		Identity:  f.identity,
		Places:    f.places,
		Session:   f.session,
		Navigator: f.navigator,
		Notifier:  f.notifier,
		Confirmer: f.confirmer,
	}

	return f
}

func floatPtr(v float64) *float64 {
	return &v
}

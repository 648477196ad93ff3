package view

import (
	"context"
	"testing"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthGate_FollowsSession(t *testing.T) {
	f := newFixture(t, nil)

	var switches []Stack
	g := NewAuthGate(f.deps, func(s Stack) { switches = append(switches, s) })
	defer g.Close()

	assert.Equal(t, StackAuth, g.Stack())

	f.identity.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{Email: "alice@example.com", Password: "secret"}).
		Return(&entity.Session{Identity: alice, Token: "tok"}, nil).Once()

	assert.True(t, g.SignIn(context.Background(), "alice@example.com", "secret"))
	assert.Equal(t, StackApp, g.Stack())
	assert.Equal(t, "tok", f.session.Token())

	f.session.UpdateIdentity(&entity.Identity{UID: "alice", DisplayName: "Alice B"})
	f.session.Clear()

	assert.Equal(t, StackAuth, g.Stack())
	assert.Equal(t, []Stack{StackApp, StackAuth}, switches)
}

func TestAuthGate_SignInFailure(t *testing.T) {
	f := newFixture(t, nil)
	g := NewAuthGate(f.deps, nil)
	defer g.Close()

	f.identity.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

	assert.False(t, g.SignIn(context.Background(), "alice@example.com", "nope"))
	assert.Equal(t, StackAuth, g.Stack())
	assert.Equal(t, notice{Title: "Erreur", Message: "Identifiants invalides ou compte introuvable."}, f.notifier.last())
}

func TestAuthGate_SignUp(t *testing.T) {
	f := newFixture(t, nil)
	g := NewAuthGate(f.deps, nil)
	defer g.Close()

	f.identity.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{Email: "bob@example.com", Password: "secret", DisplayName: "Bob"}).
		Return(&entity.Session{Identity: bob, Token: "tok-b"}, nil).Once()

	assert.True(t, g.SignUp(context.Background(), "bob@example.com", "secret", "Bob"))
	assert.Equal(t, StackApp, g.Stack())
}

func TestAuthGate_StartsOnAppWhenSignedIn(t *testing.T) {
	f := newFixture(t, alice)
	g := NewAuthGate(f.deps, nil)
	defer g.Close()

	assert.Equal(t, StackApp, g.Stack())
}

package view

import (
	"context"
	"log/slog"
	"sync"

	"adresses/internal/domain/entity"
	"adresses/internal/usecase"
)

// Stack is the set of screens the navigation shell shows.
type Stack string

const (
	StackAuth Stack = "auth" // Sign-in and sign-up.
	StackApp  Stack = "app"  // Address lists, map, creation and profile.
)

const (
	msgSignInFailed = "Connexion impossible."
	msgSignUpFailed = "Inscription impossible."
)

// AuthGate picks the auth stack or the app stack from the session.
type AuthGate struct {
	deps        Deps
	logger      *slog.Logger
	unsubscribe func()

	mu       sync.Mutex
	stack    Stack
	onChange func(Stack)
}

// NewAuthGate follows deps.Session. onChange, when not nil, is called each time the stack switches.
func NewAuthGate(deps Deps, onChange func(Stack)) *AuthGate {
	g := &AuthGate{deps: deps, logger: deps.logger(), onChange: onChange, stack: stackFor(deps.identity())}
	if deps.Session != nil {
		g.unsubscribe = deps.Session.Subscribe(g.follow)
	}

	return g
}

func stackFor(identity *entity.Identity) Stack {
	if identity == nil {
		return StackAuth
	}

	return StackApp
}

func (g *AuthGate) follow(identity *entity.Identity) {
	next := stackFor(identity)

	g.mu.Lock()
	changed := next != g.stack
	g.stack = next
	onChange := g.onChange
	g.mu.Unlock()

	if changed && onChange != nil {
		onChange(next)
	}
}

// Stack returns the current stack.
func (g *AuthGate) Stack() Stack {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.stack
}

// SignIn starts a session from credentials.
func (g *AuthGate) SignIn(ctx context.Context, email, password string) bool {
	session, err := g.deps.Identity.SignIn(ctx, &usecase.SignInInput{Email: email, Password: password})
	if err != nil {
		g.logger.Warn("Sign in failed", slog.Any("error", err))
		notifyError(g.deps.Notifier, err, msgSignInFailed)

		return false
	}

	g.deps.Session.Start(session)

	return true
}

// SignUp creates an account and starts its session.
func (g *AuthGate) SignUp(ctx context.Context, email, password, displayName string) bool {
	session, err := g.deps.Identity.SignUp(ctx, &usecase.SignUpInput{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		g.logger.Warn("Sign up failed", slog.Any("error", err))
		notifyError(g.deps.Notifier, err, msgSignUpFailed)

		return false
	}

	g.deps.Session.Start(session)

	return true
}

// Close stops following the session.
func (g *AuthGate) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

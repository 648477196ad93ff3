// Package view holds the screen controllers of the client application.
// Each view keeps explicit state behind a mutex, talks to the use cases, and reports
// through the Notifier, Navigator and Confirmer that the embedding client implements.
package view

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"adresses/internal/app/session"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
	"adresses/internal/usecase"
)

// Route names a screen.
type Route string

const (
	RouteMyAddresses     Route = "MyAddresses"
	RoutePublicAddresses Route = "PublicAddresses"
	RouteAddressDetail   Route = "AddressDetail"
	RouteCreateAddress   Route = "CreateAddress"
)

// Navigator moves between screens.
type Navigator interface {
	Navigate(route Route, addressID string)
	Back()
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(title, message string)
}

// Confirmer asks a yes/no question with the platform dialog.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

// ErrPermissionDenied is returned by a Geolocator when the user refuses location access.
var ErrPermissionDenied = errors.New("location permission denied")

// Geolocator yields the device position.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (entity.Location, error)
}

// Deps are the collaborators shared by every view. Unused fields may be left nil.
type Deps struct {
	Addresses  usecase.AddressUsecase
	Identity   usecase.IdentityUsecase
	Places     usecase.PlaceUsecase
	Session    *session.Session
	Navigator  Navigator
	Notifier   Notifier
	Confirmer  Confirmer
	Geolocator Geolocator
	Logger     *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (d Deps) identity() *entity.Identity {
	if d.Session == nil {
		return nil
	}

	return d.Session.Identity()
}

// Notification titles.
const (
	titleError        = "Erreur"
	titleInfo         = "Info"
	titleSuccess      = "Succès"
	titleForbidden    = "Action non autorisée"
	titleConfirm      = "Confirmation"
	titleSignIn       = "Connexion requise"
	titleProfile      = "Profil"
	titlePermission   = "Permission refusée"
	genericFailureMsg = "Une erreur est survenue."
)

// alert is a notification decided while the view lock is held and shown once it is released,
// so a Notifier may block or read the view state.
type alert struct {
	title   string
	message string
}

func (a alert) show(n Notifier) {
	if n != nil && a.message != "" {
		n.Notify(a.title, a.message)
	}
}

// errorAlert picks the catalogue message of a client-side error, or fallback for server failures.
func errorAlert(err error, fallback string) alert {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	switch {
	case !ok || appErr.HTTPCode() >= http.StatusInternalServerError:
		if fallback == "" {
			fallback = genericFailureMsg
		}

		return alert{title: titleError, message: fallback}
	case appErr.HTTPCode() == http.StatusForbidden:
		return alert{title: titleForbidden, message: appErr.Message()}
	default:
		return alert{title: titleError, message: appErr.Message()}
	}
}

func notifyError(n Notifier, err error, fallback string) {
	errorAlert(err, fallback).show(n)
}

func notify(n Notifier, title, message string) {
	alert{title: title, message: message}.show(n)
}

package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
	"adresses/internal/usecase"
)

const (
	msgProfileLoadFailed  = "Impossible de charger le profil."
	msgProfileSaved       = "Profil mis à jour avec succès."
	msgProfileSaveFailed  = "La mise à jour du profil a échoué."
	msgAvatarUploadFailed = "L’upload de l’avatar a échoué."
	msgSignOutFailed      = "La déconnexion a échoué."
)

// ProfileState is what the profile editor renders.
type ProfileState struct {
	Profile     *entity.Identity
	DisplayName string
	AvatarURL   string
	Avatar      *entity.Image // Picked avatar, uploaded on Save.
	Saving      bool
}

// ProfileView edits the display name and the avatar of the signed-in identity.
type ProfileView struct {
	deps   Deps
	logger *slog.Logger

	mu    sync.Mutex
	state ProfileState
}

func NewProfileView(deps Deps) *ProfileView {
	return &ProfileView{deps: deps, logger: deps.logger()}
}

func (v *ProfileView) State() ProfileState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Load fills the editor from the stored profile.
func (v *ProfileView) Load(ctx context.Context) {
	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, domainerrors.ErrNotSignedIn.Message())

		return
	}

	profile, err := v.deps.Identity.Profile(ctx, identity)
	if err != nil {
		v.logger.Warn("Profile load failed", slog.String("uid", identity.UID), slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgProfileLoadFailed)

		return
	}

	v.mu.Lock()
	v.applyLocked(profile)
	v.mu.Unlock()
}

func (v *ProfileView) applyLocked(profile *entity.Identity) {
	v.state.Profile = profile
	v.state.DisplayName = profile.DisplayName
	v.state.AvatarURL = profile.PhotoURL
	v.state.Avatar = nil
}

func (v *ProfileView) SetDisplayName(name string) {
	v.mu.Lock()
	v.state.DisplayName = name
	v.mu.Unlock()
}

func (v *ProfileView) SetAvatarURL(raw string) {
	v.mu.Lock()
	v.state.AvatarURL = raw
	v.mu.Unlock()
}

// PickAvatar selects an image to upload. It takes precedence over the avatar URL.
func (v *ProfileView) PickAvatar(image *entity.Image) {
	v.mu.Lock()
	v.state.Avatar = image
	v.mu.Unlock()
}

// Save writes the profile, then refreshes the session identity so every view sees the new name.
func (v *ProfileView) Save(ctx context.Context) bool {
	identity := v.deps.identity()
	if identity == nil {
		notify(v.deps.Notifier, titleSignIn, domainerrors.ErrNotSignedIn.Message())

		return false
	}

	v.mu.Lock()
	if v.state.Saving {
		v.mu.Unlock()

		return false
	}
	v.state.Saving = true
	state := v.state
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.state.Saving = false
		v.mu.Unlock()
	}()

	name := state.DisplayName
	input := &usecase.UpdateProfileInput{DisplayName: &name}
	if !state.Avatar.Empty() {
		input.Avatar = state.Avatar
	} else if avatarURL := strings.TrimSpace(state.AvatarURL); avatarURL != "" && avatarURL != identity.PhotoURL {
		input.AvatarURL = &avatarURL
	}

	profile, err := v.deps.Identity.UpdateProfile(ctx, identity, input)
	if err != nil {
		v.logger.Warn("Profile save failed", slog.String("uid", identity.UID), slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrAvatarUploadFailed) {
			notify(v.deps.Notifier, titleError, msgAvatarUploadFailed)
		} else {
			notifyError(v.deps.Notifier, err, msgProfileSaveFailed)
		}

		return false
	}

	v.mu.Lock()
	v.applyLocked(profile)
	v.mu.Unlock()

	if v.deps.Session != nil {
		v.deps.Session.UpdateIdentity(profile)
	}
	notify(v.deps.Notifier, titleProfile, msgProfileSaved)

	return true
}

// SignOut revokes the session on the server, then clears it locally.
func (v *ProfileView) SignOut(ctx context.Context) bool {
	identity := v.deps.identity()
	if identity == nil {
		return true
	}

	if err := v.deps.Identity.SignOut(ctx, identity); err != nil {
		v.logger.Warn("Sign out failed", slog.String("uid", identity.UID), slog.Any("error", err))
		notifyError(v.deps.Notifier, err, msgSignOutFailed)

		return false
	}

	if v.deps.Session != nil {
		v.deps.Session.Clear()
	}

	return true
}

package view

import (
	"context"
	"testing"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileView_LoadAndSave(t *testing.T) {
	f := newFixture(t, alice)
	v := NewProfileView(f.deps)
	ctx := context.Background()

	f.identity.EXPECT().Profile(mock.Anything, alice).Return(alice, nil).Once()
	v.Load(ctx)
	assert.Equal(t, "Alice", v.State().DisplayName)

	var seen []*entity.Identity
	unsubscribe := f.session.Subscribe(func(identity *entity.Identity) { seen = append(seen, identity) })
	defer unsubscribe()

	updated := &entity.Identity{UID: "alice", DisplayName: "Alice B", PhotoURL: "https://cdn.example.com/a.png"}
	f.identity.EXPECT().UpdateProfile(mock.Anything, alice, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return *in.DisplayName == "Alice B" && *in.AvatarURL == "https://cdn.example.com/a.png" && in.Avatar == nil
	})).Return(updated, nil).Once()

	v.SetDisplayName("Alice B")
	v.SetAvatarURL(" https://cdn.example.com/a.png ")
	require.True(t, v.Save(ctx))

	assert.Equal(t, notice{Title: "Profil", Message: "Profil mis à jour avec succès."}, f.notifier.last())
	assert.Equal(t, "Alice B", f.session.Identity().DisplayName)
	assert.Equal(t, "tok-alice", f.session.Token())
	require.Len(t, seen, 1)
	assert.Equal(t, updated, seen[0])
}

func TestProfileView_PickedAvatarWins(t *testing.T) {
	f := newFixture(t, alice)
	v := NewProfileView(f.deps)

	avatar := &entity.Image{Data: []byte("png"), ContentType: "image/png"}
	f.identity.EXPECT().UpdateProfile(mock.Anything, alice, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Avatar == avatar && in.AvatarURL == nil
	})).Return(nil, domainerrors.ErrAvatarUploadFailed.WithDetails("quota")).Once()

	v.SetAvatarURL("https://cdn.example.com/b.png")
	v.PickAvatar(avatar)

	assert.False(t, v.Save(context.Background()))
	assert.Equal(t, notice{Title: "Erreur", Message: "L’upload de l’avatar a échoué."}, f.notifier.last())
	assert.Equal(t, "Alice", f.session.Identity().DisplayName)
	assert.False(t, v.State().Saving)
}

func TestProfileView_SaveErrors(t *testing.T) {
	f := newFixture(t, alice)
	v := NewProfileView(f.deps)

	f.identity.EXPECT().UpdateProfile(mock.Anything, alice, mock.Anything).Return(nil, domainerrors.ErrProfileUpdateFailed).Once()
	assert.False(t, v.Save(context.Background()))
	assert.Equal(t, notice{Title: "Erreur", Message: "La mise à jour du profil a échoué."}, f.notifier.last())

	f.identity.EXPECT().UpdateProfile(mock.Anything, alice, mock.Anything).Return(nil, domainerrors.ErrInvalidAvatarURL).Once()
	assert.False(t, v.Save(context.Background()))
	assert.Equal(t, domainerrors.ErrInvalidAvatarURL.Message(), f.notifier.last().Message)
}

func TestProfileView_SignOut(t *testing.T) {
	f := newFixture(t, alice)
	v := NewProfileView(f.deps)
	ctx := context.Background()

	f.identity.EXPECT().SignOut(mock.Anything, alice).Return(domainerrors.ErrSignOutFailed).Once()
	assert.False(t, v.SignOut(ctx))
	assert.True(t, f.session.SignedIn())
	assert.Equal(t, notice{Title: "Erreur", Message: "La déconnexion a échoué."}, f.notifier.last())

	f.identity.EXPECT().SignOut(mock.Anything, alice).Return(nil).Once()
	assert.True(t, v.SignOut(ctx))
	assert.False(t, f.session.SignedIn())
}

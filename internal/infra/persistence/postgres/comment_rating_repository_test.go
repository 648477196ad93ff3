package postgres

import (
	"context"
	"testing"
	"time"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t))
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	first := &entity.Comment{AddressID: "a1", Text: "premier", AuthorUID: "u1", AuthorName: "U1", CreatedAt: base}
	second := &entity.Comment{AddressID: "a1", Text: "second", AuthorUID: "u2", AuthorName: "U2", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.CreateComment(ctx, first))
	require.NoError(t, repo.CreateComment(ctx, second))
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := repo.FindCommentsByAddress(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Text)
	assert.Equal(t, "premier", list[1].Text)

	found, err := repo.FindCommentByID(ctx, "a1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", found.AuthorUID)

	_, err = repo.FindCommentByID(ctx, "other-address", first.ID)
	assert.True(t, errors.Is(err, repository.ErrCommentNotFound))

	require.NoError(t, repo.DeleteComment(ctx, "a1", first.ID))
	err = repo.DeleteComment(ctx, "a1", first.ID)
	assert.True(t, errors.Is(err, repository.ErrCommentNotFound))
}

func TestRatingRepository_UpsertPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewRatingRepository(newTestDB(t))

	initial := &entity.Rating{AddressID: "a1", UserUID: "u1", Stars: 2}
	require.NoError(t, repo.UpsertRating(ctx, initial))
	createdAt := initial.CreatedAt

	time.Sleep(5 * time.Millisecond)

	again := &entity.Rating{AddressID: "a1", UserUID: "u1", Stars: 5}
	require.NoError(t, repo.UpsertRating(ctx, again))
	require.NoError(t, repo.UpsertRating(ctx, &entity.Rating{AddressID: "a1", UserUID: "u2", Stars: 3}))

	ratings, err := repo.FindRatingsByAddress(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	byUser := map[string]*entity.Rating{}
	for _, r := range ratings {
		byUser[r.UserUID] = r
	}
	assert.Equal(t, 5, byUser["u1"].Stars)
	assert.Equal(t, 3, byUser["u2"].Stars)
	assert.True(t, byUser["u1"].CreatedAt.Equal(createdAt))
	assert.True(t, again.CreatedAt.Equal(createdAt))
	assert.True(t, again.UpdatedAt.After(createdAt))
}

func TestRatingRepository_RejectsStarsOutOfRange(t *testing.T) {
	ctx := context.Background()
	repo := NewRatingRepository(newTestDB(t))

	for _, stars := range []int{0, 6} {
		err := repo.UpsertRating(ctx, &entity.Rating{AddressID: "a1", UserUID: "u1", Stars: stars})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStars, "stars=%d", stars)
	}

	ratings, err := repo.FindRatingsByAddress(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	addresses := NewAddressRepository(db)
	address := createTestAddress(t, addresses, "alice", true, time.Now())
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewRatingRepository().UpsertRating(ctx, &entity.Rating{AddressID: address.ID, UserUID: "u1", Stars: 4}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	ratings, err := NewRatingRepository(db).FindRatingsByAddress(ctx, address.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewRatingRepository().UpsertRating(ctx, &entity.Rating{AddressID: address.ID, UserUID: "u1", Stars: 4}); err != nil {
			return err
		}
		avg := 4.0

		return f.NewAddressRepository().UpdateRatingAggregate(ctx, address.ID, &avg, 1)
	})
	require.NoError(t, err)

	found, err := addresses.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.RatingsCount)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Email: " Camille@Example.fr ", DisplayName: "Camille", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.NotEmpty(t, user.UID)
	assert.Equal(t, "camille@example.fr", user.Email)

	err := repo.CreateUser(ctx, &entity.User{Email: "camille@example.fr", PasswordHash: "hash"})
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))

	found, err := repo.FindUserByEmail(ctx, "CAMILLE@example.fr")
	require.NoError(t, err)
	assert.Equal(t, user.UID, found.UID)

	name := "Cam"
	photo := "https://cdn.example.fr/a.png"
	updated, err := repo.UpdateProfile(ctx, user.UID, entity.ProfileUpdate{DisplayName: &name, PhotoURL: &photo})
	require.NoError(t, err)
	assert.Equal(t, "Cam", updated.DisplayName)
	assert.Equal(t, photo, updated.PhotoURL)

	version, err := repo.IncrementTokenVersion(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	_, err = repo.FindUserByUID(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	_, err = repo.IncrementTokenVersion(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

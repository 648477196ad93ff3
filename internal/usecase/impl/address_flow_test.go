package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"adresses/config"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	"adresses/internal/infra/persistence/postgres"
	"adresses/internal/infra/pubsub"
	"adresses/internal/infra/qrcode"
	"adresses/internal/infra/storage"
	mockService "adresses/internal/mocks/service"
	"adresses/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// failingDeleteStore behaves like the wrapped store except that every delete fails.
type failingDeleteStore struct {
	service.ObjectStore
}

func (s failingDeleteStore) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

type addressFlow struct {
	svc      usecase.AddressUsecase
	db       *gorm.DB
	store    service.ObjectStore
	comments repository.CommentRepository
	ratings  repository.RatingRepository
}

func newAddressFlow(t *testing.T, wrapStore func(service.ObjectStore) service.ObjectStore) *addressFlow {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true, Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := storage.NewBlobStore(bucket, "/media")
	if wrapStore != nil {
		store = wrapStore(store)
	}

	metrics := mockService.NewMockMetricsRecorder(t)
	metrics.EXPECT().StorageCleanupFailed(mock.Anything).Return().Maybe()

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	comments := postgres.NewCommentRepository(db)
	ratings := postgres.NewRatingRepository(db)

	svc := NewAddressService(AddressServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AddressRepo: postgres.NewAddressRepository(db),
		CommentRepo: comments,
		RatingRepo:  ratings,
		ObjectStore: store,
		Publisher:   pubsub.NewNoopPublisher(discard),
		QRCode:      qrcode.NewQRCodeService(0, "", ""),
		Metrics:     metrics,
		Config:      &config.Config{Storage: &config.StorageConfig{MaxUploadSize: 1 << 20}},
		Logger:      discard,
	})

	return &addressFlow{svc: svc, db: db, store: store, comments: comments, ratings: ratings}
}

func (f *addressFlow) countAddresses(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Table("addresses").Count(&n).Error)

	return n
}

func (f *addressFlow) create(t *testing.T, owner *entity.Identity, title string, public bool) *entity.Address {
	t.Helper()

	address, err := f.svc.CreateAddress(context.Background(), owner, &usecase.CreateAddressInput{
		Title:    title,
		IsPublic: public,
		Location: &entity.Location{Latitude: 48.8566, Longitude: 2.3522},
	})
	require.NoError(t, err)

	return address
}

func TestAddressFlow_OwnerIsCreator(t *testing.T) {
	f := newAddressFlow(t, nil)

	created := f.create(t, alice, "Boulangerie", false)

	detail, err := f.svc.GetAddress(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Address.OwnerUID)
	assert.Equal(t, "Alice", detail.Address.OwnerName)
	assert.Nil(t, detail.Address.AverageRating)
	assert.Equal(t, 0, detail.Address.RatingsCount)
}

func TestAddressFlow_InvalidFormsNeverWrite(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()

	_, err := f.svc.CreateAddress(ctx, alice, &usecase.CreateAddressInput{
		Title:    " ",
		Location: &entity.Location{Latitude: 1, Longitude: 1},
	})
	assert.ErrorIs(t, err, domainerrors.ErrTitleRequired)
	assert.Equal(t, domainerrors.ErrTitleRequired.Message(), "Titre requis")

	_, err = f.svc.CreateAddress(ctx, alice, &usecase.CreateAddressInput{Title: "Café"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationRequired)
	assert.Equal(t, domainerrors.ErrLocationRequired.Message(), "Choisissez une localisation")

	assert.Equal(t, int64(0), f.countAddresses(t))
}

func TestAddressFlow_CreateWithPhoto(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()

	created, err := f.svc.CreateAddress(ctx, alice, &usecase.CreateAddressInput{
		Title:    "Marché",
		Location: &entity.Location{Latitude: 43.6, Longitude: 1.44},
		Photo:    &entity.Image{Data: []byte("jpeg"), ContentType: "image/jpeg"},
	})
	require.NoError(t, err)
	require.Len(t, created.Images, 1)

	keys, err := f.store.List(ctx, "addresses/"+created.ID+"/")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "/media/"+keys[0], created.Images[0])
}

func TestAddressFlow_RatingAggregate(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()
	carol := &entity.Identity{UID: "carol"}

	created := f.create(t, alice, "Musée", true)

	summary, err := f.svc.SubmitRating(ctx, bob, created.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.InDelta(t, 5.0, *summary.Average, 1e-9)
	assert.Equal(t, 1, summary.Count)

	_, err = f.svc.SubmitRating(ctx, carol, created.ID, 4)
	require.NoError(t, err)
	summary, err = f.svc.SubmitRating(ctx, carol, created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Sum)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 3.5, *summary.Average, 1e-9)

	detail, err := f.svc.GetAddress(ctx, carol, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Address.RatingsCount)
	require.NotNil(t, detail.Address.AverageRating)
	assert.InDelta(t, 3.5, *detail.Address.AverageRating, 1e-9)
	assert.Equal(t, 2, detail.Rating.Mine)
}

func TestAddressFlow_CommentAuthorship(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()

	created := f.create(t, alice, "Parc", true)

	detail, err := f.svc.AddComment(ctx, alice, created.ID, "  Super endroit  ")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	comment := detail.Comments[0]
	assert.Equal(t, "Super endroit", comment.Text)

	_, err = f.svc.DeleteComment(ctx, bob, created.ID, comment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotAuthor)

	remaining, err := f.comments.FindCommentsByAddress(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	detail, err = f.svc.DeleteComment(ctx, alice, created.ID, comment.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Comments)
}

func TestAddressFlow_NonOwnerDeleteIsNoop(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()

	created := f.create(t, alice, "Plage", true)

	err := f.svc.DeleteAddress(ctx, bob, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotOwner)

	_, err = f.svc.GetAddress(ctx, bob, created.ID)
	require.NoError(t, err)
}

func TestAddressFlow_OwnerDeleteCascadesEvenWhenStorageFails(t *testing.T) {
	var inner service.ObjectStore
	f := newAddressFlow(t, func(s service.ObjectStore) service.ObjectStore {
		inner = s

		return failingDeleteStore{ObjectStore: s}
	})
	ctx := context.Background()

	created := f.create(t, alice, "Resto", true)
	_, err := f.svc.UploadImage(ctx, alice, created.ID, &entity.Image{Data: []byte("png"), ContentType: "image/png"})
	require.NoError(t, err)
	_, err = f.svc.AddComment(ctx, bob, created.ID, "Miam")
	require.NoError(t, err)
	_, err = f.svc.SubmitRating(ctx, bob, created.ID, 4)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAddress(ctx, alice, created.ID))

	_, err = f.svc.GetAddress(ctx, alice, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	comments, err := f.comments.FindCommentsByAddress(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	ratings, err := f.ratings.FindRatingsByAddress(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	// The image stays behind as an orphan.
	keys, err := inner.List(ctx, "addresses/"+created.ID+"/")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestAddressFlow_MineAndPublicLists(t *testing.T) {
	f := newAddressFlow(t, nil)
	ctx := context.Background()

	private := f.create(t, alice, "Secret", false)
	shared := f.create(t, alice, "Partagée", true)
	other := f.create(t, bob, "Chez Bob", true)

	mine, err := f.svc.ListMyAddresses(ctx, alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{private.ID, shared.ID}, addressIDs(mine))

	public, err := f.svc.ListPublicAddresses(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, addressIDs(public))

	public, err = f.svc.ListPublicAddresses(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{shared.ID}, addressIDs(public))

	_, err = f.svc.GetAddress(ctx, bob, private.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressFlow_ShareCode(t *testing.T) {
	f := newAddressFlow(t, nil)

	created := f.create(t, alice, "Librairie", true)

	code, err := f.svc.ShareCode(context.Background(), bob, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "adresses://address/"+created.ID, code.Link)
	assert.NotEmpty(t, code.PNG)
}

func addressIDs(addresses []*entity.Address) []string {
	ids := make([]string, 0, len(addresses))
	for _, a := range addresses {
		ids = append(ids, a.ID)
	}

	return ids
}

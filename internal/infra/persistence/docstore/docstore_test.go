package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"adresses/internal/domain/entity"
	"adresses/internal/domain/repository"
	"adresses/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAddressMapping(t *testing.T) {
	avg := 4.5
	address := &entity.Address{
		ID:            "a1",
		Title:         "Le Comptoir",
		Description:   "Bistrot",
		IsPublic:      true,
		Location:      entity.Location{Latitude: 48.8566, Longitude: 2.3522},
		OwnerUID:      "u1",
		OwnerName:     "Camille",
		Images:        []string{"/media/addresses/a1/1.jpg"},
		AverageRating: &avg,
		RatingsCount:  2,
	}

	doc := fromAddressDomain(address)
	assert.Equal(t, 48.8566, doc.Location.Latitude)
	assert.Equal(t, 2.3522, doc.Location.Longitude)
	assert.True(t, doc.CreatedAt.IsZero(), "zero createdAt lets the server timestamp apply")

	back := toAddressDomain("a1", doc)
	assert.Equal(t, address.Title, back.Title)
	assert.Equal(t, address.Location, back.Location)
	assert.Equal(t, address.Images, back.Images)
	assert.Equal(t, 2, back.RatingsCount)

	doc.Images[0] = "mutated"
	assert.Equal(t, "/media/addresses/a1/1.jpg", address.Images[0])
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "missing")))
	assert.False(t, isNotFound(status.Error(codes.PermissionDenied, "nope")))
	assert.False(t, isNotFound(nil))
}

// newEmulatorClient connects to the Firestore emulator, skipping when none is running.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "demo-adresses")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestEmulator_AddressLifecycle(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()

	addresses := NewAddressRepository(client)
	comments := NewCommentRepository(client)
	ratings := NewRatingRepository(client)
	tm := NewTransactionManager(client)

	owner := "owner-" + time.Now().Format("150405.000000")
	address := &entity.Address{
		ID:        addresses.NextID(ctx),
		Title:     "Chez Paul",
		IsPublic:  true,
		Location:  entity.Location{Latitude: 45.76, Longitude: 4.83},
		OwnerUID:  owner,
		OwnerName: "Paul",
	}
	require.NoError(t, addresses.CreateAddress(ctx, address))

	mine, err := addresses.FindAddressesByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, addresses.AppendImage(ctx, address.ID, "/media/one.jpg"))
	require.NoError(t, comments.CreateComment(ctx, &entity.Comment{AddressID: address.ID, Text: "Super", AuthorUID: "c1", AuthorName: "C"}))

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		list, err := f.NewRatingRepository().FindRatingsByAddress(ctx, address.ID)
		if err != nil {
			return err
		}
		list = append(list, &entity.Rating{AddressID: address.ID, UserUID: "c1", Stars: 5})
		summary := entity.AggregateRatings(list, "")
		if err := f.NewRatingRepository().UpsertRating(ctx, &entity.Rating{AddressID: address.ID, UserUID: "c1", Stars: 5}); err != nil {
			return err
		}

		return f.NewAddressRepository().UpdateRatingAggregate(ctx, address.ID, summary.Average, summary.Count)
	})
	require.NoError(t, err)

	found, err := addresses.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/media/one.jpg"}, found.Images)
	assert.Equal(t, 1, found.RatingsCount)

	require.NoError(t, addresses.DeleteCommentsAndRatings(ctx, address.ID))
	require.NoError(t, addresses.DeleteAddress(ctx, address.ID))

	left, err := comments.FindCommentsByAddress(ctx, address.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	leftRatings, err := ratings.FindRatingsByAddress(ctx, address.ID)
	require.NoError(t, err)
	assert.Empty(t, leftRatings)

	_, err = addresses.FindAddressByID(ctx, address.ID)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}

package docstore

import (
	"context"
	"time"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// ratingRepository implements the domain.RatingRepository interface on addresses/{id}/ratings,
// one document per rater keyed by uid.
type ratingRepository struct {
	scope
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &ratingRepository{scope: scope{client: client}}
}

// UpsertRating merges stars into the rater's document. createdAt is only written on first submission.
func (repo *ratingRepository) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	ref := repo.ratings(rating.AddressID).Doc(rating.UserUID)

	createdAt := time.Time{}
	snap, err := repo.get(ctx, ref)
	switch {
	case err == nil:
		var existing ratingDocument
		if err := snap.DataTo(&existing); err != nil {
			return errors.Wrap(err, "failed to decode rating")
		}
		createdAt = existing.CreatedAt
	case isNotFound(err):
	default:
		return errors.Wrap(err, "failed to read rating")
	}

	now := time.Now().UTC()
	data := map[string]any{
		"stars":     rating.Stars,
		"updatedAt": firestore.ServerTimestamp,
	}
	if createdAt.IsZero() {
		data["createdAt"] = firestore.ServerTimestamp
		createdAt = now
	}

	if err := repo.set(ctx, ref, data, firestore.MergeAll); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.CreatedAt = createdAt
	rating.UpdatedAt = now

	return nil
}

// FindRatingsByAddress lists every rating of an address.
func (repo *ratingRepository) FindRatingsByAddress(ctx context.Context, addressID string) ([]*entity.Rating, error) {
	snaps, err := repo.documents(ctx, repo.ratings(addressID).Query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by address")
	}

	ratings := make([]*entity.Rating, 0, len(snaps))
	for _, snap := range snaps {
		var doc ratingDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode rating %s", snap.Ref.ID)
		}
		ratings = append(ratings, toRatingDomain(addressID, snap.Ref.ID, &doc))
	}

	return ratings, nil
}

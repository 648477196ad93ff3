package repository

import (
	"context"

	"adresses/internal/domain/entity"
)

// RatingRepository defines the persistence operations on ratings nested under an address.
type RatingRepository interface {
	// UpsertRating creates or overwrites the rating keyed by (AddressID, UserUID).
	// CreatedAt of an existing rating is preserved.
	UpsertRating(ctx context.Context, rating *entity.Rating) error

	// FindRatingsByAddress lists every rating of an address.
	FindRatingsByAddress(ctx context.Context, addressID string) ([]*entity.Rating, error)
}

package postgres

import (
	"context"
	"time"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// UpsertRating inserts the rating or overwrites stars and updated_at of the existing one.
func (repo *ratingRepository) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	now := time.Now()
	ratingM := &model.RatingModel{
		AddressID: rating.AddressID,
		UserUID:   rating.UserUID,
		Stars:     rating.Stars,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address_id"}, {Name: "user_uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidStars.WrapMessage("stars rejected by the store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	var stored model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("address_id = ? AND user_uid = ?", rating.AddressID, rating.UserUID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to read back rating")
	}

	rating.CreatedAt = stored.CreatedAt
	rating.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindRatingsByAddress lists every rating of an address.
func (repo *ratingRepository) FindRatingsByAddress(ctx context.Context, addressID string) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("address_id = ?", addressID).
		Order("created_at ASC").
		Find(&ratingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by address")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, &entity.Rating{
			AddressID: ratingM.AddressID,
			UserUID:   ratingM.UserUID,
			Stars:     ratingM.Stars,
			CreatedAt: ratingM.CreatedAt,
			UpdatedAt: ratingM.UpdatedAt,
		})
	}

	return ratings, nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB

	// lockReads makes FindAddressByID take a row lock, used inside transactions.
	lockReads bool
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// NextID allocates a UUIDv7 so ids sort by creation time.
func (repo *addressRepository) NextID(_ context.Context) string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	if addressM.ID == "" {
		addressM.ID = repo.NextID(ctx)
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCreateAddressFailed.WrapMessage("address id already allocated")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateAddressFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id string) (*entity.Address, error) {
	q := repo.db.WithContext(ctx)
	if repo.lockReads {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var addressM model.AddressModel
	err := q.Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves every address of an owner, newest first.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerUID string) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		Order("created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	return toAddressDomains(addressModels), nil
}

// FindPublicAddresses retrieves every public address, newest first.
func (repo *addressRepository) FindPublicAddresses(ctx context.Context) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find public addresses")
	}

	return toAddressDomains(addressModels), nil
}

// AppendImage locks the address row and appends url to its images.
func (repo *addressRepository) AppendImage(ctx context.Context, id string, url string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var addressM model.AddressModel
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id = ?", id).
			First(&addressM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to lock address")
		}

		images := append(datatypes.JSONSlice[string]{}, addressM.Images...)
		images = append(images, url)

		return tx.Model(&model.AddressModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"images":     images,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append image")
	}

	return nil
}

// UpdateRatingAggregate writes the derived rating fields onto the address.
func (repo *addressRepository) UpdateRatingAggregate(ctx context.Context, id string, average *float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": average,
			"ratings_count":  count,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating aggregate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteCommentsAndRatings removes every comment and rating under the address in one transaction.
func (repo *addressRepository) DeleteCommentsAndRatings(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("address_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}
		if err := tx.Where("address_id = ?", id).Delete(&model.RatingModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete ratings")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete nested resources")
	}

	return nil
}

// DeleteAddress removes the address record by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	images := make([]string, 0, len(data.Images))
	images = append(images, data.Images...)

	return &entity.Address{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		Location: entity.Location{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		OwnerUID:      data.OwnerUID,
		OwnerName:     data.OwnerName,
		Images:        images,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		AverageRating: data.AverageRating,
		RatingsCount:  data.RatingsCount,
	}
}

func toAddressDomains(models []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(models))
	for _, addressM := range models {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	images := make(datatypes.JSONSlice[string], 0, len(data.Images))
	images = append(images, data.Images...)

	return &model.AddressModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		IsPublic:      data.IsPublic,
		Latitude:      data.Location.Latitude,
		Longitude:     data.Location.Longitude,
		OwnerUID:      data.OwnerUID,
		OwnerName:     data.OwnerName,
		Images:        images,
		AverageRating: data.AverageRating,
		RatingsCount:  data.RatingsCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

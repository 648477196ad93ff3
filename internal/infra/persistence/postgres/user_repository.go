package postgres

import (
	"context"
	"strings"
	"time"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new account. Emails are stored lower-cased.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.UID == "" {
		userM.UID = uuid.NewString()
	}
	userM.Email = normalizeEmail(userM.Email)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.UID = userM.UID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByUID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByUID(ctx context.Context, uid string) (*entity.User, error) {
	return repo.findOne(ctx, "uid = ?", uid)
}

// FindUserByEmail retrieves a single user by their email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", normalizeEmail(email))
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile applies the non-nil fields of update and returns the stored user.
func (repo *userRepository) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if update.DisplayName != nil {
		updates["display_name"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		updates["photo_url"] = *update.PhotoURL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", uid).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindUserByUID(ctx, uid)
}

// IncrementTokenVersion bumps the token version and returns the new value.
func (repo *userRepository) IncrementTokenVersion(ctx context.Context, uid string) (int, error) {
	var version int
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserModel{}).
			Where("uid = ?", uid).
			Updates(map[string]any{
				"token_version": gorm.Expr("token_version + 1"),
				"updated_at":    time.Now(),
			})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to bump token version")
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		return tx.Model(&model.UserModel{}).
			Where("uid = ?", uid).
			Pluck("token_version", &version).Error
	})
	if err != nil {
		return 0, err
	}

	return version, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		UID:          data.UID,
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PhotoURL:     data.PhotoURL,
		PasswordHash: data.PasswordHash,
		TokenVersion: data.TokenVersion,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UID:          data.UID,
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PhotoURL:     data.PhotoURL,
		PasswordHash: data.PasswordHash,
		TokenVersion: data.TokenVersion,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

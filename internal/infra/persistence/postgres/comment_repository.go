package postgres

import (
	"context"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"
	"adresses/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// CreateComment persists a comment and sets its ID and CreatedAt.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)
	if commentM.ID == "" {
		commentM.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindCommentByID retrieves a comment under its address.
func (repo *commentRepository) FindCommentByID(ctx context.Context, addressID, commentID string) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("address_id = ? AND id = ?", addressID, commentID).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// FindCommentsByAddress lists the comments of an address, newest first.
func (repo *commentRepository) FindCommentsByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("address_id = ?", addressID).
		Order("created_at DESC").
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comments by address")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// DeleteComment removes one comment.
func (repo *commentRepository) DeleteComment(ctx context.Context, addressID, commentID string) error {
	result := repo.db.WithContext(ctx).
		Where("address_id = ? AND id = ?", addressID, commentID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:         data.ID,
		AddressID:  data.AddressID,
		Text:       data.Text,
		AuthorUID:  data.AuthorUID,
		AuthorName: data.AuthorName,
		CreatedAt:  data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         data.ID,
		AddressID:  data.AddressID,
		Text:       data.Text,
		AuthorUID:  data.AuthorUID,
		AuthorName: data.AuthorName,
		CreatedAt:  data.CreatedAt,
	}
}

package repository

import (
	"context"

	"adresses/internal/domain/entity"
)

// CommentRepository defines the persistence operations on comments nested under an address.
type CommentRepository interface {
	// CreateComment persists a comment and sets its ID and CreatedAt.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// FindCommentByID returns ErrCommentNotFound if the comment does not exist under addressID.
	FindCommentByID(ctx context.Context, addressID, commentID string) (*entity.Comment, error)

	// FindCommentsByAddress lists the comments of an address, newest first.
	FindCommentsByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error)

	DeleteComment(ctx context.Context, addressID, commentID string) error
}

package docstore

import (
	"context"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// commentRepository implements the domain.CommentRepository interface on addresses/{id}/comments.
type commentRepository struct {
	scope
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &commentRepository{scope: scope{client: client}}
}

// CreateComment writes a comment with a server timestamp.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	ref := repo.comments(comment.AddressID).NewDoc()
	doc := &commentDocument{
		Text:       comment.Text,
		AuthorUID:  comment.AuthorUID,
		AuthorName: comment.AuthorName,
		CreatedAt:  comment.CreatedAt,
	}

	createdAt, err := repo.create(ctx, ref, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = ref.ID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = createdAt
	}

	return nil
}

// FindCommentByID retrieves a comment under its address.
func (repo *commentRepository) FindCommentByID(ctx context.Context, addressID, commentID string) (*entity.Comment, error) {
	snap, err := repo.get(ctx, repo.comments(addressID).Doc(commentID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	var doc commentDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode comment")
	}

	return toCommentDomain(addressID, snap.Ref.ID, &doc), nil
}

// FindCommentsByAddress lists the comments of an address, newest first.
func (repo *commentRepository) FindCommentsByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error) {
	snaps, err := repo.documents(ctx, repo.comments(addressID).OrderBy("createdAt", firestore.Desc))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comments by address")
	}

	comments := make([]*entity.Comment, 0, len(snaps))
	for _, snap := range snaps {
		var doc commentDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode comment %s", snap.Ref.ID)
		}
		comments = append(comments, toCommentDomain(addressID, snap.Ref.ID, &doc))
	}

	return comments, nil
}

// DeleteComment removes one comment. The comment must exist.
func (repo *commentRepository) DeleteComment(ctx context.Context, addressID, commentID string) error {
	ref := repo.comments(addressID).Doc(commentID)

	var err error
	if repo.tx != nil {
		err = repo.tx.Delete(ref, firestore.Exists)
	} else {
		_, err = ref.Delete(ctx, firestore.Exists)
	}
	if err != nil {
		if isNotFound(err) {
			return repository.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

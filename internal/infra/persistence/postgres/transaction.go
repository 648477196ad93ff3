package postgres

import (
	"context"

	"adresses/internal/domain/repository"
	"adresses/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs units of work inside gorm transactions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. A panic in fn rolls back and is re-raised.
func (m *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil && errors.Is(err, fnErr):
		return fnErr
	case fnErr != nil:
		return errors.Join(fnErr, errors.Wrap(err, "rollback"))
	default:
		return errors.Wrap(err, "transaction")
	}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

// NewAddressRepository locks the address rows it reads until the transaction ends.
func (r txRepositories) NewAddressRepository() repository.AddressRepository {
	return &addressRepository{db: r.tx, lockReads: true}
}

func (r txRepositories) NewCommentRepository() repository.CommentRepository {
	return NewCommentRepository(r.tx)
}

func (r txRepositories) NewRatingRepository() repository.RatingRepository {
	return NewRatingRepository(r.tx)
}

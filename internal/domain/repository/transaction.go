package repository

import "context"

// TransactionManager runs a unit of work atomically on the configured store.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls everything back otherwise.
	// Document stores require every read to happen before the first write.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewCommentRepository() CommentRepository
	NewRatingRepository() RatingRepository
}

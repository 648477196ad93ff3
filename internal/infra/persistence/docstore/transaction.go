package docstore

import (
	"context"
	"fmt"

	"adresses/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface with Firestore transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory creates repositories bound to one Firestore transaction.
type firestoreRepositoryFactory struct {
	scope scope
}

// NewAddressRepository creates a new address repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return &addressRepository{scope: f.scope}
}

// NewCommentRepository creates a new comment repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return &commentRepository{scope: f.scope}
}

// NewRatingRepository creates a new rating repository instance bound to the transaction.
func (f *firestoreRepositoryFactory) NewRatingRepository() repository.RatingRepository {
	return &ratingRepository{scope: f.scope}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside a Firestore transaction. Firestore retries fn on contention,
// so fn must not have side effects outside the store.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{scope: scope{client: tm.client, tx: tx}})
	})
	if err != nil {
		return fmt.Errorf("firestore transaction failed: %w", err)
	}

	return nil
}

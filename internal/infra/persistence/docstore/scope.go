package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// scope runs reads and writes either directly on the client or inside a transaction.
// Inside a transaction every read must happen before the first write.
type scope struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s scope) addresses() *firestore.CollectionRef {
	return s.client.Collection(addressesCollection)
}

func (s scope) comments(addressID string) *firestore.CollectionRef {
	return s.addresses().Doc(addressID).Collection(commentsCollection)
}

func (s scope) ratings(addressID string) *firestore.CollectionRef {
	return s.addresses().Doc(addressID).Collection(ratingsCollection)
}

func (s scope) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s scope) documents(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Documents(q).GetAll()
	}

	return q.Documents(ctx).GetAll()
}

func (s scope) refs(ctx context.Context, coll *firestore.CollectionRef) ([]*firestore.DocumentRef, error) {
	if s.tx != nil {
		return s.tx.DocumentRefs(coll).GetAll()
	}

	return coll.DocumentRefs(ctx).GetAll()
}

// create returns the commit time, which is also the value of any server timestamp field.
// Inside a transaction the commit time is not known yet and the local clock is returned.
func (s scope) create(ctx context.Context, ref *firestore.DocumentRef, data any) (time.Time, error) {
	if s.tx != nil {
		return time.Now(), s.tx.Create(ref, data)
	}

	wr, err := ref.Create(ctx, data)
	if err != nil {
		return time.Time{}, err
	}

	return wr.UpdateTime, nil
}

func (s scope) set(ctx context.Context, ref *firestore.DocumentRef, data any, opts ...firestore.SetOption) error {
	if s.tx != nil {
		return s.tx.Set(ref, data, opts...)
	}

	_, err := ref.Set(ctx, data, opts...)

	return err
}

func (s scope) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx != nil {
		return s.tx.Update(ref, updates)
	}

	_, err := ref.Update(ctx, updates)

	return err
}

// deleteAll removes refs atomically when they fit in one transaction, else through a BulkWriter.
func (s scope) deleteAll(ctx context.Context, refs []*firestore.DocumentRef) error {
	if len(refs) == 0 {
		return nil
	}

	if s.tx != nil {
		for _, ref := range refs {
			if err := s.tx.Delete(ref); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}

	if len(refs) <= maxTransactionWrites {
		return s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
			for _, ref := range refs {
				if err := tx.Delete(ref); err != nil {
					return err
				}
			}

			return nil
		})
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()

			return errors.WithStack(err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

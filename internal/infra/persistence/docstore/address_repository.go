package docstore

import (
	"context"

	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// addressRepository implements the domain.AddressRepository interface on the addresses collection.
type addressRepository struct {
	scope
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(client *firestore.Client) repository.AddressRepository {
	return &addressRepository{scope: scope{client: client}}
}

// NextID returns an auto document id.
func (repo *addressRepository) NextID(_ context.Context) string {
	return repo.addresses().NewDoc().ID
}

// CreateAddress writes a new address document. createdAt and updatedAt come from the server clock.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	if address.ID == "" {
		address.ID = repo.NextID(ctx)
	}

	doc := fromAddressDomain(address)
	createdAt, err := repo.create(ctx, repo.addresses().Doc(address.ID), doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	if address.CreatedAt.IsZero() {
		address.CreatedAt = createdAt
	}
	address.UpdatedAt = createdAt

	return nil
}

// FindAddressByID retrieves an address by its document id.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id string) (*entity.Address, error) {
	snap, err := repo.get(ctx, repo.addresses().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	var doc addressDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode address")
	}

	return toAddressDomain(snap.Ref.ID, &doc), nil
}

// FindAddressesByOwner retrieves every address of an owner, newest first.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerUID string) ([]*entity.Address, error) {
	q := repo.addresses().
		Where("ownerUid", "==", ownerUID).
		OrderBy("createdAt", firestore.Desc)

	return repo.list(ctx, q, "failed to find addresses by owner")
}

// FindPublicAddresses retrieves every public address, newest first.
func (repo *addressRepository) FindPublicAddresses(ctx context.Context) ([]*entity.Address, error) {
	q := repo.addresses().
		Where("isPublic", "==", true).
		OrderBy("createdAt", firestore.Desc)

	return repo.list(ctx, q, "failed to find public addresses")
}

func (repo *addressRepository) list(ctx context.Context, q firestore.Query, msg string) ([]*entity.Address, error) {
	snaps, err := repo.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, msg)
	}

	addresses := make([]*entity.Address, 0, len(snaps))
	for _, snap := range snaps {
		var doc addressDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode address %s", snap.Ref.ID)
		}
		addresses = append(addresses, toAddressDomain(snap.Ref.ID, &doc))
	}

	return addresses, nil
}

// AppendImage appends url to the images array with an atomic array union.
func (repo *addressRepository) AppendImage(ctx context.Context, id string, url string) error {
	err := repo.update(ctx, repo.addresses().Doc(id), []firestore.Update{
		{Path: "images", Value: firestore.ArrayUnion(url)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAddressNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append image")
	}

	return nil
}

// UpdateRatingAggregate writes the derived rating fields onto the address.
func (repo *addressRepository) UpdateRatingAggregate(ctx context.Context, id string, average *float64, count int) error {
	var avg any
	if average != nil {
		avg = *average
	}

	err := repo.update(ctx, repo.addresses().Doc(id), []firestore.Update{
		{Path: "averageRating", Value: avg},
		{Path: "ratingsCount", Value: count},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAddressNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update rating aggregate")
	}

	return nil
}

// DeleteCommentsAndRatings removes both sub-collections of the address.
func (repo *addressRepository) DeleteCommentsAndRatings(ctx context.Context, id string) error {
	commentRefs, err := repo.refs(ctx, repo.comments(id))
	if err != nil {
		return errors.Wrap(err, "failed to list comments")
	}
	ratingRefs, err := repo.refs(ctx, repo.ratings(id))
	if err != nil {
		return errors.Wrap(err, "failed to list ratings")
	}

	refs := make([]*firestore.DocumentRef, 0, len(commentRefs)+len(ratingRefs))
	refs = append(refs, commentRefs...)
	refs = append(refs, ratingRefs...)

	if err := repo.deleteAll(ctx, refs); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete nested resources")
	}

	return nil
}

// DeleteAddress removes the address document. Deleting requires the document to exist.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id string) error {
	ref := repo.addresses().Doc(id)

	var err error
	if repo.tx != nil {
		err = repo.tx.Delete(ref, firestore.Exists)
	} else {
		_, err = ref.Delete(ctx, firestore.Exists)
	}
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrCommentNotFound is returned when a comment is not found under its address.
	ErrCommentNotFound = errors.New("comment not found")
)

// AddressRepository defines the persistence operations on address records.
type AddressRepository interface {
	// NextID allocates an identifier for an address that is about to be created,
	// so files can be namespaced under it before the record exists.
	NextID(ctx context.Context) string

	// CreateAddress persists a new address. address.ID must come from NextID.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if no record exists.
	FindAddressByID(ctx context.Context, id string) (*entity.Address, error)

	// FindAddressesByOwner retrieves every address of an owner, newest first.
	FindAddressesByOwner(ctx context.Context, ownerUID string) ([]*entity.Address, error)

	// FindPublicAddresses retrieves every public address, newest first.
	FindPublicAddresses(ctx context.Context) ([]*entity.Address, error)

	// AppendImage atomically appends a URL to the images of an address.
	AppendImage(ctx context.Context, id string, url string) error

	// UpdateRatingAggregate writes the derived rating fields onto the address.
	UpdateRatingAggregate(ctx context.Context, id string, average *float64, count int) error

	// DeleteCommentsAndRatings removes every comment and rating under the address in one batch.
	DeleteCommentsAndRatings(ctx context.Context, id string) error

	// DeleteAddress removes the address record itself.
	DeleteAddress(ctx context.Context, id string) error
}

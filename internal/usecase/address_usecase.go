// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"adresses/internal/domain/entity"

	"github.com/paulmach/orb"
)

// CreateAddressInput carries the fields of the creation form.
type CreateAddressInput struct {
	Title       string
	Description string
	IsPublic    bool
	Location    *entity.Location // Nil when the user has not picked a location.
	Photo       *entity.Image    // Optional, uploaded before the record is written.
}

// MapAddresses splits the addresses shown on the map into the viewer's own and others' public ones.
type MapAddresses struct {
	Mine   []*entity.Address
	Others []*entity.Address
}

// ShareCode is the QR image of an address deep link.
type ShareCode struct {
	Link string
	PNG  []byte
}

// AddressUsecase defines the operations of the address repository.
// A nil identity means nobody is signed in.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, owner *entity.Identity, input *CreateAddressInput) (*entity.Address, error)
	GetAddress(ctx context.Context, viewer *entity.Identity, addressID string) (*entity.AddressDetail, error)
	ListMyAddresses(ctx context.Context, owner *entity.Identity) ([]*entity.Address, error)

	// ListPublicAddresses returns public addresses not owned by the viewer.
	ListPublicAddresses(ctx context.Context, viewer *entity.Identity) ([]*entity.Address, error)

	// MapAddresses returns the map markers, restricted to bound when it is not nil.
	MapAddresses(ctx context.Context, viewer *entity.Identity, bound *orb.Bound) (*MapAddresses, error)

	AddComment(ctx context.Context, author *entity.Identity, addressID, text string) (*entity.AddressDetail, error)
	DeleteComment(ctx context.Context, requester *entity.Identity, addressID, commentID string) (*entity.AddressDetail, error)
	SubmitRating(ctx context.Context, rater *entity.Identity, addressID string, stars int) (*entity.RatingSummary, error)

	// DeleteAddress removes stored images, nested comments and ratings, then the record.
	DeleteAddress(ctx context.Context, requester *entity.Identity, addressID string) error

	// UploadImage stores image under the address and appends its URL.
	UploadImage(ctx context.Context, uploader *entity.Identity, addressID string, image *entity.Image) (string, error)

	ShareCode(ctx context.Context, viewer *entity.Identity, addressID string) (*ShareCode, error)
}

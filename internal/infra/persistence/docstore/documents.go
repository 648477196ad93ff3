// Package docstore implements the persistence layer on Cloud Firestore.
//
// Layout:
//
//	addresses/{addressId}
//	addresses/{addressId}/comments/{commentId}
//	addresses/{addressId}/ratings/{uid}
package docstore

import (
	"time"

	"adresses/internal/domain/entity"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	addressesCollection = "addresses"
	commentsCollection  = "comments"
	ratingsCollection   = "ratings"

	// Firestore caps a transaction at 500 writes.
	maxTransactionWrites = 500
)

type latLng struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

type addressDocument struct {
	Title         string    `firestore:"title"`
	Description   string    `firestore:"description"`
	IsPublic      bool      `firestore:"isPublic"`
	Location      latLng    `firestore:"location"`
	OwnerUID      string    `firestore:"ownerUid"`
	OwnerName     string    `firestore:"ownerName"`
	Images        []string  `firestore:"images"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time `firestore:"updatedAt,serverTimestamp"`
	AverageRating *float64  `firestore:"averageRating"`
	RatingsCount  int       `firestore:"ratingsCount"`
}

type commentDocument struct {
	Text       string    `firestore:"text"`
	AuthorUID  string    `firestore:"authorUid"`
	AuthorName string    `firestore:"authorName"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp"`
}

type ratingDocument struct {
	Stars     int       `firestore:"stars"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// --- Mapper Functions ---

func toAddressDomain(id string, doc *addressDocument) *entity.Address {
	images := make([]string, 0, len(doc.Images))
	images = append(images, doc.Images...)

	return &entity.Address{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		IsPublic:    doc.IsPublic,
		Location: entity.Location{
			Latitude:  doc.Location.Latitude,
			Longitude: doc.Location.Longitude,
		},
		OwnerUID:      doc.OwnerUID,
		OwnerName:     doc.OwnerName,
		Images:        images,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		AverageRating: doc.AverageRating,
		RatingsCount:  doc.RatingsCount,
	}
}

func fromAddressDomain(address *entity.Address) *addressDocument {
	images := make([]string, 0, len(address.Images))
	images = append(images, address.Images...)

	return &addressDocument{
		Title:       address.Title,
		Description: address.Description,
		IsPublic:    address.IsPublic,
		Location: latLng{
			Latitude:  address.Location.Latitude,
			Longitude: address.Location.Longitude,
		},
		OwnerUID:      address.OwnerUID,
		OwnerName:     address.OwnerName,
		Images:        images,
		CreatedAt:     address.CreatedAt,
		AverageRating: address.AverageRating,
		RatingsCount:  address.RatingsCount,
	}
}

func toCommentDomain(addressID, id string, doc *commentDocument) *entity.Comment {
	return &entity.Comment{
		ID:         id,
		AddressID:  addressID,
		Text:       doc.Text,
		AuthorUID:  doc.AuthorUID,
		AuthorName: doc.AuthorName,
		CreatedAt:  doc.CreatedAt,
	}
}

func toRatingDomain(addressID, uid string, doc *ratingDocument) *entity.Rating {
	return &entity.Rating{
		AddressID: addressID,
		UserUID:   uid,
		Stars:     doc.Stars,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

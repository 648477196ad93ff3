package handler

import (
	"time"

	"adresses/internal/domain/entity"
)

// LocationDTO is the wire form of a coordinate pair.
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// AddressDTO is the wire form of an address.
type AddressDTO struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	IsPublic      bool        `json:"is_public"`
	Location      LocationDTO `json:"location"`
	OwnerUID      string      `json:"owner_uid"`
	OwnerName     string      `json:"owner_name"`
	Images        []string    `json:"images"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	AverageRating *float64    `json:"average_rating"`
	RatingsCount  int         `json:"ratings_count"`
}

// CommentDTO is the wire form of a comment.
type CommentDTO struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorUID  string    `json:"author_uid"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingDTO is the wire form of a rating summary.
type RatingDTO struct {
	Sum     int      `json:"sum"`
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
	Mine    int      `json:"mine"`
}

// AddressDetailDTO is an address with its comments and rating summary.
type AddressDetailDTO struct {
	Address  AddressDTO   `json:"address"`
	Comments []CommentDTO `json:"comments"`
	Rating   RatingDTO    `json:"rating"`
}

// IdentityDTO is the wire form of a user profile.
type IdentityDTO struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url"`
}

// SessionDTO is returned by sign-up and sign-in.
type SessionDTO struct {
	Token    string      `json:"token"`
	Identity IdentityDTO `json:"identity"`
}

// PlaceDTO is one place search candidate.
type PlaceDTO struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toAddressDTO(a *entity.Address) AddressDTO {
	images := a.Images
	if images == nil {
		images = []string{}
	}

	return AddressDTO{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		IsPublic:      a.IsPublic,
		Location:      LocationDTO{Latitude: a.Location.Latitude, Longitude: a.Location.Longitude},
		OwnerUID:      a.OwnerUID,
		OwnerName:     a.OwnerName,
		Images:        images,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		AverageRating: a.AverageRating,
		RatingsCount:  a.RatingsCount,
	}
}

func toAddressDTOs(addresses []*entity.Address) []AddressDTO {
	out := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressDTO(a))
	}

	return out
}

func toRatingDTO(r entity.RatingSummary) RatingDTO {
	return RatingDTO{Sum: r.Sum, Count: r.Count, Average: r.Average, Mine: r.Mine}
}

func toDetailDTO(d *entity.AddressDetail) AddressDetailDTO {
	comments := make([]CommentDTO, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, CommentDTO{
			ID:         c.ID,
			Text:       c.Text,
			AuthorUID:  c.AuthorUID,
			AuthorName: c.AuthorName,
			CreatedAt:  c.CreatedAt,
		})
	}

	return AddressDetailDTO{
		Address:  toAddressDTO(d.Address),
		Comments: comments,
		Rating:   toRatingDTO(d.Rating),
	}
}

func toIdentityDTO(i *entity.Identity) IdentityDTO {
	return IdentityDTO{
		UID:         i.UID,
		DisplayName: i.DisplayName,
		Email:       i.Email,
		PhotoURL:    i.PhotoURL,
	}
}

func toSessionDTO(s *entity.Session) SessionDTO {
	return SessionDTO{Token: s.Token, Identity: toIdentityDTO(s.Identity)}
}

func toPlaceDTOs(places []*entity.Place) []PlaceDTO {
	out := make([]PlaceDTO, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceDTO{ID: p.ID, Label: p.Label, Latitude: p.Latitude, Longitude: p.Longitude})
	}

	return out
}

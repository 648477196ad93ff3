// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// AnonymousName is the name snapshot used when an identity has neither a display name nor an email.
const AnonymousName = "Anonyme"

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinates are within the WGS84 range.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Point returns the location as an orb point (lng, lat order).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Address is a user-submitted point of interest.
type Address struct {
	ID            string    // Opaque identifier allocated by the store.
	Title         string    // Required, trimmed.
	Description   string    // Optional, trimmed.
	IsPublic      bool      // Public addresses are discoverable by every signed-in user.
	Location      Location  // Where the address is.
	OwnerUID      string    // Identity of the creator. Never changes after creation.
	OwnerName     string    // Display name snapshot taken at creation time.
	Images        []string  // Append-only list of retrieval URLs.
	CreatedAt     time.Time // Server clock at creation.
	UpdatedAt     time.Time // Last write to the record.
	AverageRating *float64  // Nil until the first rating.
	RatingsCount  int       // Number of ratings with stars > 0.
}

// IsOwnedBy reports whether uid is the owner of the address.
func (a *Address) IsOwnedBy(uid string) bool {
	return uid != "" && a.OwnerUID == uid
}

// ReadableBy reports whether uid may see the address. Private addresses are visible to their owner only.
func (a *Address) ReadableBy(uid string) bool {
	return a.IsPublic || a.IsOwnedBy(uid)
}

// Cover returns the first image URL, or an empty string.
func (a *Address) Cover() string {
	if len(a.Images) == 0 {
		return ""
	}

	return a.Images[0]
}

// AddressDetail is an address with its comments ordered newest-first and its rating summary.
type AddressDetail struct {
	Address  *Address
	Comments []*Comment
	Rating   RatingSummary
}

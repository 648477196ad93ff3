package entity

import (
	"math"
	"time"
)

// Star bounds for a rating.
const (
	MinStars = 1
	MaxStars = 5
)

// Rating is one user's stars for one address. There is at most one rating per (address, user).
type Rating struct {
	AddressID string
	UserUID   string
	Stars     int
	CreatedAt time.Time // First submission, preserved on upsert.
	UpdatedAt time.Time // Last submission.
}

// RatingSummary is the aggregate computed over the ratings of an address.
type RatingSummary struct {
	Sum     int
	Count   int
	Average *float64 // Nil when Count is zero.
	Mine    int      // Stars given by the viewer, 0 when the viewer has not rated.
}

// ValidStars reports whether stars is within [MinStars, MaxStars].
func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}

// AggregateRatings sums the ratings with stars > 0 and singles out the viewer's own stars.
// Zero-star entries are ignored so legacy records never drag the average down.
func AggregateRatings(ratings []*Rating, viewerUID string) RatingSummary {
	var summary RatingSummary
	for _, r := range ratings {
		if r == nil {
			continue
		}
		if viewerUID != "" && r.UserUID == viewerUID {
			summary.Mine = r.Stars
		}
		if r.Stars <= 0 {
			continue
		}
		summary.Sum += r.Stars
		summary.Count++
	}

	if summary.Count > 0 {
		avg := RoundOneDecimal(float64(summary.Sum) / float64(summary.Count))
		summary.Average = &avg
	}

	return summary
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRatings(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []*Rating
		viewer    string
		wantSum   int
		wantCount int
		wantAvg   *float64
		wantMine  int
	}{
		{
			name:    "no ratings",
			ratings: nil,
		},
		{
			name:      "single five star",
			ratings:   []*Rating{{UserUID: "u1", Stars: 5}},
			viewer:    "u1",
			wantSum:   5,
			wantCount: 1,
			wantAvg:   ptr(5.0),
			wantMine:  5,
		},
		{
			name: "rounds to one decimal",
			ratings: []*Rating{
				{UserUID: "u1", Stars: 5},
				{UserUID: "u2", Stars: 4},
				{UserUID: "u3", Stars: 4},
			},
			viewer:    "u2",
			wantSum:   13,
			wantCount: 3,
			wantAvg:   ptr(4.3),
			wantMine:  4,
		},
		{
			name: "half rounds away from zero",
			ratings: []*Rating{
				{UserUID: "u1", Stars: 5},
				{UserUID: "u2", Stars: 4},
			},
			wantSum:   9,
			wantCount: 2,
			wantAvg:   ptr(4.5),
		},
		{
			name: "zero stars excluded",
			ratings: []*Rating{
				{UserUID: "u1", Stars: 0},
				{UserUID: "u2", Stars: 3},
				nil,
			},
			viewer:    "u1",
			wantSum:   3,
			wantCount: 1,
			wantAvg:   ptr(3.0),
		},
		{
			name:    "only zero stars",
			ratings: []*Rating{{UserUID: "u1", Stars: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateRatings(tt.ratings, tt.viewer)

			assert.Equal(t, tt.wantSum, got.Sum)
			assert.Equal(t, tt.wantCount, got.Count)
			assert.Equal(t, tt.wantMine, got.Mine)
			if tt.wantAvg == nil {
				assert.Nil(t, got.Average)

				return
			}
			require.NotNil(t, got.Average)
			assert.InDelta(t, *tt.wantAvg, *got.Average, 1e-9)
		})
	}
}

func TestRoundOneDecimal(t *testing.T) {
	assert.InDelta(t, 3.7, RoundOneDecimal(11.0/3.0), 1e-9)
	assert.InDelta(t, 2.3, RoundOneDecimal(7.0/3.0), 1e-9)
	assert.InDelta(t, 4.0, RoundOneDecimal(4.0), 1e-9)
}

func TestValidStars(t *testing.T) {
	assert.False(t, ValidStars(0))
	assert.True(t, ValidStars(1))
	assert.True(t, ValidStars(5))
	assert.False(t, ValidStars(6))
}

func TestIdentityName(t *testing.T) {
	assert.Equal(t, "Camille", (&Identity{DisplayName: " Camille ", Email: "c@example.fr"}).Name())
	assert.Equal(t, "c@example.fr", (&Identity{Email: "c@example.fr"}).Name())
	assert.Equal(t, AnonymousName, (&Identity{UID: "u1"}).Name())
	assert.Equal(t, AnonymousName, (*Identity)(nil).Name())
}

func TestAddressVisibility(t *testing.T) {
	private := &Address{OwnerUID: "owner"}
	public := &Address{OwnerUID: "owner", IsPublic: true}

	assert.True(t, private.ReadableBy("owner"))
	assert.False(t, private.ReadableBy("other"))
	assert.False(t, private.ReadableBy(""))
	assert.True(t, public.ReadableBy("other"))
	assert.False(t, public.IsOwnedBy(""))
}

func TestImageExt(t *testing.T) {
	assert.Equal(t, "png", (&Image{ContentType: "image/png"}).Ext())
	assert.Equal(t, "jpg", (&Image{ContentType: "image/jpeg; charset=binary"}).Ext())
	assert.Equal(t, "jpg", (&Image{Filename: "IMG_0001.JPEG"}).Ext())
	assert.Equal(t, "webp", (&Image{Filename: "photo.webp"}).Ext())
	assert.Equal(t, "jpg", (&Image{Filename: "blob"}).Ext())
	assert.True(t, (*Image)(nil).Empty())
}

func ptr(v float64) *float64 {
	return &v
}

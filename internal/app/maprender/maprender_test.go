package maprender

import (
	"encoding/json"
	"testing"

	"adresses/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() *Scene {
	return &Scene{
		User: &entity.Location{Latitude: 45.76, Longitude: 4.83},
		Mine: []*entity.Address{
			{ID: "m1", Title: "Boulangerie", Location: entity.Location{Latitude: 45.7, Longitude: 4.8}},
			{ID: "m2", Title: " ", Location: entity.Location{Latitude: 45.8, Longitude: 4.9}},
		},
		Others: []*entity.Address{
			{ID: "o1", Location: entity.Location{Latitude: 45.6, Longitude: 4.7}},
		},
	}
}

func TestNew(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	assert.Equal(t, TargetWeb, r.Target())

	r, err = New(" Native ")
	require.NoError(t, err)
	assert.Equal(t, TargetNative, r.Target())

	_, err = New("ios")
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestWebRenderer(t *testing.T) {
	r, err := New("web")
	require.NoError(t, err)

	fc, ok := r.Render(testScene()).(*geojson.FeatureCollection)
	require.True(t, ok)
	require.Len(t, fc.Features, 4)

	colors := make([]any, 0, len(fc.Features))
	for _, f := range fc.Features {
		colors = append(colors, f.Properties["marker-color"])
	}
	assert.Equal(t, []any{ColorUser, ColorMine, ColorMine, ColorOthers}, colors)

	assert.Equal(t, "Vous", fc.Features[0].Properties["title"])
	assert.Equal(t, "Mon adresse", fc.Features[2].Properties["title"])
	assert.Equal(t, "Adresse publique", fc.Features[3].Properties["title"])
	assert.Equal(t, "o1", fc.Features[3].ID)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"center":[4.83,45.76]`)
	assert.Contains(t, string(raw), `"bbox":[4.7,45.6,4.9,45.8]`)
}

func TestNativeRenderer(t *testing.T) {
	r, err := New("native")
	require.NoError(t, err)

	m, ok := r.Render(&Scene{Others: testScene().Others}).(*NativeMap)
	require.True(t, ok)

	assert.Equal(t, Region{Latitude: 48.8566, Longitude: 2.3522, LatitudeDelta: 0.05, LongitudeDelta: 0.05}, m.Region)
	require.Len(t, m.Pins, 1)
	assert.Equal(t, Pin{ID: "o1", Title: "Adresse publique", Kind: KindOthers, Color: ColorOthers, Latitude: 45.6, Longitude: 4.7}, m.Pins[0])
}

func TestParseBound(t *testing.T) {
	b, err := ParseBound("")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = ParseBound("2.2, 48.8,2.5,48.9")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.InDelta(t, 2.2, b.Min.Lon(), 1e-9)
	assert.InDelta(t, 48.9, b.Max.Lat(), 1e-9)

	for _, raw := range []string{"1,2,3", "a,b,c,d", "3,0,1,1", "0,-95,1,1"} {
		_, err := ParseBound(raw)
		assert.Error(t, err, raw)
	}
}

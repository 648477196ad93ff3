package handler

import (
	"net/http"
	"testing"

	"adresses/internal/app/maprender"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	mockUsecase "adresses/internal/mocks/usecase"
	"adresses/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceHandler_Search(t *testing.T) {
	uc := mockUsecase.NewMockPlaceUsecase(t)
	h := NewPlaceHandler(PlaceHandlerParams{PlaceUC: uc})

	uc.EXPECT().Search(mock.Anything, "Lyon").Return([]*entity.Place{{ID: "7", Label: "Lyon, France", Latitude: 45.76, Longitude: 4.83}}, nil)
	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/places?q=Lyon", nil)
	require.NoError(t, h.Search(c))
	assert.Equal(t, []PlaceDTO{{ID: "7", Label: "Lyon, France", Latitude: 45.76, Longitude: 4.83}}, decodeData[[]PlaceDTO](t, rec))

	uc.EXPECT().Search(mock.Anything, "Paris").Return(nil, domainerrors.ErrPlaceSearchFailed)
	c, rec = newJSONContext(t, http.MethodGet, "/api/v1/places?q=Paris", nil)
	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMapHandler_Render(t *testing.T) {
	t.Run("native with bbox", func(t *testing.T) {
		uc := mockUsecase.NewMockAddressUsecase(t)
		h := NewMapHandler(MapHandlerParams{AddressUC: uc})

		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/map?target=native&bbox=2,48,3,49&lat=48.5&lng=2.5", nil)
		signIn(c, alice)

		uc.EXPECT().MapAddresses(mock.Anything, alice, mock.MatchedBy(func(b *orb.Bound) bool {
			return b != nil && b.Min == orb.Point{2, 48} && b.Max == orb.Point{3, 49}
		})).Return(&usecase.MapAddresses{
			Mine: []*entity.Address{{ID: "m1", Title: "Chez moi", Location: entity.Location{Latitude: 48.6, Longitude: 2.6}}},
		}, nil)

		require.NoError(t, h.Render(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		got := decodeData[maprender.NativeMap](t, rec)
		assert.InDelta(t, 48.5, got.Region.Latitude, 1e-9)
		require.Len(t, got.Pins, 2)
		assert.Equal(t, maprender.ColorUser, got.Pins[0].Color)
		assert.Equal(t, maprender.ColorMine, got.Pins[1].Color)
	})

	t.Run("unknown target", func(t *testing.T) {
		h := NewMapHandler(MapHandlerParams{AddressUC: mockUsecase.NewMockAddressUsecase(t)})
		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/map?target=tv", nil)
		signIn(c, alice)

		require.NoError(t, h.Render(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("half a position", func(t *testing.T) {
		h := NewMapHandler(MapHandlerParams{AddressUC: mockUsecase.NewMockAddressUsecase(t)})
		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/map?lat=48.5", nil)
		signIn(c, alice)

		require.NoError(t, h.Render(c))
		assert.Equal(t, "LOCATION_OUT_OF_RANGE", decodeError(t, rec).Code)
	})
}

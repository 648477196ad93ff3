package handler

import (
	"net/http"
	"strconv"
	"strings"

	"adresses/internal/app/maprender"
	"adresses/internal/delivery/api/middleware"
	"adresses/internal/delivery/api/response"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// MapHandler renders the map markers for web or native clients
type MapHandler struct {
	addressUC usecase.AddressUsecase
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{addressUC: params.AddressUC}
}

// Render handles GET /map?target=web|native&bbox=minLng,minLat,maxLng,maxLat&lat=&lng=
func (h *MapHandler) Render(c echo.Context) error {
	renderer, err := maprender.New(c.QueryParam("target"))
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("target must be web or native"))
	}

	bound, err := maprender.ParseBound(c.QueryParam("bbox"))
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	user, ok := queryLocation(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrLocationOutOfRange)
	}

	identity, _ := middleware.Identity(c)
	addresses, err := h.addressUC.MapAddresses(c.Request().Context(), identity, bound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, renderer.Render(&maprender.Scene{
		User:   user,
		Mine:   addresses.Mine,
		Others: addresses.Others,
	}))
}

// queryLocation reads the user position from lat and lng. Absent means unknown.
func queryLocation(c echo.Context) (*entity.Location, bool) {
	rawLat := strings.TrimSpace(c.QueryParam("lat"))
	rawLng := strings.TrimSpace(c.QueryParam("lng"))
	if rawLat == "" && rawLng == "" {
		return nil, true
	}

	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil {
		return nil, false
	}

	loc := entity.Location{Latitude: lat, Longitude: lng}
	if !loc.Valid() {
		return nil, false
	}

	return &loc, true
}

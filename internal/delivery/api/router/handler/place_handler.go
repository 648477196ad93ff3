package handler

import (
	"net/http"

	"adresses/internal/delivery/api/response"
	"adresses/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
}

// PlaceHandler serves the place-name search of the creation form
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{placeUC: params.PlaceUC}
}

// Search handles GET /places?q=
func (h *PlaceHandler) Search(c echo.Context) error {
	places, err := h.placeUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceDTOs(places))
}

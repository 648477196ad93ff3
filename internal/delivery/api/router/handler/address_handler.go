package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"adresses/internal/delivery/api/middleware"
	"adresses/internal/delivery/api/response"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderShareLink carries the deep link encoded in a share QR code.
const HeaderShareLink = "X-Share-Link"

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// CreateAddressRequest is the JSON body of the creation form. Multipart requests send
// title, description, is_public, latitude and longitude as fields plus an optional photo file.
type CreateAddressRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	IsPublic    bool         `json:"is_public"`
	Location    *LocationDTO `json:"location" validate:"omitempty"`
}

// AddCommentRequest represents the request body for posting a comment
type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// SubmitRatingRequest represents the request body for rating an address
type SubmitRatingRequest struct {
	Stars int `json:"stars" validate:"min=1,max=5"`
}

// CreateAddress handles the creation form, as JSON or multipart with a photo
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	var (
		input *usecase.CreateAddressInput
		err   error
	)
	if isMultipart(c) {
		input, err = h.bindMultipartAddress(c)
	} else {
		input, err = h.bindJSONAddress(c)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressDTO(address))
}

func (h *AddressHandler) bindJSONAddress(c echo.Context) (*usecase.CreateAddressInput, error) {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid address input")
	}

	// Title stays unchecked here so a blank one reports TITLE_REQUIRED from the use case.
	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrLocationOutOfRange.WithDetails(err.Error())
	}

	input := &usecase.CreateAddressInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if req.Location != nil {
		input.Location = &entity.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude}
	}

	return input, nil
}

func (h *AddressHandler) bindMultipartAddress(c echo.Context) (*usecase.CreateAddressInput, error) {
	input := &usecase.CreateAddressInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	if raw := strings.TrimSpace(c.FormValue("is_public")); raw != "" {
		isPublic, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("is_public must be a boolean")
		}
		input.IsPublic = isPublic
	}

	location, err := formLocation(c)
	if err != nil {
		return nil, err
	}
	input.Location = location

	photo, err := readImage(c, "photo")
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable photo")
	}
	input.Photo = photo

	return input, nil
}

// formLocation reads latitude and longitude form fields. Both absent means no location.
func formLocation(c echo.Context) (*entity.Location, error) {
	rawLat := strings.TrimSpace(c.FormValue("latitude"))
	rawLng := strings.TrimSpace(c.FormValue("longitude"))
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}

	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil {
		return nil, domainerrors.ErrLocationOutOfRange
	}

	return &entity.Location{Latitude: lat, Longitude: lng}, nil
}

// GetAddress handles the detail view
func (h *AddressHandler) GetAddress(c echo.Context) error {
	identity, _ := middleware.Identity(c)

	detail, err := h.addressUC.GetAddress(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDetailDTO(detail))
}

// ListMine handles the list of the caller's addresses
func (h *AddressHandler) ListMine(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	addresses, err := h.addressUC.ListMyAddresses(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressDTOs(addresses))
}

// ListPublic handles the list of other users' public addresses
func (h *AddressHandler) ListPublic(c echo.Context) error {
	identity, _ := middleware.Identity(c)

	addresses, err := h.addressUC.ListPublicAddresses(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressDTOs(addresses))
}

// DeleteAddress handles the owner's cascade delete
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Adresse supprimée."})
}

// UploadImage handles a multipart image upload for an address
func (h *AddressHandler) UploadImage(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	image, err := readImage(c, "image")
	if err != nil {
		h.logger.Debug("Unreadable upload", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrImageRequired)
	}
	if image.Empty() {
		return response.AppError(c, domainerrors.ErrImageRequired)
	}

	url, err := h.addressUC.UploadImage(c.Request().Context(), identity, c.Param("id"), image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}

// AddComment handles posting a comment
func (h *AddressHandler) AddComment(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrCommentRequired.WithDetails(err.Error()))
	}

	detail, err := h.addressUC.AddComment(c.Request().Context(), identity, c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDetailDTO(detail))
}

// DeleteComment handles removing one of the caller's comments
func (h *AddressHandler) DeleteComment(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	detail, err := h.addressUC.DeleteComment(c.Request().Context(), identity, c.Param("id"), c.Param("commentId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDetailDTO(detail))
}

// SubmitRating handles the caller's stars for an address
func (h *AddressHandler) SubmitRating(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidStars.WithDetails(err.Error()))
	}

	summary, err := h.addressUC.SubmitRating(c.Request().Context(), identity, c.Param("id"), req.Stars)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRatingDTO(*summary))
}

// ShareCode handles the QR code of an address deep link
func (h *AddressHandler) ShareCode(c echo.Context) error {
	identity, _ := middleware.Identity(c)

	code, err := h.addressUC.ShareCode(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(HeaderShareLink, code.Link)

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

package handler

import (
	"log/slog"
	"net/http"

	"adresses/internal/delivery/api/middleware"
	"adresses/internal/delivery/api/response"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler serves sign-up, sign-in, sign-out and the profile editor
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// UpdateProfileRequest represents the request body of the profile editor
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url"`
}

// SignUp handles account creation
func (h *IdentityHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid sign-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	session, err := h.identityUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSessionDTO(session))
}

// SignIn handles password sign-in
func (h *IdentityHandler) SignIn(c echo.Context) error {
	var req usecase.SignInInput
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	session, err := h.identityUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionDTO(session))
}

// SignOut revokes the caller's tokens
func (h *IdentityHandler) SignOut(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	if err := h.identityUC.SignOut(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Déconnecté."})
}

// GetProfile returns the caller's profile
func (h *IdentityHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	profile, err := h.identityUC.Profile(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityDTO(profile))
}

// UpdateProfile saves the display name and avatar URL
func (h *IdentityHandler) UpdateProfile(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	profile, err := h.identityUC.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityDTO(profile))
}

// UploadAvatar handles a multipart avatar upload, with an optional display_name field
func (h *IdentityHandler) UploadAvatar(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrNotSignedIn)
	}

	avatar, err := readImage(c, "avatar")
	if err != nil {
		h.logger.Debug("Unreadable avatar", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrImageRequired)
	}
	if avatar.Empty() {
		return response.AppError(c, domainerrors.ErrImageRequired)
	}

	input := &usecase.UpdateProfileInput{Avatar: avatar}
	if name, present := c.Request().MultipartForm.Value["display_name"]; present && len(name) > 0 {
		input.DisplayName = &name[0]
	}

	profile, err := h.identityUC.UpdateProfile(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityDTO(profile))
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"adresses/internal/delivery/api/response"
	deliverycontext "adresses/internal/delivery/context"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/service"
	"adresses/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Object keys embed a timestamp, so a stored object never changes.
const mediaCacheControl = "public, max-age=31536000, immutable"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// MediaHandler streams stored photos and avatars when no CDN fronts the bucket
type MediaHandler struct {
	objectStore service.ObjectStore
	logger      *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		objectStore: params.ObjectStore,
		logger:      params.Logger,
	}
}

// Serve handles GET /media/*
func (h *MediaHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.AppError(c, domainerrors.ErrMediaNotFound)
	}

	obj, err := h.objectStore.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return response.AppError(c, domainerrors.ErrMediaNotFound)
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Open media failed", slog.String("key", key), slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrInternalError)
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", mediaCacheControl)
	if obj.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, obj.Body)
}

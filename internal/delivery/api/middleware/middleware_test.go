package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adresses/internal/delivery/api/response"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/errors"
	"adresses/internal/infra/metrics"
	mockUsecase "adresses/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &entity.Identity{UID: "alice"}
	next := func(c echo.Context) error {
		got, ok := Identity(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}

		return c.String(http.StatusOK, got.UID)
	}

	tests := []struct {
		name     string
		header   string
		setup    func(uc *mockUsecase.MockIdentityUsecase)
		wantCode int
		wantBody string
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not a bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer  ", wantCode: http.StatusUnauthorized},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(uc *mockUsecase.MockIdentityUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(uc *mockUsecase.MockIdentityUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "good").Return(identity, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockIdentityUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{IdentityUC: uc})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Authenticate(next)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	run := func(err error) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		m.HandleHTTPError(err, c)

		return rec
	}

	t.Run("app error keeps 4xx details", func(t *testing.T) {
		rec := run(errors.Wrap(domainerrors.ErrImageTooLarge.WithDetails("max 10.0 MB"), "upload"))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

		info := decodeError(t, rec)
		assert.Equal(t, "IMAGE_TOO_LARGE", info.Code)
		assert.Equal(t, "max 10.0 MB", info.Details)
	})

	t.Run("5xx hides details", func(t *testing.T) {
		rec := run(domainerrors.ErrSaveRatingFailed.WithDetails("pq: deadlock detected"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, decodeError(t, rec).Details)
		assert.NotContains(t, rec.Body.String(), "deadlock")
	})

	t.Run("echo error", func(t *testing.T) {
		rec := run(echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		rec := run(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		info := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", info.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	reg := metrics.New()
	m := NewMetricsMiddleware(reg)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.Use(m.Handle)
	e.GET("/api/v1/addresses/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrAddressNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/api/v1/addresses/a1", "/api/v1/addresses/a2", "/api/v1/addresses/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(reg.HTTPRequestTotal.WithLabelValues(http.MethodGet, "/api/v1/addresses/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.HTTPRequestTotal.WithLabelValues(http.MethodGet, "/api/v1/addresses/:id", "404")), 0)
}

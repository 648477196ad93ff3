// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"adresses/config"
	"adresses/internal/delivery/api/middleware"
	"adresses/internal/delivery/api/router/handler"
	"adresses/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler  *handler.AddressHandler
	IdentityHandler *handler.IdentityHandler
	PlaceHandler    *handler.PlaceHandler
	MapHandler      *handler.MapHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler  *handler.AddressHandler
	identityHandler *handler.IdentityHandler
	placeHandler    *handler.PlaceHandler
	mapHandler      *handler.MapHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:  params.AddressHandler,
		identityHandler: params.IdentityHandler,
		placeHandler:    params.PlaceHandler,
		mapHandler:      params.MapHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Objects are served by the API itself unless a CDN or bucket URL is configured.
	if base := r.config.Storage.PublicBaseURL; strings.HasPrefix(base, "/") {
		e.GET(strings.TrimSuffix(base, "/")+"/*", r.mediaHandler.Serve)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.identityHandler.SignUp)
		authGroup.POST("/signin", r.identityHandler.SignIn)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.POST("/auth/signout", r.identityHandler.SignOut)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.identityHandler.GetProfile)
		profileGroup.PATCH("", r.identityHandler.UpdateProfile)
		profileGroup.POST("/avatar", r.identityHandler.UploadAvatar)
	}

	apiV1.GET("/places", r.placeHandler.Search)
	apiV1.GET("/map", r.mapHandler.Render)

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("/mine", r.addressHandler.ListMine)
		addressesGroup.GET("/public", r.addressHandler.ListPublic)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.POST("/:id/images", r.addressHandler.UploadImage)
		addressesGroup.POST("/:id/comments", r.addressHandler.AddComment)
		addressesGroup.DELETE("/:id/comments/:commentId", r.addressHandler.DeleteComment)
		addressesGroup.PUT("/:id/rating", r.addressHandler.SubmitRating)
		addressesGroup.GET("/:id/qr", r.addressHandler.ShareCode)
	}
}

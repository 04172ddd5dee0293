// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"krisefikser/internal/delivery/http/middleware"
	"krisefikser/internal/delivery/http/router/handler"
	"krisefikser/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	EventHandler        *handler.EventHandler
	MapPointTypeHandler *handler.MapPointTypeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	eventHandler        *handler.EventHandler
	mapPointTypeHandler *handler.MapPointTypeHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		eventHandler:        params.EventHandler,
		mapPointTypeHandler: params.MapPointTypeHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// The profile endpoint needs a valid access token.
	authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// API reads are public; mutations require an authenticated ADMIN.
	requireAdmin := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}

	eventGroup := e.Group("/api/events")
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:id", r.eventHandler.Get)
		eventGroup.POST("", r.eventHandler.Create, requireAdmin...)
		eventGroup.PUT("/:id", r.eventHandler.Update, requireAdmin...)
		eventGroup.DELETE("/:id", r.eventHandler.Delete, requireAdmin...)
	}

	mptGroup := e.Group("/api/map-point-types")
	{
		mptGroup.GET("", r.mapPointTypeHandler.List)
		mptGroup.GET("/:id", r.mapPointTypeHandler.Get)
		mptGroup.POST("", r.mapPointTypeHandler.Create, requireAdmin...)
		mptGroup.PUT("/:id", r.mapPointTypeHandler.Update, requireAdmin...)
		mptGroup.DELETE("/:id", r.mapPointTypeHandler.Delete, requireAdmin...)
	}
}

// Package router registers the API routes.
package router

import (
	"lounge/internal/delivery/api/middleware"
	"lounge/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	AccountHandler        *handler.AccountHandler
	HistoryHandler        *handler.HistoryHandler
	CartHandler           *handler.CartHandler
	BookingHandler        *handler.BookingHandler
	ServiceRequestHandler *handler.ServiceRequestHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	accountHandler        *handler.AccountHandler
	historyHandler        *handler.HistoryHandler
	cartHandler           *handler.CartHandler
	bookingHandler        *handler.BookingHandler
	serviceRequestHandler *handler.ServiceRequestHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		accountHandler:        params.AccountHandler,
		historyHandler:        params.HistoryHandler,
		cartHandler:           params.CartHandler,
		bookingHandler:        params.BookingHandler,
		serviceRequestHandler: params.ServiceRequestHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalogue and guest endpoints
	e.GET("/reviews", r.historyHandler.ListReviews)
	e.GET("/pods/available", r.bookingHandler.AvailablePods)

	serviceRequests := e.Group("/service-requests")
	{
		serviceRequests.GET("/bookings/:number", r.serviceRequestHandler.LookupBooking)
		serviceRequests.POST("", r.serviceRequestHandler.Submit)
	}

	accountGroup := e.Group("/account", r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.GetProfile)
		accountGroup.PUT("/profile/name", r.accountHandler.UpdateName)
		accountGroup.POST("/email", r.accountHandler.ChangeEmail)
		accountGroup.GET("/email/migrations", r.accountHandler.MigrationHistory)
		accountGroup.PUT("/password", r.accountHandler.ChangePassword)
		accountGroup.POST("/deletion-requests", r.accountHandler.RequestDeletion)
		accountGroup.POST("/logout", r.accountHandler.Logout)

		accountGroup.GET("/orders", r.historyHandler.ListOrders)
		accountGroup.GET("/bookings", r.historyHandler.ListBookings)
		accountGroup.POST("/reviews", r.historyHandler.SubmitReview)
	}

	cartGroup := e.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddMenuItem)
	}

	bookingGroup := e.Group("/bookings", r.authMiddleware.Authenticate)
	{
		bookingGroup.POST("", r.bookingHandler.ConfirmBooking)
		bookingGroup.GET("/:number/qrcode", r.bookingHandler.CheckInQRCode)
	}
}

// Package http exposes the application's use cases over a REST API built on
// echo. Handlers translate JSON requests into commands and queries and map
// application errors onto HTTP status codes; no business rules live here.
package http

import (
	"net/http"

	"sendit/internal/adapters/in/http/auth"
	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	authService *auth.Service

	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	createParcelHandler      commands.CreateParcelCommandHandler
	updateParcelHandler      commands.UpdateParcelCommandHandler
	deleteParcelHandler      commands.DeleteParcelCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeDestinationHandler commands.ChangeDestinationCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	trackOrderHandler     queries.TrackOrderQueryHandler
	getUserOrdersHandler  queries.GetUserOrdersQueryHandler
	getUserParcelsHandler queries.GetUserParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	authService *auth.Service,
	registerUserHandler commands.RegisterUserCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getUserParcelsHandler queries.GetUserParcelsQueryHandler,
) *Server {
	return &Server{
		authService:              authService,
		registerUserHandler:      registerUserHandler,
		createParcelHandler:      createParcelHandler,
		updateParcelHandler:      updateParcelHandler,
		deleteParcelHandler:      deleteParcelHandler,
		createOrderHandler:       createOrderHandler,
		changeDestinationHandler: changeDestinationHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		trackOrderHandler:        trackOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getUserParcelsHandler:    getUserParcelsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Registration,
// login, tracking, and health are public; everything else needs a token, and
// status updates additionally need the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/track/:trackingNumber", s.TrackOrder)

	authed := api.Group("", s.requireAuth)
	authed.GET("/parcels", s.GetParcels)
	authed.POST("/parcels", s.CreateParcel)
	authed.PUT("/parcels/:id", s.UpdateParcel)
	authed.DELETE("/parcels/:id", s.DeleteParcel)

	authed.GET("/orders", s.GetOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.PUT("/orders/:id/destination", s.ChangeDestination)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.PUT("/orders/:id/status", s.UpdateOrderStatus, s.requireAdmin)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

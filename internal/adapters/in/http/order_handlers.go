package http

import (
	"net/http"
	"time"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type locationRequest struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func (r locationRequest) toDomain() (kernel.Location, error) {
	return kernel.NewLocation(
		r.Latitude,
		r.Longitude,
		r.Address,
		r.City,
		r.State,
		r.Country,
		r.PostalCode,
	)
}

type createOrderRequest struct {
	ParcelID    string          `json:"parcel_id"`
	Pickup      locationRequest `json:"pickup"`
	Destination locationRequest `json:"destination"`
}

type changeDestinationRequest struct {
	Destination locationRequest `json:"destination"`
}

type updateStatusRequest struct {
	Status          string           `json:"status"`
	CurrentLocation *locationRequest `json:"current_location,omitempty"`
}

type orderResponse struct {
	ID                string    `json:"id"`
	ParcelID          string    `json:"parcel_id"`
	TrackingNumber    string    `json:"tracking_number"`
	Status            string    `json:"status"`
	PickupCity        string    `json:"pickup_city"`
	DestinationCity   string    `json:"destination_city"`
	DistanceKm        float64   `json:"distance_km"`
	Price             float64   `json:"price"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	CreatedAt         time.Time `json:"created_at"`
}

type trackingResponse struct {
	TrackingNumber    string     `json:"tracking_number"`
	Status            string     `json:"status"`
	PickupCity        string     `json:"pickup_city"`
	DestinationCity   string     `json:"destination_city"`
	CurrentCity       *string    `json:"current_city,omitempty"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetOrders(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:                o.ID.String(),
			ParcelID:          o.ParcelID.String(),
			TrackingNumber:    o.TrackingNumber,
			Status:            o.Status,
			PickupCity:        o.PickupCity,
			DestinationCity:   o.DestinationCity,
			DistanceKm:        o.DistanceKm,
			Price:             o.Price,
			EstimatedDelivery: o.EstimatedDelivery,
			CreatedAt:         o.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return badRequest(c, "invalid parcel id")
	}

	pickup, err := req.Pickup.toDomain()
	if err != nil {
		return respondError(c, err)
	}

	destination, err := req.Destination.toDomain()
	if err != nil {
		return respondError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, parcelID, pickup, destination)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ChangeDestination handles PUT /api/v1/orders/:id/destination.
func (s *Server) ChangeDestination(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req changeDestinationRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	destination, err := req.Destination.toDomain()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeDestinationCommand(orderID, userID, destination)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.changeDestinationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status. Admin only.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	var currentLocation *kernel.Location
	if req.CurrentLocation != nil {
		loc, locErr := req.CurrentLocation.toDomain()
		if locErr != nil {
			return respondError(c, locErr)
		}
		currentLocation = &loc
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, currentLocation)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/track/:trackingNumber. Public.
func (s *Server) TrackOrder(c echo.Context) error {
	trackingNumber, err := order.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewTrackOrderQuery(trackingNumber)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.trackOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, trackingResponse{
		TrackingNumber:    resp.TrackingNumber,
		Status:            resp.Status,
		PickupCity:        resp.PickupCity,
		DestinationCity:   resp.DestinationCity,
		CurrentCity:       resp.CurrentCity,
		EstimatedDelivery: resp.EstimatedDelivery,
		ActualDelivery:    resp.ActualDelivery,
	})
}

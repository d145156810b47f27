package http

import (
	"net/http"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type parcelRequest struct {
	Description   string  `json:"description"`
	WeightKg      float64 `json:"weight_kg"`
	LengthCm      float64 `json:"length_cm"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	DeclaredValue float64 `json:"declared_value"`
	Fragile       bool    `json:"fragile"`
}

type parcelResponse struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	WeightKg       float64 `json:"weight_kg"`
	WeightCategory string  `json:"weight_category"`
	LengthCm       float64 `json:"length_cm"`
	WidthCm        float64 `json:"width_cm"`
	HeightCm       float64 `json:"height_cm"`
	DeclaredValue  float64 `json:"declared_value"`
	Fragile        bool    `json:"fragile"`
}

// GetParcels handles GET /api/v1/parcels - lists the caller's parcels.
func (s *Server) GetParcels(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetUserParcelsQuery(userID)
	if err != nil {
		return respondError(c, err)
	}

	parcels, err := s.getUserParcelsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelResponse{
			ID:             p.ID.String(),
			Description:    p.Description,
			WeightKg:       p.WeightKg,
			WeightCategory: p.WeightCategory,
			LengthCm:       p.LengthCm,
			WidthCm:        p.WidthCm,
			HeightCm:       p.HeightCm,
			DeclaredValue:  p.DeclaredValue,
			Fragile:        p.Fragile,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req parcelRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		userID,
		req.Description,
		req.WeightKg,
		req.LengthCm,
		req.WidthCm,
		req.HeightCm,
		req.DeclaredValue,
		req.Fragile,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// UpdateParcel handles PUT /api/v1/parcels/:id.
func (s *Server) UpdateParcel(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid parcel id")
	}

	var req parcelRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID,
		userID,
		req.Description,
		req.WeightKg,
		req.LengthCm,
		req.WidthCm,
		req.HeightCm,
		req.DeclaredValue,
		req.Fragile,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.updateParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(c echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID, userID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.deleteParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

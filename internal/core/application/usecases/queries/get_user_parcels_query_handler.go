package queries

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserParcelsQueryHandler lists a user's parcels from the database.
// The weight category is derived from the stored weight instead of being
// persisted, so the two can never disagree.
type GetUserParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserParcelsQueryHandler creates a handler for parcel list queries.
func NewGetUserParcelsQueryHandler(db *gorm.DB) GetUserParcelsQueryHandler {
	return GetUserParcelsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUserParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUserParcelsQuery,
) ([]GetUserParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUserParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			weight_kg,
			length_cm,
			width_cm,
			height_cm,
			declared_value,
			fragile
		FROM parcels
		WHERE user_id = ?
		ORDER BY id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserParcelsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Description,
			&resp.WeightKg,
			&resp.LengthCm,
			&resp.WidthCm,
			&resp.HeightCm,
			&resp.DeclaredValue,
			&resp.Fragile,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.WeightCategory = parcel.CategoryOf(resp.WeightKg).String()

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

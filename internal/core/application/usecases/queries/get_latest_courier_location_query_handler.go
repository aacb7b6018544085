package queries

import (
	"context"
	"database/sql"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLatestCourierLocationQueryHandler struct {
	db *gorm.DB
}

func NewGetLatestCourierLocationQueryHandler(db *gorm.DB) GetLatestCourierLocationQueryHandler {
	return GetLatestCourierLocationQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the courier never reported a location.
func (h GetLatestCourierLocationQueryHandler) Handle(
	ctx context.Context,
	query GetLatestCourierLocationQuery,
) (CourierLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierLocationResponse{}, err
	}
	return latestCourierLocation(ctx, h.db, query.CourierID())
}

// latestCourierLocation is shared with the route query, which falls back to
// the stored position when the courier does not send one.
func latestCourierLocation(ctx context.Context, db *gorm.DB, courierID kernel.UUID) (CourierLocationResponse, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			current_latitude,
			current_longitude,
			COALESCE(current_address, ''),
			location_updated_at
		FROM deliveries
		WHERE courier_id = ?
			AND location_updated_at IS NOT NULL
			AND current_latitude IS NOT NULL
			AND current_longitude IS NOT NULL
		ORDER BY location_updated_at DESC
		LIMIT 1
	`, courierID.Bytes()).Row()

	var (
		response CourierLocationResponse
		id       uuid.UUID
		lat, lon float64
	)
	err := row.Scan(&id, &lat, &lon, &response.Address, &response.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CourierLocationResponse{}, errs.NewObjectNotFoundError("courier location", courierID.String())
		}
		return CourierLocationResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CourierLocationResponse{}, err
	}

	location, err := kernel.NewCoordinates(lat, lon)
	if err != nil {
		return CourierLocationResponse{}, err
	}

	response.CourierID = courierID
	response.DeliveryID = deliveryID
	response.Location = location
	return response, nil
}

package queries

import (
	"context"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveCourierLocationsQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveCourierLocationsQueryHandler(db *gorm.DB) GetActiveCourierLocationsQueryHandler {
	return GetActiveCourierLocationsQueryHandler{db: db}
}

// Handle keeps, for every courier, the most recently updated location among
// the courier's active records. Couriers are ordered by name.
func (h GetActiveCourierLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCourierLocationsQuery,
) ([]ActiveCourierLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT * FROM (
			SELECT DISTINCT ON (d.courier_id)
				d.courier_id,
				COALESCE(u.name, ''),
				d.id,
				d.current_latitude,
				d.current_longitude,
				COALESCE(d.current_address, ''),
				d.location_updated_at
			FROM deliveries d
			LEFT JOIN users u ON u.id = d.courier_id
			WHERE d.status IN ?
				AND d.location_updated_at IS NOT NULL
				AND d.current_latitude IS NOT NULL
				AND d.current_longitude IS NOT NULL
			ORDER BY d.courier_id, d.location_updated_at DESC
		) latest
		ORDER BY 2, 1
	`, statusValues(delivery.ActiveStatuses())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]ActiveCourierLocationResponse, 0)
	for rows.Next() {
		var (
			item                  ActiveCourierLocationResponse
			courierID, deliveryID uuid.UUID
			lat, lon              float64
		)

		err = rows.Scan(&courierID, &item.CourierName, &deliveryID, &lat, &lon, &item.Address, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if item.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}
		if item.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}
		if item.Location, err = kernel.NewCoordinates(lat, lon); err != nil {
			return nil, err
		}

		locations = append(locations, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func statusValues(statuses []delivery.Status) []int {
	out := make([]int, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, int(s))
	}
	return out
}

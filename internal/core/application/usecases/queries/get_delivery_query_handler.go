package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.courier_id,
			d.client_id,
			d.status,
			COALESCE(d.restaurant_name, ''),
			COALESCE(d.restaurant_address, ''),
			COALESCE(o.delivery_address, ''),
			d.delivery_fee,
			d.rating,
			d.current_latitude,
			d.current_longitude,
			COALESCE(d.current_address, ''),
			d.location_updated_at,
			d.created_at,
			d.updated_at,
			d.delivered_at
		FROM deliveries d
		LEFT JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Row()

	var (
		response          DeliveryResponse
		id, courierID     uuid.UUID
		orderID, clientID *uuid.UUID
		status            int
		lat, lon          *float64
		address           string
		locatedAt         *time.Time
	)
	err := row.Scan(
		&id,
		&orderID,
		&courierID,
		&clientID,
		&status,
		&response.RestaurantName,
		&response.RestaurantAddress,
		&response.DeliveryAddress,
		&response.DeliveryFee,
		&response.Rating,
		&lat,
		&lon,
		&address,
		&locatedAt,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
		}
		return DeliveryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if response.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if response.OrderID, err = optionalUUID(orderID); err != nil {
		return DeliveryResponse{}, err
	}
	if response.ClientID, err = optionalUUID(clientID); err != nil {
		return DeliveryResponse{}, err
	}
	response.Status = delivery.Status(status)

	if lat != nil && lon != nil && locatedAt != nil {
		location, coordErr := kernel.NewCoordinates(*lat, *lon)
		if coordErr != nil {
			return DeliveryResponse{}, coordErr
		}
		response.CurrentLocation = &CourierLocationResponse{
			CourierID:  response.CourierID,
			DeliveryID: response.ID,
			Location:   location,
			Address:    address,
			UpdatedAt:  *locatedAt,
		}
	}

	return response, nil
}

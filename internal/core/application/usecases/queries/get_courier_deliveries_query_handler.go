package queries

import (
	"context"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]CourierDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := statusValues(delivery.Statuses())
	if s := query.Status(); s != nil {
		statuses = []int{int(*s)}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.status,
			COALESCE(d.restaurant_name, ''),
			COALESCE(o.delivery_address, ''),
			COALESCE(o.total_price, 0),
			d.delivery_fee,
			d.rating,
			d.created_at,
			d.delivered_at
		FROM deliveries d
		LEFT JOIN orders o ON o.id = d.order_id
		WHERE d.courier_id = ? AND d.status IN ?
		ORDER BY d.created_at DESC, d.id
	`, query.CourierID().Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]CourierDeliveryResponse, 0)
	for rows.Next() {
		var (
			item    CourierDeliveryResponse
			id      uuid.UUID
			orderID *uuid.UUID
			status  int
		)

		err = rows.Scan(
			&id,
			&orderID,
			&status,
			&item.RestaurantName,
			&item.DeliveryAddress,
			&item.OrderTotal,
			&item.DeliveryFee,
			&item.Rating,
			&item.CreatedAt,
			&item.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.OrderID, err = optionalUUID(orderID); err != nil {
			return nil, err
		}
		item.Status = delivery.Status(status)

		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCourierStatsQueryHandler struct {
	db         *gorm.DB
	aggregator services.StatsAggregator
}

func NewGetCourierStatsQueryHandler(db *gorm.DB) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{
		db:         db,
		aggregator: services.NewStatsAggregator(),
	}
}

// Handle returns errs.ErrObjectNotFound unless the id belongs to a courier.
func (h GetCourierStatsQueryHandler) Handle(ctx context.Context, query GetCourierStatsQuery) (services.CourierStats, error) {
	if err := query.Validate(); err != nil {
		return services.CourierStats{}, err
	}

	if err := h.ensureCourier(ctx, query.CourierID()); err != nil {
		return services.CourierStats{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.status,
			d.delivery_fee,
			COALESCE(o.total_price, 0),
			COALESCE(o.payment_status, 0)
		FROM deliveries d
		LEFT JOIN orders o ON o.id = d.order_id
		WHERE d.courier_id = ?
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return services.CourierStats{}, err
	}
	defer rows.Close()

	figures := make([]services.DeliveryFigures, 0)
	for rows.Next() {
		var status, paymentStatus int
		var f services.DeliveryFigures

		if err = rows.Scan(&status, &f.DeliveryFee, &f.OrderTotal, &paymentStatus); err != nil {
			return services.CourierStats{}, err
		}

		f.Status = delivery.Status(status)
		f.OrderPaid = order.PaymentStatus(paymentStatus) == order.PaymentPaid
		figures = append(figures, f)
	}

	if err = rows.Err(); err != nil {
		return services.CourierStats{}, err
	}

	return h.aggregator.Aggregate(figures), nil
}

func (h GetCourierStatsQueryHandler) ensureCourier(ctx context.Context, courierID kernel.UUID) error {
	var role string
	err := h.db.WithContext(ctx).Raw(`SELECT role FROM users WHERE id = ?`, courierID.Bytes()).Row().Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("courier", courierID.String())
		}
		return err
	}

	if r, parseErr := user.ParseRole(role); parseErr != nil || r != user.Courier {
		return errs.NewObjectNotFoundError("courier", courierID.String())
	}
	return nil
}

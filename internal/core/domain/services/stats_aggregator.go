package services

import (
	"math"

	"courierhub/internal/core/domain/model/delivery"
)

// DeliveryFigures is what the aggregation needs to know about one record.
// OrderTotal is zero and OrderPaid false for placeholders.
type DeliveryFigures struct {
	Status      delivery.Status
	DeliveryFee float64
	OrderTotal  float64
	OrderPaid   bool
}

type CourierStats struct {
	// Completed counts delivered records.
	Completed int
	// Pending counts records that are still active.
	Pending int
	// Collected sums the order totals of delivered, paid orders.
	Collected float64
	// Earnings sums the delivery fee snapshot of delivered records.
	Earnings float64
}

// StatsAggregator computes a courier's dashboard figures.
// Earnings come only from the fee stored on each record at assignment; there
// is no percentage-of-order fallback. Money is rounded to cents.
type StatsAggregator struct{}

func NewStatsAggregator() StatsAggregator {
	return StatsAggregator{}
}

func (StatsAggregator) Aggregate(records []DeliveryFigures) CourierStats {
	var stats CourierStats

	for _, r := range records {
		switch {
		case r.Status == delivery.Delivered:
			stats.Completed++
			stats.Earnings += r.DeliveryFee
			if r.OrderPaid {
				stats.Collected += r.OrderTotal
			}
		case r.Status.IsActive():
			stats.Pending++
		}
	}

	stats.Collected = roundCents(stats.Collected)
	stats.Earnings = roundCents(stats.Earnings)
	return stats
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

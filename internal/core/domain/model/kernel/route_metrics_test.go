package kernel_test

import (
	"math"
	"testing"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRouteMetrics(t *testing.T) {
	t.Run("empty and single point routes are zero", func(t *testing.T) {
		zero := kernel.RouteMetrics{TotalDistanceKm: 0, EstimatedTimeMinutes: 0, EstimatedTimeText: "0 min"}

		assert.Equal(t, zero, kernel.CalculateRouteMetrics(nil))
		assert.Equal(t, zero, kernel.CalculateRouteMetrics([]kernel.Coordinates{mustCoordinates(t, 36.8, 10.18)}))
	})

	t.Run("two points", func(t *testing.T) {
		from := mustCoordinates(t, 36.80, 10.18)
		to := mustCoordinates(t, 36.85, 10.20)
		distance := kernel.DistanceKm(36.80, 10.18, 36.85, 10.20)

		m := kernel.CalculateRouteMetrics([]kernel.Coordinates{from, to})

		assert.InDelta(t, math.Round(distance*10)/10, m.TotalDistanceKm, 1e-9)
		assert.Equal(t, int(math.Round(distance/25*60)), m.EstimatedTimeMinutes)
		assert.Equal(t, "14 min", m.EstimatedTimeText)
	})

	t.Run("longer route is never shorter than its prefix", func(t *testing.T) {
		points := []kernel.Coordinates{
			mustCoordinates(t, 36.80, 10.18),
			mustCoordinates(t, 36.85, 10.20),
			mustCoordinates(t, 36.81, 10.30),
		}

		prefix := kernel.CalculateRouteMetrics(points[:2])
		full := kernel.CalculateRouteMetrics(points)

		assert.GreaterOrEqual(t, full.TotalDistanceKm, prefix.TotalDistanceKm)
		assert.GreaterOrEqual(t, full.EstimatedTimeMinutes, prefix.EstimatedTimeMinutes)
	})

	t.Run("minutes use the unrounded distance", func(t *testing.T) {
		// 0.1 degree of latitude is about 11.12 km, i.e. 26.7 minutes at 25 km/h.
		m := kernel.CalculateRouteMetrics([]kernel.Coordinates{
			mustCoordinates(t, 0, 0),
			mustCoordinates(t, 0.1, 0),
		})

		assert.InDelta(t, 11.1, m.TotalDistanceKm, 1e-9)
		assert.Equal(t, 27, m.EstimatedTimeMinutes)
	})
}

func TestFormatTravelTime(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0 min"},
		{1, "1 min"},
		{59, "59 min"},
		{60, "1 hr "},
		{61, "1 hr 1 min"},
		{135, "2 hr 15 min"},
		{180, "3 hr "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, kernel.FormatTravelTime(tt.minutes), "minutes=%d", tt.minutes)
	}
}

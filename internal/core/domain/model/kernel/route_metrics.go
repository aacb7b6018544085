package kernel

import (
	"fmt"
	"math"
)

// AverageUrbanSpeedKmh is the fixed courier speed used for time estimates.
const AverageUrbanSpeedKmh = 25.0

// RouteMetrics summarises an ordered list of points.
type RouteMetrics struct {
	// TotalDistanceKm is rounded to one decimal place.
	TotalDistanceKm float64
	// EstimatedTimeMinutes is derived from the unrounded distance.
	EstimatedTimeMinutes int
	// EstimatedTimeText is "X min" below one hour and "H hr M min" above it.
	EstimatedTimeText string
}

// CalculateRouteMetrics sums DistanceKm over consecutive points and converts
// the total to travel time at AverageUrbanSpeedKmh.
//
// With zero or one point every metric is zero and the text is "0 min".
// When the minutes part is zero the text keeps a trailing space, e.g. "1 hr ".
//
// Example:
//
//	m := kernel.CalculateRouteMetrics([]kernel.Coordinates{start, restaurant, customer})
//	fmt.Println(m.EstimatedTimeText) // "14 min"
func CalculateRouteMetrics(points []Coordinates) RouteMetrics {
	if len(points) <= 1 {
		return RouteMetrics{EstimatedTimeText: FormatTravelTime(0)}
	}

	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += points[i].DistanceTo(points[i+1])
	}

	minutes := int(math.Round(total / AverageUrbanSpeedKmh * 60))

	return RouteMetrics{
		TotalDistanceKm:      math.Round(total*10) / 10,
		EstimatedTimeMinutes: minutes,
		EstimatedTimeText:    FormatTravelTime(minutes),
	}
}

// FormatTravelTime renders minutes the way couriers see them in the app.
func FormatTravelTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60

	text := fmt.Sprintf("%d hr ", hours)
	if rest > 0 {
		text += fmt.Sprintf("%d min", rest)
	}
	return text
}

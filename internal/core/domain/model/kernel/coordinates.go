package kernel

import (
	"errors"
	"fmt"
	"math"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by DistanceKm.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when a zero Coordinates value is used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is an immutable WGS84 point in decimal degrees.
// Latitude is bounded to [-90, 90] and longitude to [-180, 180].
// The zero value is invalid: (0, 0) is a real place, so validity is tracked
// by the constructor guard rather than by the numbers themselves.
//
// Example:
//
//	restaurant, err := kernel.NewCoordinates(36.8065, 10.1815)
//	if err != nil {
//	    return err // errs.ErrValueIsOutOfRange
//	}
//	km := restaurant.DistanceTo(customer)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates validates the ranges and returns the point.
// Both violations are reported together when both values are out of range.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Latitude() float64 {
	return c.latitude
}

func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares both components exactly.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// DistanceTo is the great-circle distance in kilometers, see DistanceKm.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return DistanceKm(c.latitude, c.longitude, other.latitude, other.longitude)
}

// DistanceKm computes the haversine great-circle distance in kilometers
// between two points given in decimal degrees, with EarthRadiusKm as radius.
//
//	a = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
//	c = 2 · atan2(√a, √(1−a))
//	d = R · c
//
// The result is symmetric and zero for identical points. It is not a road
// distance.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

package delivery

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

// MaxLocationHistory is the number of samples kept per record. Older samples
// are evicted first.
const MaxLocationHistory = 100

var ErrTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")

// TrackedLocation is the last reported courier position on a record.
type TrackedLocation struct {
	coordinates kernel.Coordinates
	address     string
	updatedAt   time.Time
}

func NewTrackedLocation(coordinates kernel.Coordinates, address string, updatedAt time.Time) (TrackedLocation, error) {
	if err := errors.Join(coordinates.Validate(), validateTimestamp(updatedAt)); err != nil {
		return TrackedLocation{}, err
	}
	return TrackedLocation{
		coordinates: coordinates,
		address:     address,
		updatedAt:   updatedAt,
	}, nil
}

func (l TrackedLocation) Coordinates() kernel.Coordinates {
	return l.coordinates
}

func (l TrackedLocation) Address() string {
	return l.address
}

func (l TrackedLocation) UpdatedAt() time.Time {
	return l.updatedAt
}

// LocationSample is one entry of the location history.
type LocationSample struct {
	coordinates kernel.Coordinates
	timestamp   time.Time
}

func NewLocationSample(coordinates kernel.Coordinates, timestamp time.Time) (LocationSample, error) {
	if err := errors.Join(coordinates.Validate(), validateTimestamp(timestamp)); err != nil {
		return LocationSample{}, err
	}
	return LocationSample{coordinates: coordinates, timestamp: timestamp}, nil
}

func (s LocationSample) Coordinates() kernel.Coordinates {
	return s.coordinates
}

func (s LocationSample) Timestamp() time.Time {
	return s.timestamp
}

func validateTimestamp(t time.Time) error {
	if t.IsZero() {
		return ErrTimestampIsRequired
	}
	return nil
}

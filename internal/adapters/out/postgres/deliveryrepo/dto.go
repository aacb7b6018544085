// Package deliveryrepo persists Delivery aggregates. The current location,
// the restaurant snapshot and the history live in the same row; the history
// is a JSONB array capped by the aggregate.
package deliveryrepo

import (
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID                uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID           *uuid.UUID            `gorm:"type:uuid"`
	CourierID         uuid.UUID             `gorm:"type:uuid;not null"`
	ClientID          *uuid.UUID            `gorm:"type:uuid"`
	Status            int                   `gorm:"type:smallint;not null"`
	Current           CurrentLocationDTO    `gorm:"embedded;embeddedPrefix:current_"`
	LocationUpdatedAt *time.Time            `gorm:"column:location_updated_at"`
	LocationHistory   []LocationSampleDTO   `gorm:"serializer:json;type:jsonb;not null"`
	DeliveredAt       *time.Time
	Rating            *int                  `gorm:"type:smallint"`
	Restaurant        RestaurantSnapshotDTO `gorm:"embedded;embeddedPrefix:restaurant_"`
	DeliveryFee       float64               `gorm:"type:numeric(10,2);not null"`
	CreatedAt         time.Time             `gorm:"autoCreateTime:false;not null"`
	UpdatedAt         time.Time             `gorm:"autoUpdateTime:false;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type CurrentLocationDTO struct {
	Latitude  *float64
	Longitude *float64
	Address   *string
}

// LocationSampleDTO is one element of the location_history JSON array.
type LocationSampleDTO struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// RestaurantSnapshotDTO columns are all null for placeholders.
type RestaurantSnapshotDTO struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:          d.ID().Bytes(),
		OrderID:     uuidPtr(d.Order()),
		CourierID:   d.Courier().Bytes(),
		ClientID:    uuidPtr(d.Client()),
		Status:      int(d.Status()),
		DeliveredAt: d.DeliveredAt(),
		Rating:      d.Rating(),
		DeliveryFee: d.DeliveryFee(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}

	if loc := d.CurrentLocation(); loc != nil {
		lat, lon, addr := loc.Coordinates().Latitude(), loc.Coordinates().Longitude(), loc.Address()
		at := loc.UpdatedAt()
		dto.Current = CurrentLocationDTO{Latitude: &lat, Longitude: &lon, Address: &addr}
		dto.LocationUpdatedAt = &at
	}

	history := d.LocationHistory()
	dto.LocationHistory = make([]LocationSampleDTO, 0, len(history))
	for _, s := range history {
		dto.LocationHistory = append(dto.LocationHistory, LocationSampleDTO{
			Latitude:  s.Coordinates().Latitude(),
			Longitude: s.Coordinates().Longitude(),
			Timestamp: s.Timestamp(),
		})
	}

	if r := d.Restaurant(); r != nil {
		name, addr := r.Name(), r.Address()
		dto.Restaurant = RestaurantSnapshotDTO{Name: &name, Address: &addr}
		if c := r.Coordinates(); c != nil {
			lat, lon := c.Latitude(), c.Longitude()
			dto.Restaurant.Latitude, dto.Restaurant.Longitude = &lat, &lon
		}
	}

	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernelUUIDPtr(dto.OrderID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernelUUIDPtr(dto.ClientID)
	if err != nil {
		return nil, err
	}

	current, err := currentLocation(dto)
	if err != nil {
		return nil, err
	}

	history := make([]delivery.LocationSample, 0, len(dto.LocationHistory))
	for _, s := range dto.LocationHistory {
		c, coordErr := kernel.NewCoordinates(s.Latitude, s.Longitude)
		if coordErr != nil {
			return nil, coordErr
		}
		sample, sampleErr := delivery.NewLocationSample(c, s.Timestamp)
		if sampleErr != nil {
			return nil, sampleErr
		}
		history = append(history, sample)
	}

	restaurant, err := restaurantSnapshot(dto.Restaurant)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.State{
		ID:              id,
		OrderID:         orderID,
		CourierID:       courierID,
		ClientID:        clientID,
		Status:          delivery.Status(dto.Status),
		CurrentLocation: current,
		LocationHistory: history,
		DeliveredAt:     dto.DeliveredAt,
		Rating:          dto.Rating,
		Restaurant:      restaurant,
		DeliveryFee:     dto.DeliveryFee,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func currentLocation(dto DeliveryDTO) (*delivery.TrackedLocation, error) {
	cur := dto.Current
	if cur.Latitude == nil || cur.Longitude == nil || dto.LocationUpdatedAt == nil {
		return nil, nil
	}

	c, err := kernel.NewCoordinates(*cur.Latitude, *cur.Longitude)
	if err != nil {
		return nil, err
	}

	address := ""
	if cur.Address != nil {
		address = *cur.Address
	}

	loc, err := delivery.NewTrackedLocation(c, address, *dto.LocationUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func restaurantSnapshot(dto RestaurantSnapshotDTO) (*delivery.RestaurantSnapshot, error) {
	if dto.Name == nil {
		return nil, nil
	}

	var coordinates *kernel.Coordinates
	if dto.Latitude != nil && dto.Longitude != nil {
		c, err := kernel.NewCoordinates(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		coordinates = &c
	}

	address := ""
	if dto.Address != nil {
		address = *dto.Address
	}

	s := delivery.NewRestaurantSnapshot(*dto.Name, address, coordinates)
	return &s, nil
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Package orderrepo persists the order fields the courier core reads and the
// courier assignment and status it writes back.
package orderrepo

import (
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Destination columns are both
// null when the customer location is unknown.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID      `gorm:"type:uuid;not null"`
	DeliveryAddress string         `gorm:"not null;default:''"`
	Destination     DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	CourierID       *uuid.UUID     `gorm:"type:uuid;index"`
	Status          int            `gorm:"type:smallint;not null"`
	TotalPrice      float64        `gorm:"type:numeric(10,2);not null"`
	DeliveryFee     float64        `gorm:"type:numeric(10,2);not null"`
	PaymentStatus   int            `gorm:"type:smallint;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DestinationDTO struct {
	Latitude  *float64
	Longitude *float64
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var destination DestinationDTO
	if d := o.Destination(); d != nil {
		lat, lon := d.Latitude(), d.Longitude()
		destination = DestinationDTO{Latitude: &lat, Longitude: &lon}
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		ClientID:        o.ClientID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		DeliveryAddress: o.DeliveryAddress(),
		Destination:     destination,
		CourierID:       courierID,
		Status:          int(o.Status()),
		TotalPrice:      o.TotalPrice(),
		DeliveryFee:     o.DeliveryFee(),
		PaymentStatus:   int(o.PaymentStatus()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var destination *kernel.Coordinates
	if dto.Destination.Latitude != nil && dto.Destination.Longitude != nil {
		c, coordErr := kernel.NewCoordinates(*dto.Destination.Latitude, *dto.Destination.Longitude)
		if coordErr != nil {
			return nil, coordErr
		}
		destination = &c
	}

	return order.RestoreOrder(
		id,
		clientID,
		restaurantID,
		dto.DeliveryAddress,
		destination,
		courierID,
		order.Status(dto.Status),
		dto.TotalPrice,
		dto.DeliveryFee,
		order.PaymentStatus(dto.PaymentStatus),
	)
}

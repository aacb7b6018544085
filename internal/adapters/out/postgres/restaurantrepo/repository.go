// Package restaurantrepo reads and seeds restaurants. Their name, address and
// coordinates are copied onto a delivery when a courier is assigned.
package restaurantrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/restaurant"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Address   string    `gorm:"not null;default:''"`
	Latitude  *float64
	Longitude *float64
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := RestaurantDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
	}
	if c := aggregate.Coordinates(); c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lon
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	var coordinates *kernel.Coordinates
	if dto.Latitude != nil && dto.Longitude != nil {
		c, err := kernel.NewCoordinates(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		coordinates = &c
	}

	return restaurant.NewRestaurant(id, dto.Name, dto.Address, coordinates)
}

package restaurant_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	coords, err := kernel.NewCoordinates(36.8065, 10.1815)
	require.NoError(t, err)

	t.Run("with coordinates", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Chez Ali", "Rue de Marseille", &coords)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Chez Ali", r.Name())
		assert.Equal(t, "Rue de Marseille", r.Address())
		require.NotNil(t, r.Coordinates())
		assert.True(t, r.Coordinates().IsEqual(coords))
	})

	t.Run("coordinates are optional", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Chez Ali", "", nil)

		require.NoError(t, err)
		assert.Nil(t, r.Coordinates())
	})

	t.Run("rejects missing name and unconstructed coordinates", func(t *testing.T) {
		var zero kernel.Coordinates

		r, err := restaurant.NewRestaurant(kernel.NewUUID(), "", "", &zero)

		assert.Nil(t, r)
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
	})
}

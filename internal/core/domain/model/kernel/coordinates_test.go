package kernel_test

import (
	"math"
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinates(t *testing.T, lat, lon float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}

func TestNewCoordinates(t *testing.T) {
	t.Run("accepts boundary values", func(t *testing.T) {
		for _, pair := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}, {36.8065, 10.1815}} {
			c, err := kernel.NewCoordinates(pair[0], pair[1])

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.InDelta(t, pair[0], c.Latitude(), 0)
			assert.InDelta(t, pair[1], c.Longitude(), 0)
		}
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.0001, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("rejects longitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(10, -180.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("reports both violations", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, err := kernel.NewCoordinates(math.NaN(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var c kernel.Coordinates
		require.ErrorIs(t, c.Validate(), errs.ErrValueIsRequired)
	})
}

func TestDistanceKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, kernel.DistanceKm(36.8065, 10.1815, 36.8065, 10.1815), 0)
	})

	t.Run("is symmetric", func(t *testing.T) {
		ab := kernel.DistanceKm(36.80, 10.18, 36.85, 10.20)
		ba := kernel.DistanceKm(36.85, 10.20, 36.80, 10.18)

		assert.InDelta(t, ab, ba, 1e-12)
	})

	t.Run("tenth of a degree of latitude at the equator", func(t *testing.T) {
		d := kernel.DistanceKm(0, 0, 0.1, 0)
		assert.InEpsilon(t, 11.1, d, 0.01)
	})

	t.Run("paris to london", func(t *testing.T) {
		d := kernel.DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
		assert.InEpsilon(t, 343.5, d, 0.005)
	})

	t.Run("method agrees with function", func(t *testing.T) {
		a := mustCoordinates(t, 36.80, 10.18)
		b := mustCoordinates(t, 36.85, 10.20)

		assert.InDelta(t, kernel.DistanceKm(36.80, 10.18, 36.85, 10.20), a.DistanceTo(b), 0)
	})
}

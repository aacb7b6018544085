package delivery_test

import (
	"testing"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire name", func(t *testing.T) {
		for _, s := range delivery.Statuses() {
			parsed, err := delivery.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should tolerate case and spaces", func(t *testing.T) {
		parsed, err := delivery.ParseStatus("  Picked_Up ")
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, parsed)
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "in_transit", "unknown", "livring"} {
			_, err := delivery.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[delivery.Status][]delivery.Status{
		delivery.Pending:    {delivery.PickedUp, delivery.Cancelled},
		delivery.PickedUp:   {delivery.Delivering, delivery.Cancelled},
		delivery.Delivering: {delivery.Delivered, delivery.Cancelled},
		delivery.Delivered:  {},
		delivery.Cancelled:  {},
	}

	for from, targets := range allowed {
		for _, to := range delivery.Statuses() {
			err := from.CanTransitionTo(to)
			if contains(targets, to) {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", from, to)
			}
		}
	}
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, delivery.Pending.IsActive())
	assert.True(t, delivery.Delivering.IsActive())
	assert.False(t, delivery.Delivered.IsActive())
	assert.False(t, delivery.Cancelled.IsActive())

	assert.True(t, delivery.Pending.IsRoutable())
	assert.True(t, delivery.PickedUp.IsRoutable())
	assert.False(t, delivery.Delivering.IsRoutable())

	assert.True(t, delivery.Delivered.IsFinal())
	assert.Equal(t, "unknown", delivery.Unknown.String())
	require.ErrorIs(t, delivery.Unknown.Validate(), errs.ErrValueIsInvalid)
}

func contains(list []delivery.Status, s delivery.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

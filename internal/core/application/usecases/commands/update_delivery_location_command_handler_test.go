package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDeliveryLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courier := newCourierUser(t)
	_, d := assignedDelivery(t, courier)
	cmd, err := commands.NewUpdateDeliveryLocationCommand(d.ID(), courier.ID(), 36.82, 10.17, "Place Pasteur")
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		deliveries.On("UpdateLocation", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateDeliveryLocationCommandHandler(factory, fixedClock())
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, d.CurrentLocation())
	assert.Equal(t, "Place Pasteur", d.CurrentLocation().Address())
	assert.Equal(t, testNow, d.UpdatedAt())
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryLocationCommandHandler_Handle_OtherCourier(t *testing.T) {
	ctx := t.Context()
	courier := newCourierUser(t)
	_, d := assignedDelivery(t, courier)
	cmd, err := commands.NewUpdateDeliveryLocationCommand(d.ID(), kernel.NewUUID(), 36.82, 10.17, "")
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateDeliveryLocationCommandHandler(factory, fixedClock())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Nil(t, d.CurrentLocation())
	deliveries.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything)
}

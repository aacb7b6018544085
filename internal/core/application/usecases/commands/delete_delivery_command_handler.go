package commands

import (
	"context"
)

type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the record. Unknown ids fail with errs.ErrObjectNotFound.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

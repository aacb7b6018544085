package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// PurgeStalePlaceholdersCommandHandler is run by the scheduler.
type PurgeStalePlaceholdersCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewPurgeStalePlaceholdersCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) PurgeStalePlaceholdersCommandHandler {
	return PurgeStalePlaceholdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of removed records.
func (h PurgeStalePlaceholdersCommandHandler) Handle(ctx context.Context, cmd PurgeStalePlaceholdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.DeliveryRepository().DeleteStalePlaceholders(ctx, h.clock.Now().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

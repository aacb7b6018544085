package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// UpdateCourierLocationResult describes a multi-record location update.
// Errors holds one "Delivery <id>: <message>" line per record that failed.
type UpdateCourierLocationResult struct {
	Updated       int
	Errors        []string
	PlaceholderID *kernel.UUID

	failures []error
}

// Err is nil when every record was updated. Otherwise it is an
// errs.PartialFailureError naming how many records made it.
func (r UpdateCourierLocationResult) Err() error {
	if len(r.failures) == 0 {
		return nil
	}
	return errs.NewPartialFailureError(
		strconv.Itoa(r.Updated)+" deliveries",
		strconv.Itoa(len(r.failures))+" deliveries",
		errors.Join(r.failures...),
	)
}

// UpdateCourierLocationCommandHandler writes a courier's position onto every
// active record of the courier. Each record is reloaded and saved in its own transaction:
// one failing record does not undo the others, and the outcome is reported
// per record instead of as an error.
//
// A courier without active records gets a placeholder so that the position
// is still discoverable.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
}

func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory, clock ports.Clock) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateCourierLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierLocationCommand,
) (UpdateCourierLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateCourierLocationResult{}, err
	}

	active, placeholderID, err := h.loadOrCreatePlaceholder(ctx, cmd)
	if err != nil {
		return UpdateCourierLocationResult{}, err
	}
	if placeholderID != nil {
		return UpdateCourierLocationResult{Updated: 1, PlaceholderID: placeholderID}, nil
	}

	result := UpdateCourierLocationResult{}
	for _, d := range active {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		if updateErr := h.updateOne(ctx, d.ID(), cmd); updateErr != nil {
			result.failures = append(result.failures, updateErr)
			result.Errors = append(result.Errors, fmt.Sprintf("Delivery %s: %v", d.ID(), updateErr))
			continue
		}
		result.Updated++
	}

	return result, nil
}

// loadOrCreatePlaceholder returns the courier's active records, or creates a
// placeholder and returns its id when there are none.
func (h UpdateCourierLocationCommandHandler) loadOrCreatePlaceholder(
	ctx context.Context,
	cmd UpdateCourierLocationCommand,
) ([]*delivery.Delivery, *kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	active, err := deliveryRepo.GetActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return nil, nil, err
	}
	if len(active) > 0 {
		return active, nil, nil
	}

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, nil, err
	}

	now := h.clock.Now()
	location, err := delivery.NewTrackedLocation(cmd.Coordinates(), cmd.Address(), now)
	if err != nil {
		return nil, nil, err
	}

	placeholder, err := delivery.NewPlaceholder(kernel.NewUUID(), courier, &location, now)
	if err != nil {
		return nil, nil, err
	}

	if err = deliveryRepo.Add(ctx, placeholder); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	id := placeholder.ID()
	return nil, &id, nil
}

// updateOne reloads the record under a row lock and writes only its location,
// so a status change committed since the lookup is kept.
func (h UpdateCourierLocationCommandHandler) updateOne(
	ctx context.Context,
	id kernel.UUID,
	cmd UpdateCourierLocationCommand,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err = d.UpdateLocation(cmd.Coordinates(), cmd.Address(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateLocation(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

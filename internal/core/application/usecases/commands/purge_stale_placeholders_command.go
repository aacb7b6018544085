package commands

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrPurgeStalePlaceholdersCommandIsNotConstructed = errors.New(
	"PurgeStalePlaceholdersCommand must be created via NewPurgeStalePlaceholdersCommand constructor",
)

// PurgeStalePlaceholdersCommand removes location-only records that have not
// been touched for longer than ttl.
type PurgeStalePlaceholdersCommand struct {
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeStalePlaceholdersCommand(ttl time.Duration) (PurgeStalePlaceholdersCommand, error) {
	if ttl <= 0 {
		return PurgeStalePlaceholdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not a positive duration", ttl))
	}

	return PurgeStalePlaceholdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeStalePlaceholdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStalePlaceholdersCommandIsNotConstructed)
}

func (c PurgeStalePlaceholdersCommand) TTL() time.Duration {
	return c.ttl
}

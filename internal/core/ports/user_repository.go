package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

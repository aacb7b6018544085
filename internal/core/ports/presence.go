package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
)

// PresenceStore keeps which users are online and through which session.
// A user has at most one session; connecting again replaces it.
type PresenceStore interface {
	Set(ctx context.Context, userID kernel.UUID, sessionID string) error

	// Remove reports whether the user was online.
	Remove(ctx context.Context, userID kernel.UUID) (bool, error)

	// FindBySession returns the user bound to sessionID, if any.
	FindBySession(ctx context.Context, sessionID string) (kernel.UUID, bool, error)

	// List returns the online users in no particular order.
	List(ctx context.Context) ([]kernel.UUID, error)
}

// PresenceBroadcaster tells connected clients about presence changes.
type PresenceBroadcaster interface {
	BroadcastStatusChange(ctx context.Context, userID kernel.UUID, online bool) error
	BroadcastOnlineUsers(ctx context.Context, userIDs []kernel.UUID) error
}

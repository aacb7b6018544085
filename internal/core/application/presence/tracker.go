// Package presence tracks which users are connected to the realtime channel.
//
// The Tracker owns the lifecycle: a user connects with a session id, and
// leaves either explicitly or when the session drops. Every change is
// broadcast to the other clients. Broadcast failures are logged and never
// undo the state change.
package presence

import (
	"context"
	"log/slog"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

type Tracker struct {
	store       ports.PresenceStore
	broadcaster ports.PresenceBroadcaster
	logger      *slog.Logger
}

func NewTracker(store ports.PresenceStore, broadcaster ports.PresenceBroadcaster, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:       store,
		broadcaster: broadcaster,
		logger:      logger.With("component", "presence_tracker"),
	}
}

// Connect marks the user online under sessionID and returns everyone online,
// the caller included.
func (t *Tracker) Connect(ctx context.Context, userID kernel.UUID, sessionID string) ([]kernel.UUID, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("session id")
	}

	if err := t.store.Set(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	t.logger.InfoContext(ctx, "user is online", "user_id", userID.String())
	t.broadcastChange(ctx, userID, true)

	return t.store.List(ctx)
}

// Disconnect is a no-op for users that are not online.
func (t *Tracker) Disconnect(ctx context.Context, userID kernel.UUID) error {
	removed, err := t.store.Remove(ctx, userID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	t.logger.InfoContext(ctx, "user is offline", "user_id", userID.String())
	t.broadcastChange(ctx, userID, false)
	return nil
}

// DisconnectSession handles a dropped connection, for which only the session
// id is known.
func (t *Tracker) DisconnectSession(ctx context.Context, sessionID string) error {
	userID, found, err := t.store.FindBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return t.Disconnect(ctx, userID)
}

// SessionOwner reports which user holds sessionID, if anyone does.
func (t *Tracker) SessionOwner(ctx context.Context, sessionID string) (kernel.UUID, bool, error) {
	return t.store.FindBySession(ctx, sessionID)
}

func (t *Tracker) Online(ctx context.Context) ([]kernel.UUID, error) {
	return t.store.List(ctx)
}

// BroadcastOnline sends the full online set, so clients that missed a change
// converge.
func (t *Tracker) BroadcastOnline(ctx context.Context) error {
	online, err := t.store.List(ctx)
	if err != nil {
		return err
	}
	return t.broadcaster.BroadcastOnlineUsers(ctx, online)
}

func (t *Tracker) broadcastChange(ctx context.Context, userID kernel.UUID, online bool) {
	if err := t.broadcaster.BroadcastStatusChange(ctx, userID, online); err != nil {
		t.logger.ErrorContext(ctx, "failed to broadcast presence change",
			"user_id", userID.String(),
			"online", online,
			"error", err,
		)
	}
}

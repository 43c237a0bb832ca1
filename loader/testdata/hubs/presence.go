package hubs

import "context"

// PresenceHub tracks who is online.
//
//hubdoc:hub discovery:"Methods" documents:"internal"
type PresenceHub struct{}

// Join marks a user online.
//
//hubdoc:arg room description:"Room to join"
func (h *PresenceHub) Join(ctx context.Context, user, room string) error { return nil }

// Leave marks a user offline.
func (h *PresenceHub) Leave(ctx context.Context, user string) error { return nil }

func (h *PresenceHub) cleanup() {}

package commands

import (
	"errors"

	"purchase/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand represents a request to hand off all pending
// notification records. Carries no parameters; the handler picks up whatever
// is waiting.
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to dispatch pending notifications.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	return DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNotificationsCommandIsNotConstructed if validation fails.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

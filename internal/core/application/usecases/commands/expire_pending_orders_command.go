package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand requests cancellation of Pending orders older
// than the given age. Issued periodically by the expiry job.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates an expiry command.
// maxAge must be positive.
func NewExpirePendingOrdersCommand(maxAge time.Duration) (ExpirePendingOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewWithCause(errs.Validation, "maxAge is invalid",
			fmt.Errorf("%s is not greater than 0", maxAge))
	}

	return ExpirePendingOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// MaxAge returns how old a Pending order must be before it is cancelled.
func (c ExpirePendingOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

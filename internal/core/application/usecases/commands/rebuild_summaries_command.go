package commands

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/guard"
)

// ErrRebuildSummariesCommandIsNotConstructed is returned when the command
// was created bypassing its constructor.
var ErrRebuildSummariesCommandIsNotConstructed = errors.New(
	"RebuildSummariesCommand must be created via NewRebuildSummariesCommand")

// RebuildSummariesCommand requests a full recomputation of the cached
// per-date summary rows over an inclusive date window, straight from the
// allocation grid.
type RebuildSummariesCommand struct {
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewRebuildSummariesCommand creates a summary rebuild command with
// validation. The window must not be inverted.
func NewRebuildSummariesCommand(from, to kernel.Date) (RebuildSummariesCommand, error) {
	if err := from.Validate(); err != nil {
		return RebuildSummariesCommand{}, err
	}
	if err := to.Validate(); err != nil {
		return RebuildSummariesCommand{}, err
	}
	if to.Before(from) {
		return RebuildSummariesCommand{}, errors.New("window end precedes its start")
	}

	return RebuildSummariesCommand{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RebuildSummariesCommand) Validate() error {
	return c.guard.Validate(ErrRebuildSummariesCommandIsNotConstructed)
}

// From returns the window start.
func (c RebuildSummariesCommand) From() kernel.Date {
	return c.from
}

// To returns the window end.
func (c RebuildSummariesCommand) To() kernel.Date {
	return c.to
}

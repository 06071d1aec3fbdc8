package orchestrator

import (
	"context"
	"errors"
	"slices"
)

type (
	rollbackStack struct {
		undos []undo
	}
	undo func(ctx context.Context) error
)

// Push records how to undo a step that has already been applied.
func (s *rollbackStack) Push(u undo) {
	s.undos = append(s.undos, u)
}

// Len returns the number of recorded steps.
func (s *rollbackStack) Len() int {
	return len(s.undos)
}

// Unwind runs the recorded undos in the reverse order they were pushed, returning
// all encountered errors joined. The stack is empty afterwards.
func (s *rollbackStack) Unwind(ctx context.Context) error {
	var errs error
	for _, u := range slices.Backward(s.undos) {
		errs = errors.Join(errs, u(ctx))
	}
	s.undos = nil
	return errs
}

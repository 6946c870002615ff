package system

import (
	"errors"
	"fmt"
)

var (
	// ErrPhaseNotRequested reports a manual append against a phase that was
	// never selected. Select a phase before appending to it.
	ErrPhaseNotRequested = errors.New("phase not requested")

	// ErrBuilderSpent reports reuse of a builder after its terminal build.
	ErrBuilderSpent = errors.New("builder already spent")
)

// ClassificationError reports a manual append whose declared state
// classification does not match the descriptor's actual kind.
type ClassificationError struct {
	Name     string
	Declared Kind
	Actual   Kind
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("system %s appended as %s but classified %s", e.Name, e.Declared, e.Actual)
}

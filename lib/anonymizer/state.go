package anonymizer

import "slices"

type State string

const (
	Raw               State = "raw"
	Suppressed        State = "suppressed"
	Level1Generalized State = "level_1_generalized"
	Level2Generalized State = "level_2_generalized"
)

func (e *Engine) requireState(operation string, allowed ...State) error {
	if !slices.Contains(allowed, e.state) {
		return InvalidStateError{Operation: operation, Current: e.state, Allowed: allowed}
	}

	return nil
}

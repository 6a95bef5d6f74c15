package parinfer

import "fmt"

// ErrUnknownMode is returned by Process when a Request names a Mode
// other than ModeIndent, ModeParen, or ModeSmart. It is the only kind
// of error Process's Go error return ever carries — everything the
// engine itself can fail on is reported through Answer.Success and
// Answer.Err instead.
type ErrUnknownMode struct {
	Mode Mode
}

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("parinfer: unknown mode %q", e.Mode)
}

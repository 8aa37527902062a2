package cli

import "fmt"

// Process exit codes.
const (
	ExitCodeOK           = 0
	ExitCodeError        = 1
	ExitCodeInvalidQuery = 2
)

// ExitError carries a specific process exit code. Reason is the message
// shown to the user; Err, if set, is the underlying cause.
type ExitError struct {
	ExitCode int
	Reason   string
	Err      error
}

func (e *ExitError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

package output

import "fmt"

// WriteError represents a failure to encode or persist an output file
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error: %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

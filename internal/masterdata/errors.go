package masterdata

import "fmt"

// LoadError represents an error reading or decoding a master data file
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

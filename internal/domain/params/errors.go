package params

import (
	"errors"
	"fmt"
)

// ErrOverrideNotFound is returned by an OverrideStore when no override is
// persisted for the requested key
var ErrOverrideNotFound = errors.New("override not found")

// NotDefinedError is returned when a caller queries or saves a parameter that
// was never registered at the requested level
type NotDefinedError struct {
	Namespace string
	Name      string
}

func (e *NotDefinedError) Error() string {
	return fmt.Sprintf("namespace %q and/or parameter %q not defined", e.Namespace, e.Name)
}

// IsNotDefined reports whether err wraps a NotDefinedError
func IsNotDefined(err error) bool {
	var notDefined *NotDefinedError
	return errors.As(err, &notDefined)
}

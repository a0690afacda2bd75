package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one invariant violation at a specific field
// path (§7: "reported synchronously with a per-field path").
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors aggregates every violation a single Validate() pass
// found, rather than stopping at the first (Activity.Validate/Scenario.Validate
// both collect, never short-circuit).
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// AsValidationErrors unwraps err into a ValidationErrors slice, or nil if
// err is not one (or is nil).
func AsValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// errIfAny returns errs as a ValidationErrors error, or nil if errs is
// empty.
func errIfAny(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

package protocol

import "fmt"

// DomainError reports a protocol-level domain failure (§7): an
// unrecognized export format, or a schema version this build cannot
// migrate.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func newDomainError(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

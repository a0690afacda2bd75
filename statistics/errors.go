package statistics

import "errors"

// ErrEmptySamples is a DomainError (§7): percentile and several other
// derived views are undefined over zero samples.
var ErrEmptySamples = errors.New("statistics: operation undefined on empty sample set")

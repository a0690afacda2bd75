package calendar

import (
	"github.com/ncruces/go-strftime"
)

// FormatDisplay renders d through a strftime-style layout (e.g.
// "%a %b %-d, %Y") for reports and CLI tables. This is a display-only
// convenience layered on top of the ISO "YYYY-MM-DD" representation
// §4.4 mandates at every interface boundary — it must never be used for
// parsing or for anything crossing a component boundary.
func FormatDisplay(d Date, layout string) (string, error) {
	return strftime.Format(layout, d.toTime())
}

// MustFormatDisplay is FormatDisplay without an error return, for call
// sites using a layout known at compile time to be valid.
func MustFormatDisplay(d Date, layout string) string {
	s, err := FormatDisplay(d, layout)
	if err != nil {
		// A hardcoded, previously-validated layout failing is a
		// programmer error, not a runtime condition callers recover from.
		panic(err)
	}
	return s
}

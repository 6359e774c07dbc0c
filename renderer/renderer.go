// Package renderer turns the engine's report structures into markdown
// documents. Each report gets one function returning a string; printing and
// terminal styling are the caller's concern.
package renderer

import "github.com/mtoselli/zainetto"

// qty formats a quantity for a table cell, "-" for zero.
func qty(q zainetto.Quantity) string {
	if q.IsZero() {
		return "-"
	}
	return q.String()
}

// day formats a date for a table cell, "-" for the zero date.
func day(d zainetto.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// note formats a free-text annotation cell, "-" when empty.
func note(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

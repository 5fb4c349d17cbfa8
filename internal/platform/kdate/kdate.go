// Package kdate normalizes and compares the date strings the API uses as
// snapshot registration dates ("YYYY-MM-DD", with "/" tolerated as a
// delimiter).
package kdate

import (
	"strings"
	"time"
)

// Layout is the canonical registration date format.
const Layout = "2006-01-02"

// Normalize canonicalizes a date string by replacing "/" delimiters with "-".
func Normalize(date string) string {
	return strings.ReplaceAll(date, "/", "-")
}

// Comparer answers whether a date string refers to the current calendar day.
type Comparer struct {
	now func() time.Time
}

// NewComparer creates a Comparer backed by the system clock.
func NewComparer() *Comparer {
	return &Comparer{now: time.Now}
}

// Normalize canonicalizes a date string. See the package-level Normalize.
func (c *Comparer) Normalize(date string) string {
	return Normalize(date)
}

// IsToday reports whether the date refers to the current local calendar
// day. The comparison parses rather than matching strings, so unpadded
// dates like "2024-3-5" still count as today.
func (c *Comparer) IsToday(date string) bool {
	// "2006-1-2" accepts both padded and unpadded components.
	d, err := time.ParseInLocation("2006-1-2", Normalize(date), time.Local)
	if err != nil {
		return false
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := c.now().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

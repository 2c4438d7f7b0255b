package domains

import (
	"time"

	"github.com/rangekit/rangekit/packages/valuerange"
)

// region DateDomain ///////////////////////////////////////////////////////////////////////////////////////////////////

// Dates is the discrete domain of calendar dates with a delta of one day. Unbounded sides of date Ranges resolve to
// the first and last representable date of the calendar.
var Dates valuerange.Domain[time.Time, time.Duration] = DateDomain{}

// dateLayout is the textual token format of a calendar date.
const dateLayout = "2006-01-02"

// secondsPerDay is used to count days between dates without overflowing time.Duration on calendar-sized spans.
const secondsPerDay = 24 * 60 * 60

// DateDomain implements the discrete domain of calendar dates. Values are normalized to midnight UTC.
type DateDomain struct{}

// Compare returns -1 if a is an earlier date than b, 0 if they are equal and 1 if a is a later date than b.
func (DateDomain) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Add returns the date advanced by the given duration.
func (DateDomain) Add(value time.Time, delta time.Duration) time.Time {
	return value.Add(delta)
}

// Sub returns the date moved back by the given duration.
func (DateDomain) Sub(value time.Time, delta time.Duration) time.Time {
	return value.Add(-delta)
}

// Delta returns the distance between two adjacent dates.
func (DateDomain) Delta() time.Duration {
	return 24 * time.Hour
}

// Steps returns the number of whole days between the two given dates.
func (DateDomain) Steps(lower, upper time.Time) int64 {
	return (upper.Unix() - lower.Unix()) / secondsPerDay
}

// FiniteLower returns the first representable date of the calendar.
func (DateDomain) FiniteLower() (time.Time, bool) {
	return Date(1, time.January, 1), true
}

// FiniteUpper returns the last representable date of the calendar.
func (DateDomain) FiniteUpper() (time.Time, bool) {
	return Date(9999, time.December, 31), true
}

// FormatValue returns the textual token of the given date.
func (DateDomain) FormatValue(value time.Time) string {
	return value.Format(dateLayout)
}

// ParseValue converts a textual token back into a date.
func (DateDomain) ParseValue(token string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, token, time.UTC)
}

// Date returns the given calendar date as midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateRange creates a new Range of calendar dates between the two given endpoints.
func DateRange(lower, upper time.Time, optionalBoundType ...valuerange.BoundType) *valuerange.Range[time.Time, time.Duration] {
	return valuerange.New(Dates, &lower, &upper, optionalBoundType...)
}

// NewDateRange creates a new Range of calendar dates with optionally missing endpoints.
func NewDateRange(lower, upper *time.Time, optionalBoundType ...valuerange.BoundType) *valuerange.Range[time.Time, time.Duration] {
	return valuerange.New(Dates, lower, upper, optionalBoundType...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

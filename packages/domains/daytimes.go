package domains

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/rangekit/rangekit/packages/valuerange"
)

// region DayTimeDomain ////////////////////////////////////////////////////////////////////////////////////////////////

// Times of day are represented as the time.Duration elapsed since midnight. The pre-configured domains only differ in
// their step width; unbounded sides of all of them resolve to midnight and the last representable microsecond of the
// day.
var (
	// DayTimes is the discrete domain of times of day with microsecond resolution.
	DayTimes valuerange.Domain[time.Duration, time.Duration] = DayTimeDomain{delta: time.Microsecond}

	// DayTimesHourly is the discrete domain of full hours.
	DayTimesHourly valuerange.Domain[time.Duration, time.Duration] = DayTimeDomain{delta: time.Hour}

	// DayTimesByHalfHour is the discrete domain of half hours.
	DayTimesByHalfHour valuerange.Domain[time.Duration, time.Duration] = DayTimeDomain{delta: 30 * time.Minute}

	// DayTimesByQuarterHour is the discrete domain of quarter hours.
	DayTimesByQuarterHour valuerange.Domain[time.Duration, time.Duration] = DayTimeDomain{delta: 15 * time.Minute}

	// DayTimesByMinute is the discrete domain of full minutes.
	DayTimesByMinute valuerange.Domain[time.Duration, time.Duration] = DayTimeDomain{delta: time.Minute}
)

// dayTimeLayouts lists the accepted textual token formats of a time of day, most specific first.
var dayTimeLayouts = []string{"15:04:05.999999", "15:04:05", "15:04"}

// DayTimeDomain implements the discrete domain of times of day.
type DayTimeDomain struct {
	delta time.Duration
}

// DayTimesEvery returns the discrete domain of times of day with the given step width. Non-positive deltas fall back
// to one microsecond.
func DayTimesEvery(delta time.Duration) valuerange.Domain[time.Duration, time.Duration] {
	if delta <= 0 {
		delta = time.Microsecond
	}

	return DayTimeDomain{delta: delta}
}

// Compare returns -1 if a is an earlier time than b, 0 if they are equal and 1 if a is a later time than b.
func (DayTimeDomain) Compare(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Add returns the time of day advanced by the given duration.
func (DayTimeDomain) Add(value, delta time.Duration) time.Duration {
	return value + delta
}

// Sub returns the time of day moved back by the given duration.
func (DayTimeDomain) Sub(value, delta time.Duration) time.Duration {
	return value - delta
}

// Delta returns the configured step width.
func (d DayTimeDomain) Delta() time.Duration {
	return d.delta
}

// Steps returns the number of whole deltas between the two given times of day.
func (d DayTimeDomain) Steps(lower, upper time.Duration) int64 {
	return int64((upper - lower) / d.delta)
}

// FiniteLower returns midnight.
func (DayTimeDomain) FiniteLower() (time.Duration, bool) {
	return 0, true
}

// FiniteUpper returns the last representable microsecond of the day.
func (DayTimeDomain) FiniteUpper() (time.Duration, bool) {
	return 24*time.Hour - time.Microsecond, true
}

// FormatValue returns the textual token of the given time of day. Seconds and fractions are only included when they
// are non-zero.
func (DayTimeDomain) FormatValue(value time.Duration) string {
	hours := value / time.Hour
	minutes := (value % time.Hour) / time.Minute
	seconds := (value % time.Minute) / time.Second
	micros := (value % time.Second) / time.Microsecond

	token := fmt.Sprintf("%02d:%02d", hours, minutes)
	if seconds != 0 || micros != 0 {
		token += fmt.Sprintf(":%02d", seconds)
	}
	if micros != 0 {
		token += fmt.Sprintf(".%06d", micros)
	}

	return token
}

// ParseValue converts a textual token back into a time of day.
func (DayTimeDomain) ParseValue(token string) (time.Duration, error) {
	for _, layout := range dayTimeLayouts {
		parsed, err := time.Parse(layout, token)
		if err != nil {
			continue
		}

		return time.Duration(parsed.Hour())*time.Hour +
			time.Duration(parsed.Minute())*time.Minute +
			time.Duration(parsed.Second())*time.Second +
			time.Duration(parsed.Nanosecond()), nil
	}

	return 0, errors.Errorf("invalid time of day %q", token)
}

// DayTime returns the given time of day as the duration elapsed since midnight.
func DayTime(hour, minute, second int) time.Duration {
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
}

// DayTimeRange creates a new Range of times of day between the two given endpoints, with microsecond resolution.
func DayTimeRange(lower, upper time.Duration, optionalBoundType ...valuerange.BoundType) *valuerange.Range[time.Duration, time.Duration] {
	return valuerange.New(DayTimes, &lower, &upper, optionalBoundType...)
}

// NewDayTimeRange creates a new Range of times of day with optionally missing endpoints, with microsecond resolution.
func NewDayTimeRange(lower, upper *time.Duration, optionalBoundType ...valuerange.BoundType) *valuerange.Range[time.Duration, time.Duration] {
	return valuerange.New(DayTimes, lower, upper, optionalBoundType...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

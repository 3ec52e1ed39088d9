package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the time-of-day format stored in the timesheet.
const TimeLayout = "15:04:05"

// ParseError indicates a clock time that is not a valid HH:MM:SS string.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Calculate returns clockOut minus clockIn in fractional hours. Both
// arguments are HH:MM:SS time-of-day strings. A clock-out earlier than the
// clock-in (elapsed time crossing midnight) yields a negative value; callers
// get exactly what the subtraction says.
func Calculate(clockIn, clockOut string) (float64, error) {
	in, err := time.Parse(TimeLayout, clockIn)
	if err != nil {
		return 0, &ParseError{Input: clockIn, Err: err}
	}
	out, err := time.Parse(TimeLayout, clockOut)
	if err != nil {
		return 0, &ParseError{Input: clockOut, Err: err}
	}
	return out.Sub(in).Hours(), nil
}

// Format renders an hours value as a display string: "1 Hour" for exactly
// one, whole values without decimals, everything else with up to two decimal
// places and trailing zeros stripped.
func Format(hours float64) string {
	if hours == 1 {
		return "1 Hour"
	}
	var formatted string
	if hours == math.Trunc(hours) {
		formatted = strconv.Itoa(int(hours))
	} else {
		formatted = strconv.FormatFloat(hours, 'f', 2, 64)
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	return formatted + " Hours"
}

// RoundToHalfHour rounds to the nearest multiple of 0.5, ties to even.
func RoundToHalfHour(hours float64) float64 {
	return math.RoundToEven(hours*2) / 2
}

// ParseDisplay converts a display string produced by Format back into an
// hours value by stripping the " Hours"/" Hour" suffix.
func ParseDisplay(display string) (float64, error) {
	trimmed := strings.ReplaceAll(display, " Hours", "")
	trimmed = strings.ReplaceAll(trimmed, " Hour", "")
	hours, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Input: display, Err: err}
	}
	return hours, nil
}

// Total sums a list of duration display strings and rounds the result to the
// nearest half hour. Strings that do not parse are skipped; historical
// entries edited by hand must not break the total.
func Total(displays []string) float64 {
	total := 0.0
	for _, display := range displays {
		hours, err := ParseDisplay(display)
		if err != nil {
			continue
		}
		total += hours
	}
	return RoundToHalfHour(total)
}

// Package interval parses and validates mm:ss time intervals within a track.
package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// FormatError reports text that is not a valid mm:ss value
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s must be in the format mm:ss, got %q", e.Field, e.Value)
}

// RangeError reports an interval that is out of order or out of bounds
type RangeError struct {
	Field  string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Parse converts "m:ss" or "mm:ss" into a duration. Both fields are added
// as given, so "01:75" is 2:15.
func Parse(field, text string) (time.Duration, error) {
	match := clockPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, &FormatError{Field: field, Value: text}
	}

	minutes, _ := strconv.Atoi(match[1])
	seconds, _ := strconv.Atoi(match[2])
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// Validate checks 0 <= start <= end <= trackDuration.
func Validate(start, end, trackDuration time.Duration) error {
	if start < 0 {
		return &RangeError{Field: "start", Reason: "must not be negative"}
	}
	if end < 0 {
		return &RangeError{Field: "end", Reason: "must not be negative"}
	}
	if start > end {
		return &RangeError{Field: "start", Reason: "must not be after end"}
	}
	if end > trackDuration {
		return &RangeError{Field: "end", Reason: fmt.Sprintf("must not exceed track duration %s", Format(trackDuration))}
	}
	return nil
}

// Format renders a duration as m:ss, truncating to whole seconds.
func Format(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

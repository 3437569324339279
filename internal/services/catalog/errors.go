package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrNotFound is returned when the catalog answers 404 for a resource
var ErrNotFound = errors.New("catalog resource not found")

// RemoteError describes a catalog call that failed for any reason other than
// confirmed non-existence: transport errors, unexpected statuses, bad bodies,
// or throttling that outlasted the retry budget.
type RemoteError struct {
	Endpoint   string
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("catalog %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("catalog %s: status %d", e.Endpoint, e.StatusCode)
	default:
		return fmt.Sprintf("catalog %s: %v", e.Endpoint, e.Err)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Throttled reports whether the catalog asked us to slow down
func (e *RemoteError) Throttled() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsNotFound reports whether err means the resource does not exist remotely
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err is a remote failure other than not-found
func IsUnavailable(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

func isThrottled(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Throttled()
}

// parseRetryAfter reads a Retry-After header given in seconds or as an
// HTTP date. Unparseable values yield zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

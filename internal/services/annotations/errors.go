package annotations

import (
	"errors"

	"github.com/killallgit/jamjot-api/pkg/interval"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// ErrNotFound is returned by Repository point reads when no row matches
var ErrNotFound = errors.New("record not found")

const catalogService = "catalog"

// remoteFailure classifies a catalog error that is not a confirmed 404
func remoteFailure(err error) error {
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.RemoteUnavailable(catalogService, err)
}

// intervalError maps validator errors onto validation failures
func intervalError(err error) error {
	var formatErr *interval.FormatError
	if errors.As(err, &formatErr) {
		return apperrors.ValidationError(formatErr.Field, "must be in the format mm:ss")
	}
	var rangeErr *interval.RangeError
	if errors.As(err, &rangeErr) {
		return apperrors.ValidationError(rangeErr.Field, rangeErr.Reason)
	}
	return err
}

package catalog

import (
	"errors"
	"fmt"
	"time"

	"log-catalog/internal/shared/svcerrors"
)

// LogCatalog errors
const (
	codeInvalidRange = "CAT_1000"
)

var ErrInvalidRange = errors.New("start is after end")

// errInvalidRange returns an error for a date range whose start is after its end.
func errInvalidRange(start, end time.Time) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, "invalid date range: start must not be after end",
		fmt.Errorf("%w: start=%s, end=%s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339)))
}

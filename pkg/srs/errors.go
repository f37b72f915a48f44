package srs

import (
	"errors"
	"fmt"

	"github.com/chazu/srs/pkg/region"
	"github.com/chazu/srs/pkg/store"
)

// Re-exported so callers of the façade need not import the lower packages.
var (
	ErrDuplicateID      = store.ErrDuplicateID
	ErrUnknownShape     = store.ErrUnknownShape
	ErrDegenerateInput  = region.ErrDegenerateInput
	ErrUnknownQueryType = errors.New("unknown query type")
)

// UnknownQueryError is returned for a query type code or name outside the
// known set.
type UnknownQueryError struct {
	Name string
	Code int
}

func (e *UnknownQueryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown query type %q", e.Name)
	}
	return fmt.Sprintf("unknown query type %d", e.Code)
}

func (e *UnknownQueryError) Is(target error) bool { return target == ErrUnknownQueryType }

// errorReason is the metrics label for err.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, ErrUnknownShape):
		return "unknown_shape"
	case errors.Is(err, ErrDegenerateInput):
		return "degenerate_input"
	case errors.Is(err, ErrUnknownQueryType):
		return "unknown_query"
	default:
		return "other"
	}
}

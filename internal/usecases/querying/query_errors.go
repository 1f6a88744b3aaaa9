package querying

import (
	"errors"
	"fmt"

	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
)

var (
	ErrInvalidSpec       = errors.New("invalid query spec")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrUnknownDimension  = errors.New("unknown dimension")
	ErrUnsupportedFilter = errors.New("filter field is not allowed")
	ErrUnknownPeriod     = errors.New("unknown time period")
	ErrInvalidDateRange  = errors.New("date range end must be after start")
	ErrDateRangeTooLarge = errors.New("date range exceeds the allowed span")
)

// QueryError is an input error carrying the API error code.
type QueryError struct {
	Err     error
	Code    string
	Details string
}

func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func NewQueryError(err error, code string, details string) *QueryError {
	return &QueryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func invalidInput(err error, details string) *QueryError {
	code := apiErrors.ErrInvalidRequest
	switch {
	case errors.Is(err, ErrUnknownMetric):
		code = apiErrors.ErrUnknownMetric
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrDateRangeTooLarge):
		code = apiErrors.ErrInvalidDateRange
	}
	return NewQueryError(err, code, details)
}

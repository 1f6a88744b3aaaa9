package aggregating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTenant     = errors.New("tenant id is required")
	ErrInvalidDateRange  = errors.New("date range end must be after start")
	ErrDateRangeTooLarge = errors.New("date range is too large")
	ErrListTenants       = errors.New("error listing active tenants")
	ErrComputeSummary    = errors.New("error computing daily summary")
	ErrSaveSummary       = errors.New("error saving daily summary")
)

// AggregateError carries the tenant a rollup step failed for.
type AggregateError struct {
	Err      error
	Code     string
	TenantID int64
	Details  string
}

func (e *AggregateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (tenant %d): %s", e.Err.Error(), e.TenantID, e.Details)
	}
	return fmt.Sprintf("%s (tenant %d)", e.Err.Error(), e.TenantID)
}

func (e *AggregateError) Unwrap() error {
	return e.Err
}

func NewAggregateError(err error, code string, tenantID int64, details string) *AggregateError {
	return &AggregateError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}

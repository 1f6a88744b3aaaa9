package funneling

import (
	"errors"
	"fmt"
)

var (
	ErrFunnelNotFound    = errors.New("funnel not found")
	ErrInvalidFunnel     = errors.New("invalid funnel definition")
	ErrInvalidDateRange  = errors.New("date range end must be after start")
	ErrDateRangeTooLarge = errors.New("date range is too large")
	ErrGenerateID        = errors.New("error generating funnel id")
	ErrSaveFunnel        = errors.New("error saving funnel")
)

type FunnelError struct {
	Err     error
	Code    string
	Details string
}

func (e *FunnelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FunnelError) Unwrap() error {
	return e.Err
}

func NewFunnelError(err error, code string, details string) *FunnelError {
	return &FunnelError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

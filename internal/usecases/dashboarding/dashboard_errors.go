package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrInvalidDashboard  = errors.New("invalid dashboard")
	ErrNotOwner          = errors.New("only the owner can change a dashboard")
	ErrGenerateID        = errors.New("error generating dashboard id")
	ErrDatabaseOperation = errors.New("database operation error")
)

type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

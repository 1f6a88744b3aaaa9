package cohorting

import (
	"errors"
	"fmt"
)

var (
	ErrCohortNotFound   = errors.New("cohort not found")
	ErrInvalidCohort    = errors.New("invalid cohort definition")
	ErrUnsupportedType  = errors.New("unsupported cohort type")
	ErrUnsupportedField = errors.New("unsupported cohort filter")
	ErrGenerateID       = errors.New("error generating cohort id")
	ErrSaveCohort       = errors.New("error saving cohort")
)

type CohortError struct {
	Err     error
	Code    string
	Details string
}

func (e *CohortError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CohortError) Unwrap() error {
	return e.Err
}

func NewCohortError(err error, code string, details string) *CohortError {
	return &CohortError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidReport     = errors.New("invalid report")
	ErrUnknownReportType = errors.New("unknown report type")
	ErrExecuteReport     = errors.New("error executing report")
	ErrDeliveryFailed    = errors.New("report could not be delivered to any recipient")
	ErrGenerateID        = errors.New("error generating report id")
	ErrDatabaseOperation = errors.New("database operation error")
)

type ReportError struct {
	Err      error
	Code     string
	ReportID string
	Details  string
}

func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.ReportID != "" {
		msg = fmt.Sprintf("%s (report %s)", msg, e.ReportID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReportErrorWithID(err error, code string, reportID string, details string) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		ReportID: reportID,
		Details:  details,
	}
}

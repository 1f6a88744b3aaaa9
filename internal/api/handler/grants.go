package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/internal/usecases/forecasting"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

type burnRateRequest struct {
	Total     decimal.Decimal `json:"total"`
	Spent     decimal.Decimal `json:"spent"`
	StartDate time.Time       `json:"start_date" validate:"required"`
	EndDate   time.Time       `json:"end_date" validate:"required"`
}

func CalculateBurnRate(forecaster forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req burnRateRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid burn rate body", nil)
			return
		}

		if !validGrantPeriod(w, req, req.StartDate, req.EndDate) {
			return
		}

		writeJSON(w, http.StatusOK, forecaster.CalculateBurnRate(req.Total, req.Spent, req.StartDate, req.EndDate))
	})
}

func GetGrantSummary(forecaster forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var grant domain.GrantConfig
		if err := decodeBody(w, r, &grant); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid grant body", nil)
			return
		}

		if !validGrantPeriod(w, grant, grant.StartDate, grant.EndDate) {
			return
		}

		writeJSON(w, http.StatusOK, forecaster.GetGrantSummary(grant))
	})
}

func validGrantPeriod(w http.ResponseWriter, payload any, start, end time.Time) bool {
	if err := validation.ValidateStruct(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	if !end.After(start) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date must be after start_date", nil)
		return false
	}

	return true
}

// Package api - Request and response envelopes
package api

import (
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// RecipeCostRequest is the input to POST /recipe-cost
type RecipeCostRequest struct {
	// Ingredients is the recipe or batch line list
	Ingredients []types.RecipeIngredient `json:"ingredients"`
}

// RecipeCostResponse is the output of POST /recipe-cost
type RecipeCostResponse struct {
	// RequestID identifies the calculation run
	RequestID string `json:"request_id"`

	// Result is the aggregate costing result
	Result types.RecipeCostResult `json:"result"`
}

// ScheduledLaborRequest is the input to POST /labor-cost/scheduled
type ScheduledLaborRequest struct {
	// Shifts is the scheduled shift list
	Shifts []types.Shift `json:"shifts"`

	// Employees is the compensation record list
	Employees []types.Employee `json:"employees"`

	// Start is the period start (inclusive, UTC day)
	Start time.Time `json:"start"`

	// End is the period end (inclusive, UTC day)
	End time.Time `json:"end"`
}

// ActualLaborRequest is the input to POST /labor-cost/actual
type ActualLaborRequest struct {
	// Employees is the compensation record list
	Employees []types.Employee `json:"employees"`

	// Punches is the raw time-punch stream
	Punches []types.TimePunch `json:"punches,omitempty"`

	// Periods is an optional pre-paired work period list; when set,
	// Punches is ignored
	Periods []types.WorkPeriod `json:"periods,omitempty"`

	// Start is the period start (inclusive, UTC day)
	Start time.Time `json:"start"`

	// End is the period end (inclusive, UTC day)
	End time.Time `json:"end"`
}

// LaborCostResponse is the output of the labor endpoints
type LaborCostResponse struct {
	// RequestID identifies the calculation run
	RequestID string `json:"request_id"`

	// Result is the labor cost result
	Result types.LaborCostResult `json:"result"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	// Error is the error message
	Error string `json:"error"`

	// Type is the error category, when known
	Type string `json:"type,omitempty"`
}

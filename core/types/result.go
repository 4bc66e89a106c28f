// Package types - Result records produced by the costing engines
package types

import "github.com/shopspring/decimal"

// IngredientCostResult is the per-line output of recipe costing.
// InventoryDeductionUnit is always the product's purchase unit, never
// the recipe's input unit.
type IngredientCostResult struct {
	// ProductID links to the costed product
	ProductID string `json:"product_id"`

	// ProductName is the product name
	ProductName string `json:"product_name"`

	// Quantity is the recipe quantity, as given
	Quantity float64 `json:"quantity"`

	// Unit is the recipe unit, as given
	Unit string `json:"unit"`

	// CostPerUnit is the product's cost per purchase unit
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`

	// InventoryDeduction is how much inventory is consumed, in purchase units
	InventoryDeduction float64 `json:"inventory_deduction"`

	// InventoryDeductionUnit is the product's purchase unit
	InventoryDeductionUnit string `json:"inventory_deduction_unit"`

	// CostImpact is the dollar cost of the consumed inventory
	CostImpact decimal.Decimal `json:"cost_impact"`

	// ConversionApplied reports whether a unit conversion was performed
	ConversionApplied bool `json:"conversion_applied"`

	// ConversionPath describes how the conversion was routed, if any
	ConversionPath string `json:"conversion_path,omitempty"`
}

// RecipeCostResult is the aggregate output over a list of ingredients.
// The ingredient slice stays index-aligned with the input: failed lines
// are zero-cost placeholders, never omissions.
type RecipeCostResult struct {
	// TotalCost is the sum over all ingredient cost impacts
	TotalCost decimal.Decimal `json:"total_cost"`

	// Ingredients holds one result per input line
	Ingredients []IngredientCostResult `json:"ingredients"`

	// Warnings collects per-line degradation notices
	Warnings []Warning `json:"warnings,omitempty"`
}

// Cents is a monetary amount in minor currency units. The labor
// allocator accumulates in integer cents to avoid floating-point drift.
type Cents int64

// Dollars converts to major currency units for display
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// DailyLaborCost is the per-calendar-day labor aggregate, partitioned
// by compensation type. Days are UTC.
type DailyLaborCost struct {
	// Date is the UTC calendar day, formatted 2006-01-02
	Date string `json:"date"`

	// HourlyCost is the hourly wage cost for the day
	HourlyCost Cents `json:"hourly_cost"`

	// SalaryCost is the allocated salary cost for the day
	SalaryCost Cents `json:"salary_cost"`

	// ContractorCost is the allocated contractor cost for the day
	ContractorCost Cents `json:"contractor_cost"`

	// TotalCost is the sum of the three partitions
	TotalCost Cents `json:"total_cost"`

	// HourlyHours is the worked hours attributed to the day
	HourlyHours float64 `json:"hourly_hours"`
}

// LaborComponent is a per-compensation-type period aggregate
type LaborComponent struct {
	// Cost is the period cost for this compensation type
	Cost Cents `json:"cost"`

	// Hours is the worked hours (hourly employees only)
	Hours float64 `json:"hours,omitempty"`

	// Employees is the number of employees contributing
	Employees int `json:"employees"`
}

// LaborCostBreakdown is the period-level labor aggregate.
// Invariant: Total == Hourly.Cost + Salary.Cost + Contractor.Cost, and
// Total equals the sum of the daily totals it was built from.
type LaborCostBreakdown struct {
	// Hourly aggregates hourly-wage cost
	Hourly LaborComponent `json:"hourly"`

	// Salary aggregates allocated salary cost
	Salary LaborComponent `json:"salary"`

	// Contractor aggregates allocated contractor cost
	Contractor LaborComponent `json:"contractor"`

	// Total is the period total
	Total Cents `json:"total"`
}

// LaborCostResult bundles the period breakdown with its daily series
type LaborCostResult struct {
	// Breakdown is the period aggregate
	Breakdown LaborCostBreakdown `json:"breakdown"`

	// DailyCosts holds one bucket per calendar day in the period
	DailyCosts []DailyLaborCost `json:"daily_costs"`

	// Warnings collects degradation notices
	Warnings []Warning `json:"warnings,omitempty"`
}

// Package types defines the shared value objects of the costing engine.
// Everything here is plain request-scoped data: computed on demand from
// caller-supplied records, never persisted, safe to serialize.
package types

import "time"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Valid reports whether the code is a supported reporting currency
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// Warning is a non-fatal, structured degradation notice returned
// alongside results instead of being printed to a console.
type Warning struct {
	// Code identifies the warning class (e.g. "missing_container_size")
	Code string `json:"code"`

	// Message is the human-readable description
	Message string `json:"message"`
}

// Product is a purchasable inventory item as supplied by the caller.
// Field names mirror the upstream product record.
type Product struct {
	// ID uniquely identifies the product
	ID string `json:"id"`

	// Name is the product name (also drives override detection)
	Name string `json:"name"`

	// UOMPurchase is the unit in which the product is bought
	UOMPurchase string `json:"uom_purchase"`

	// SizeValue is the physical size of one purchase unit
	SizeValue float64 `json:"size_value"`

	// SizeUnit is the unit of SizeValue
	SizeUnit string `json:"size_unit"`

	// CostPerUnit is the cost of one purchase unit, in major currency units
	CostPerUnit float64 `json:"cost_per_unit"`

	// CurrentStock is the on-hand quantity in purchase units
	CurrentStock float64 `json:"current_stock"`
}

// RecipeIngredient is a single recipe or batch line
type RecipeIngredient struct {
	// ProductID links to the product being consumed
	ProductID string `json:"product_id"`

	// Quantity is the amount used by the recipe
	Quantity float64 `json:"quantity"`

	// Unit is the recipe unit (e.g. "cup", "oz")
	Unit string `json:"unit"`

	// Product is the resolved product record
	Product Product `json:"product"`
}

// CompensationType classifies how an employee is paid
type CompensationType string

const (
	CompensationHourly     CompensationType = "hourly"
	CompensationSalary     CompensationType = "salary"
	CompensationContractor CompensationType = "contractor"
)

// PayPeriodType identifies a salary pay-period cadence
type PayPeriodType string

const (
	PayPeriodWeekly      PayPeriodType = "weekly"
	PayPeriodBiweekly    PayPeriodType = "biweekly"
	PayPeriodSemimonthly PayPeriodType = "semimonthly"
	PayPeriodMonthly     PayPeriodType = "monthly"
)

// PaymentInterval identifies a contractor payment cadence
type PaymentInterval string

const (
	IntervalWeekly   PaymentInterval = "weekly"
	IntervalBiweekly PaymentInterval = "biweekly"
	IntervalMonthly  PaymentInterval = "monthly"
	IntervalPerJob   PaymentInterval = "per-job"
)

// Employee is a compensation record. All monetary fields are integer
// cents; fractional cents never enter the allocator.
type Employee struct {
	// ID uniquely identifies the employee
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name,omitempty"`

	// CompensationType selects the allocation path
	CompensationType CompensationType `json:"compensation_type"`

	// HourlyRate is the hourly wage in cents
	HourlyRate int64 `json:"hourly_rate,omitempty"`

	// SalaryAmount is the per-pay-period salary in cents
	SalaryAmount int64 `json:"salary_amount,omitempty"`

	// PayPeriodType is the salary cadence
	PayPeriodType PayPeriodType `json:"pay_period_type,omitempty"`

	// ContractorPaymentAmount is the per-interval payment in cents
	ContractorPaymentAmount int64 `json:"contractor_payment_amount,omitempty"`

	// ContractorPaymentInterval is the contractor cadence
	ContractorPaymentInterval PaymentInterval `json:"contractor_payment_interval,omitempty"`

	// Status is the employment status ("active" employees are costed)
	Status string `json:"status,omitempty"`
}

// Active reports whether the employee should be included in cost runs.
// An empty status is treated as active for callers that do not track it.
func (e Employee) Active() bool {
	return e.Status == "" || e.Status == "active"
}

// Shift is a scheduled block of work
type Shift struct {
	// EmployeeID links to the employee
	EmployeeID string `json:"employee_id"`

	// StartTime is the scheduled start
	StartTime time.Time `json:"start_time"`

	// EndTime is the scheduled end
	EndTime time.Time `json:"end_time"`

	// BreakDuration is the unpaid break, in minutes
	BreakDuration float64 `json:"break_duration"`
}

// PunchType classifies a raw time-clock event
type PunchType string

const (
	PunchClockIn    PunchType = "clock_in"
	PunchClockOut   PunchType = "clock_out"
	PunchBreakStart PunchType = "break_start"
	PunchBreakEnd   PunchType = "break_end"
)

// TimePunch is a raw time-clock event before pairing
type TimePunch struct {
	// EmployeeID links to the employee
	EmployeeID string `json:"employee_id"`

	// Type is the punch type
	Type PunchType `json:"type"`

	// Time is the punch timestamp
	Time time.Time `json:"time"`
}

// WorkPeriod is a paired clock-in/clock-out span with breaks netted out
type WorkPeriod struct {
	// EmployeeID links to the employee
	EmployeeID string `json:"employee_id"`

	// Start is when the period began
	Start time.Time `json:"start"`

	// End is when the period ended
	End time.Time `json:"end"`

	// BreakMinutes is unpaid break time inside the period
	BreakMinutes float64 `json:"break_minutes"`
}

// Hours returns net worked hours for the period, never negative
func (p WorkPeriod) Hours() float64 {
	h := p.End.Sub(p.Start).Hours() - p.BreakMinutes/60
	if h < 0 {
		return 0
	}
	return h
}

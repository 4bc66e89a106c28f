// Package labor allocates compensation to calendar days over a period
// and aggregates the result into daily and period cost breakdowns.
// All monetary math is integer cents; day boundaries are UTC.
package labor

import (
	"math"
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// utcDay truncates a timestamp to its UTC calendar day
func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// dayKey formats a UTC day for bucket lookup
func dayKey(t time.Time) string {
	return utcDay(t).Format("2006-01-02")
}

// daysInMonth returns the number of calendar days in the day's month
func daysInMonth(day time.Time) int64 {
	u := day.UTC()
	first := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return int64(first.AddDate(0, 1, -1).Day())
}

// HourlyCost computes rounded hourly pay in cents
func HourlyCost(hourlyRateCents int64, hours float64) types.Cents {
	if hours <= 0 {
		return 0
	}
	return types.Cents(math.Round(float64(hourlyRateCents) * hours))
}

// salaryDailyCost spreads a periodic salary evenly across the calendar
// days of its pay period. Unrecognized period types fall back to
// monthly, the most common cadence in the source data.
func salaryDailyCost(emp types.Employee, day time.Time) types.Cents {
	switch emp.PayPeriodType {
	case types.PayPeriodWeekly:
		return types.Cents(emp.SalaryAmount / 7)
	case types.PayPeriodBiweekly:
		return types.Cents(emp.SalaryAmount / 14)
	case types.PayPeriodSemimonthly:
		return types.Cents(emp.SalaryAmount * 2 / daysInMonth(day))
	default:
		return types.Cents(emp.SalaryAmount / daysInMonth(day))
	}
}

// contractorDailyCost spreads a periodic contractor payment across its
// interval. Per-job contractors never receive a daily allocation; their
// cost is realized outside this engine.
func contractorDailyCost(emp types.Employee, day time.Time) types.Cents {
	switch emp.ContractorPaymentInterval {
	case types.IntervalPerJob:
		return 0
	case types.IntervalWeekly:
		return types.Cents(emp.ContractorPaymentAmount / 7)
	case types.IntervalBiweekly:
		return types.Cents(emp.ContractorPaymentAmount / 14)
	default:
		return types.Cents(emp.ContractorPaymentAmount / daysInMonth(day))
	}
}

// DailyCost is the daily allocation primitive shared by the scheduled
// and actual contracts. Hours only matter for hourly employees.
func DailyCost(emp types.Employee, day time.Time, hours float64) types.Cents {
	switch emp.CompensationType {
	case types.CompensationHourly:
		return HourlyCost(emp.HourlyRate, hours)
	case types.CompensationSalary:
		return salaryDailyCost(emp, day)
	case types.CompensationContractor:
		return contractorDailyCost(emp, day)
	}
	return 0
}

// dayRange returns every UTC calendar day in [start, end] inclusive
func dayRange(start, end time.Time) []time.Time {
	first, last := utcDay(start), utcDay(end)
	if last.Before(first) {
		return nil
	}
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

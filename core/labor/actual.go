// Package labor - Actual (historical) cost contract
package labor

import (
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// ActualCost computes historical labor cost from raw time punches over
// [start, end] inclusive. Punches are paired into work periods by the
// allocator's PunchPairer; pairing warnings surface in the result.
func (al *Allocator) ActualCost(employees []types.Employee, punches []types.TimePunch, start, end time.Time) types.LaborCostResult {
	var periods []types.WorkPeriod
	var warnings []types.Warning
	if al.pairer != nil {
		periods, warnings = al.pairer.Pair(punches)
	} else if len(punches) > 0 {
		warnings = append(warnings, types.Warning{
			Code:    "no_punch_pairer",
			Message: "time punches supplied but no punch pairer is configured",
		})
	}
	result := al.ActualCostFromPeriods(employees, periods, start, end)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// ActualCostFromPeriods computes historical labor cost from pre-paired
// work periods.
//
// An overnight period spanning midnight marks the employee active on
// every UTC day it touches, but its hours are attributed to the start
// day only. The asymmetry is deliberate: hourly pay must not be
// double-counted, while salary and contractor allocation keys off
// calendar-day presence.
func (al *Allocator) ActualCostFromPeriods(employees []types.Employee, periods []types.WorkPeriod, start, end time.Time) types.LaborCostResult {
	p := newPeriod(start, end)

	byID := make(map[string]types.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	// hoursByDay accumulates worked hours per employee per bucket index;
	// activeDays records calendar-day presence per employee.
	hoursByDay := make(map[string]map[int]float64)
	activeDays := make(map[string]map[int]bool)

	for _, wp := range periods {
		if _, ok := byID[wp.EmployeeID]; !ok {
			continue
		}
		if i, ok := p.dayIndex(wp.Start); ok {
			if hoursByDay[wp.EmployeeID] == nil {
				hoursByDay[wp.EmployeeID] = make(map[int]float64)
			}
			hoursByDay[wp.EmployeeID][i] += wp.Hours()
		}
		for d := utcDay(wp.Start); !d.After(utcDay(wp.End)); d = d.AddDate(0, 0, 1) {
			if i, ok := p.dayIndex(d); ok {
				if activeDays[wp.EmployeeID] == nil {
					activeDays[wp.EmployeeID] = make(map[int]bool)
				}
				activeDays[wp.EmployeeID][i] = true
			}
		}
	}

	for _, emp := range employees {
		if !emp.Active() {
			continue
		}
		switch emp.CompensationType {
		case types.CompensationHourly:
			for i, hours := range hoursByDay[emp.ID] {
				if cost := HourlyCost(emp.HourlyRate, hours); cost > 0 {
					p.addHourly(i, emp.ID, cost, hours)
				}
			}
		case types.CompensationSalary:
			for i := range activeDays[emp.ID] {
				p.addSalary(i, emp.ID, salaryDailyCost(emp, p.days[i]))
			}
		case types.CompensationContractor:
			if emp.ContractorPaymentInterval == types.IntervalPerJob {
				continue
			}
			for i := range activeDays[emp.ID] {
				p.addContractor(i, emp.ID, contractorDailyCost(emp, p.days[i]))
			}
		}
	}

	return p.finish()
}

// Package labor - Scheduled (forward-looking) cost contract
package labor

import (
	"fmt"
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// ScheduledCost projects labor cost from scheduled shifts over
// [start, end] inclusive. Hourly cost comes from shifts, attributed to
// each shift's start day; salary and contractor cost is allocated per
// calendar day from the compensation record alone, reflecting that
// those types are paid per pay period, not per shift. Per-job
// contractors are excluded entirely.
func (al *Allocator) ScheduledCost(shifts []types.Shift, employees []types.Employee, start, end time.Time) types.LaborCostResult {
	p := newPeriod(start, end)

	byID := make(map[string]types.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	for _, shift := range shifts {
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			p.warn("unknown_employee", fmt.Sprintf("shift references unknown employee %q", shift.EmployeeID))
			continue
		}
		if emp.CompensationType != types.CompensationHourly || !emp.Active() {
			continue
		}
		i, ok := p.dayIndex(shift.StartTime)
		if !ok {
			continue
		}
		minutes := shift.EndTime.Sub(shift.StartTime).Minutes() - shift.BreakDuration
		if minutes <= 0 {
			continue
		}
		hours := minutes / 60
		p.addHourly(i, emp.ID, HourlyCost(emp.HourlyRate, hours), hours)
	}

	for _, emp := range employees {
		if !emp.Active() {
			continue
		}
		switch emp.CompensationType {
		case types.CompensationSalary:
			p.allocatePeriodic(emp)
		case types.CompensationContractor:
			if emp.ContractorPaymentInterval != types.IntervalPerJob {
				p.allocatePeriodic(emp)
			}
		}
	}

	return p.finish()
}

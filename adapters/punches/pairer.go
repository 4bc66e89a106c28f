// Package punches pairs raw time-clock events into work periods.
// It implements the labor.PunchPairer seam: the core allocator consumes
// paired periods and never touches raw punch streams itself.
package punches

import (
	"fmt"
	"sort"
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// Pairer pairs clock-in/clock-out punches into work periods, netting
// out explicit break segments. Dangling punches degrade to warnings.
type Pairer struct{}

// NewPairer creates a pairer
func NewPairer() *Pairer {
	return &Pairer{}
}

// Pair groups punches by employee, orders them in time, and walks each
// stream pairing clock_in with the next clock_out. Break segments
// inside an open period reduce its worked time. A clock_in with no
// matching clock_out is dropped with a warning; a stray clock_out or
// break event outside an open period is likewise warned and skipped.
func (p *Pairer) Pair(punches []types.TimePunch) ([]types.WorkPeriod, []types.Warning) {
	byEmployee := make(map[string][]types.TimePunch)
	var order []string
	for _, punch := range punches {
		if _, seen := byEmployee[punch.EmployeeID]; !seen {
			order = append(order, punch.EmployeeID)
		}
		byEmployee[punch.EmployeeID] = append(byEmployee[punch.EmployeeID], punch)
	}
	sort.Strings(order)

	var periods []types.WorkPeriod
	var warnings []types.Warning
	for _, id := range order {
		stream := byEmployee[id]
		sort.Slice(stream, func(i, j int) bool { return stream[i].Time.Before(stream[j].Time) })

		var open *types.WorkPeriod
		var breakStart *time.Time
		for _, punch := range stream {
			switch punch.Type {
			case types.PunchClockIn:
				if open != nil {
					warnings = append(warnings, warn(id, "clock_in while already clocked in; previous period dropped"))
				}
				wp := types.WorkPeriod{EmployeeID: id, Start: punch.Time}
				open = &wp
				breakStart = nil

			case types.PunchClockOut:
				if open == nil {
					warnings = append(warnings, warn(id, "clock_out without a matching clock_in"))
					continue
				}
				if breakStart != nil {
					// An unclosed break ends at clock-out
					open.BreakMinutes += punch.Time.Sub(*breakStart).Minutes()
					breakStart = nil
				}
				open.End = punch.Time
				periods = append(periods, *open)
				open = nil

			case types.PunchBreakStart:
				if open == nil {
					warnings = append(warnings, warn(id, "break_start outside a work period"))
					continue
				}
				t := punch.Time
				breakStart = &t

			case types.PunchBreakEnd:
				if open == nil || breakStart == nil {
					warnings = append(warnings, warn(id, "break_end without a matching break_start"))
					continue
				}
				open.BreakMinutes += punch.Time.Sub(*breakStart).Minutes()
				breakStart = nil
			}
		}
		if open != nil {
			warnings = append(warnings, warn(id, "clock_in with no clock_out; period dropped"))
		}
	}

	return periods, warnings
}

func warn(employeeID, message string) types.Warning {
	return types.Warning{
		Code:    "punch_pairing",
		Message: fmt.Sprintf("employee %s: %s", employeeID, message),
	}
}

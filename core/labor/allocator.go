// Package labor - Allocator and period bucket plumbing
package labor

import (
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

// PunchPairer pairs raw time-clock punches into work periods. The
// allocator never parses punch streams itself; an adapter supplies the
// pairing (see adapters/punches).
type PunchPairer interface {
	Pair(punches []types.TimePunch) ([]types.WorkPeriod, []types.Warning)
}

// Allocator computes scheduled and actual labor cost breakdowns
type Allocator struct {
	pairer PunchPairer
}

// NewAllocator creates an allocator. The pairer may be nil if only the
// scheduled contract or pre-paired periods are used.
func NewAllocator(pairer PunchPairer) *Allocator {
	return &Allocator{pairer: pairer}
}

// period accumulates daily buckets and keeps the breakdown consistent
// with their sum by construction.
type period struct {
	days    []time.Time
	index   map[string]int
	daily   []types.DailyLaborCost
	result  types.LaborCostResult
	hourly  map[string]bool
	salary  map[string]bool
	contrct map[string]bool
}

func newPeriod(start, end time.Time) *period {
	days := dayRange(start, end)
	p := &period{
		days:    days,
		index:   make(map[string]int, len(days)),
		daily:   make([]types.DailyLaborCost, len(days)),
		hourly:  make(map[string]bool),
		salary:  make(map[string]bool),
		contrct: make(map[string]bool),
	}
	for i, d := range days {
		key := d.Format("2006-01-02")
		p.index[key] = i
		p.daily[i] = types.DailyLaborCost{Date: key}
	}
	return p
}

// dayIndex returns the bucket index for a timestamp, ok=false when the
// day falls outside the requested period.
func (p *period) dayIndex(t time.Time) (int, bool) {
	i, ok := p.index[dayKey(t)]
	return i, ok
}

func (p *period) addHourly(i int, employeeID string, cost types.Cents, hours float64) {
	p.daily[i].HourlyCost += cost
	p.daily[i].TotalCost += cost
	p.daily[i].HourlyHours += hours
	p.result.Breakdown.Hourly.Cost += cost
	p.result.Breakdown.Hourly.Hours += hours
	p.result.Breakdown.Total += cost
	p.hourly[employeeID] = true
}

func (p *period) addSalary(i int, employeeID string, cost types.Cents) {
	p.daily[i].SalaryCost += cost
	p.daily[i].TotalCost += cost
	p.result.Breakdown.Salary.Cost += cost
	p.result.Breakdown.Total += cost
	p.salary[employeeID] = true
}

func (p *period) addContractor(i int, employeeID string, cost types.Cents) {
	p.daily[i].ContractorCost += cost
	p.daily[i].TotalCost += cost
	p.result.Breakdown.Contractor.Cost += cost
	p.result.Breakdown.Total += cost
	p.contrct[employeeID] = true
}

func (p *period) warn(code, message string) {
	p.result.Warnings = append(p.result.Warnings, types.Warning{Code: code, Message: message})
}

func (p *period) finish() types.LaborCostResult {
	p.result.DailyCosts = p.daily
	p.result.Breakdown.Hourly.Employees = len(p.hourly)
	p.result.Breakdown.Salary.Employees = len(p.salary)
	p.result.Breakdown.Contractor.Employees = len(p.contrct)
	return p.result
}

// allocatePeriodic computes an employee's periodic (salary/contractor)
// cost for the whole period once, then divides it evenly across every
// day for display. The remainder lands on the earliest days so the
// daily series still sums exactly to the period total.
func (p *period) allocatePeriodic(emp types.Employee) {
	if len(p.days) == 0 {
		return
	}
	var total types.Cents
	for _, day := range p.days {
		total += DailyCost(emp, day, 0)
	}
	if total == 0 {
		return
	}
	n := types.Cents(len(p.days))
	q, r := total/n, int(total%n)
	for i := range p.days {
		c := q
		if i < r {
			c++
		}
		switch emp.CompensationType {
		case types.CompensationSalary:
			p.addSalary(i, emp.ID, c)
		case types.CompensationContractor:
			p.addContractor(i, emp.ID, c)
		}
	}
}

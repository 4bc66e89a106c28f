package labor

import (
	"testing"
	"time"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHourlyCostRounding(t *testing.T) {
	tests := []struct {
		name  string
		rate  int64
		hours float64
		want  types.Cents
	}{
		{"whole hours", 1500, 8, 12000},
		{"fractional hours", 1550, 7.5, 11625},
		{"rounds to nearest cent", 1000, 1.0 / 3, 333},
		{"zero hours", 2000, 0, 0},
		{"negative hours clamp", 2000, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HourlyCost(tt.rate, tt.hours); got != tt.want {
				t.Errorf("HourlyCost(%d, %v) = %d, want %d", tt.rate, tt.hours, got, tt.want)
			}
		})
	}
}

func TestDailyCostSalary(t *testing.T) {
	tests := []struct {
		name string
		emp  types.Employee
		day  time.Time
		want types.Cents
	}{
		{
			name: "weekly salary",
			emp:  types.Employee{CompensationType: types.CompensationSalary, SalaryAmount: 70000, PayPeriodType: types.PayPeriodWeekly},
			day:  day(2025, time.January, 15),
			want: 10000,
		},
		{
			name: "biweekly salary",
			emp:  types.Employee{CompensationType: types.CompensationSalary, SalaryAmount: 140000, PayPeriodType: types.PayPeriodBiweekly},
			day:  day(2025, time.January, 15),
			want: 10000,
		},
		{
			name: "monthly salary in a 31 day month",
			emp:  types.Employee{CompensationType: types.CompensationSalary, SalaryAmount: 310000, PayPeriodType: types.PayPeriodMonthly},
			day:  day(2025, time.January, 15),
			want: 10000,
		},
		{
			name: "monthly salary in February",
			emp:  types.Employee{CompensationType: types.CompensationSalary, SalaryAmount: 280000, PayPeriodType: types.PayPeriodMonthly},
			day:  day(2025, time.February, 10),
			want: 10000,
		},
		{
			name: "semimonthly salary",
			emp:  types.Employee{CompensationType: types.CompensationSalary, SalaryAmount: 150000, PayPeriodType: types.PayPeriodSemimonthly},
			day:  day(2025, time.April, 10),
			want: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyCost(tt.emp, tt.day, 0); got != tt.want {
				t.Errorf("DailyCost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyCostContractor(t *testing.T) {
	weekly := types.Employee{
		CompensationType:          types.CompensationContractor,
		ContractorPaymentAmount:   14000,
		ContractorPaymentInterval: types.IntervalWeekly,
	}
	if got := DailyCost(weekly, day(2025, time.March, 3), 0); got != 2000 {
		t.Errorf("weekly contractor daily = %d, want 2000", got)
	}

	perJob := types.Employee{
		CompensationType:          types.CompensationContractor,
		ContractorPaymentAmount:   500000,
		ContractorPaymentInterval: types.IntervalPerJob,
	}
	// Per-job contractors never receive a daily allocation
	for _, d := range dayRange(day(2025, time.March, 1), day(2025, time.March, 31)) {
		if got := DailyCost(perJob, d, 8); got != 0 {
			t.Fatalf("per-job contractor daily on %s = %d, want 0", d.Format("2006-01-02"), got)
		}
	}
}

func TestDayRange(t *testing.T) {
	days := dayRange(day(2025, time.January, 30), day(2025, time.February, 2))
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	if days[0].Format("2006-01-02") != "2025-01-30" || days[3].Format("2006-01-02") != "2025-02-02" {
		t.Errorf("range endpoints wrong: %v .. %v", days[0], days[3])
	}

	if got := dayRange(day(2025, time.March, 2), day(2025, time.March, 1)); got != nil {
		t.Errorf("inverted range should be empty, got %v", got)
	}
}

func TestUTCDayBoundaries(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; buckets are UTC
	est := time.FixedZone("EST", -5*3600)
	stamp := time.Date(2025, time.January, 1, 23, 30, 0, 0, est)
	if got := dayKey(stamp); got != "2025-01-02" {
		t.Errorf("dayKey = %q, want 2025-01-02", got)
	}
}

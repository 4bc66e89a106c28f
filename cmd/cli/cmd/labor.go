// Package cmd - labor command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/toyiyo/nimble-pnl-sub007/adapters/punches"
	"github.com/toyiyo/nimble-pnl-sub007/core/labor"
	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

var (
	laborShiftsFile    string
	laborPunchesFile   string
	laborEmployeesFile string
	laborFrom          string
	laborTo            string
	laborFormat        string
)

// laborCmd represents the labor command
var laborCmd = &cobra.Command{
	Use:   "labor",
	Short: "Allocate labor cost over a period",
	Long: `Allocate payroll cost to calendar days over a period.

With --shifts, the scheduled (forward-looking) contract is used; with
--punches, raw time-clock events are paired into work periods and the
actual (historical) contract is used.

Examples:
  restocost labor --shifts shifts.json --employees employees.json --from 2025-01-01 --to 2025-01-31
  restocost labor --punches punches.json --employees employees.json --from 2025-01-01 --to 2025-01-31`,
	RunE: runLabor,
}

func init() {
	laborCmd.Flags().StringVar(&laborShiftsFile, "shifts", "", "scheduled shifts JSON file")
	laborCmd.Flags().StringVar(&laborPunchesFile, "punches", "", "raw time punches JSON file")
	laborCmd.Flags().StringVar(&laborEmployeesFile, "employees", "", "employee records JSON file (required)")
	laborCmd.Flags().StringVar(&laborFrom, "from", "", "period start, YYYY-MM-DD (required)")
	laborCmd.Flags().StringVar(&laborTo, "to", "", "period end, YYYY-MM-DD (required)")
	laborCmd.Flags().StringVarP(&laborFormat, "format", "f", "cli", "output format (cli, json)")

	_ = laborCmd.MarkFlagRequired("employees")
	_ = laborCmd.MarkFlagRequired("from")
	_ = laborCmd.MarkFlagRequired("to")
}

func runLabor(cmd *cobra.Command, args []string) error {
	start, err := time.ParseInLocation("2006-01-02", laborFrom, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", laborTo, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}

	var employees []types.Employee
	if err := readJSONFile(laborEmployeesFile, &employees); err != nil {
		return err
	}

	allocator := labor.NewAllocator(punches.NewPairer())

	var result types.LaborCostResult
	switch {
	case laborShiftsFile != "":
		var shifts []types.Shift
		if err := readJSONFile(laborShiftsFile, &shifts); err != nil {
			return err
		}
		result = allocator.ScheduledCost(shifts, employees, start, end)
	case laborPunchesFile != "":
		var raw []types.TimePunch
		if err := readJSONFile(laborPunchesFile, &raw); err != nil {
			return err
		}
		result = allocator.ActualCost(employees, raw, start, end)
	default:
		return fmt.Errorf("one of --shifts or --punches is required")
	}

	if laborFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%-12s %12s %12s %12s %12s\n", "Day", "Hourly", "Salary", "Contractor", "Total")
	for _, day := range result.DailyCosts {
		fmt.Printf("%-12s %12s %12s %12s %12s\n", day.Date,
			day.HourlyCost.Dollars().StringFixed(2),
			day.SalaryCost.Dollars().StringFixed(2),
			day.ContractorCost.Dollars().StringFixed(2),
			day.TotalCost.Dollars().StringFixed(2))
	}
	b := result.Breakdown
	fmt.Printf("%-12s %12s %12s %12s %12s\n", "Period", b.Hourly.Cost.Dollars().StringFixed(2),
		b.Salary.Cost.Dollars().StringFixed(2), b.Contractor.Cost.Dollars().StringFixed(2),
		b.Total.Dollars().StringFixed(2))
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message)
	}
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

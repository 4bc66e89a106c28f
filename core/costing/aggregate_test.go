package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
)

func wine() types.Product {
	return types.Product{
		ID:          "p-wine",
		Name:        "House Red Wine",
		UOMPurchase: "bottle",
		SizeValue:   750,
		SizeUnit:    "ml",
		CostPerUnit: 20,
	}
}

func TestAggregateZeroCostShortCircuit(t *testing.T) {
	agg := NewAggregator(units.NewCatalog())

	// Unit mismatch would normally fail, but a product without cost
	// data short-circuits before any conversion runs.
	result := agg.Aggregate([]types.RecipeIngredient{{
		ProductID: "p-free",
		Quantity:  3,
		Unit:      "kg",
		Product: types.Product{
			ID:          "p-free",
			Name:        "Comp Garnish",
			UOMPurchase: "each",
			CostPerUnit: 0,
		},
	}})

	if len(result.Ingredients) != 1 {
		t.Fatalf("got %d results, want 1", len(result.Ingredients))
	}
	line := result.Ingredients[0]
	if !line.CostImpact.IsZero() {
		t.Errorf("CostImpact = %s, want 0", line.CostImpact)
	}
	if line.InventoryDeduction != 3 {
		t.Errorf("InventoryDeduction = %v, want 3 (1:1)", line.InventoryDeduction)
	}
	if line.ConversionApplied {
		t.Error("zero-cost short circuit should not run the converter")
	}
	if !result.TotalCost.IsZero() {
		t.Errorf("TotalCost = %s, want 0", result.TotalCost)
	}
}

func TestAggregateResilience(t *testing.T) {
	agg := NewAggregator(units.NewCatalog())

	ingredients := []types.RecipeIngredient{
		{ProductID: "p-wine", Quantity: 375, Unit: "ml", Product: wine()},
		{
			// kg against an each-tracked product has no conversion path
			ProductID: "p-bad",
			Quantity:  2,
			Unit:      "kg",
			Product: types.Product{
				ID:          "p-bad",
				Name:        "Avocado",
				UOMPurchase: "each",
				CostPerUnit: 1.5,
			},
		},
		{ProductID: "p-wine", Quantity: 750, Unit: "ml", Product: wine()},
	}

	result := agg.Aggregate(ingredients)

	if len(result.Ingredients) != 3 {
		t.Fatalf("got %d results, want 3 (index-aligned with input)", len(result.Ingredients))
	}

	var failures int
	for _, w := range result.Warnings {
		if w.Code == "ingredient_cost_failed" {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failure warnings, want 1", failures)
	}

	bad := result.Ingredients[1]
	if !bad.CostImpact.IsZero() {
		t.Errorf("failed line CostImpact = %s, want 0", bad.CostImpact)
	}
	if bad.ProductName != "Avocado" {
		t.Errorf("placeholder should keep the product name, got %q", bad.ProductName)
	}

	// Total is half a bottle plus a full bottle, excluding the bad line
	want := decimal.NewFromInt(30)
	if result.TotalCost.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(0.0001)) {
		t.Errorf("TotalCost = %s, want ~30", result.TotalCost)
	}
}

func TestAggregateDeductionUnitIsPurchaseUnit(t *testing.T) {
	agg := NewAggregator(units.NewCatalog())

	result := agg.Aggregate([]types.RecipeIngredient{{
		ProductID: "p-wine",
		Quantity:  750,
		Unit:      "ml",
		Product:   wine(),
	}})

	line := result.Ingredients[0]
	if line.InventoryDeductionUnit != "bottle" {
		t.Errorf("InventoryDeductionUnit = %q, want the purchase unit bottle", line.InventoryDeductionUnit)
	}
	if line.Unit != "ml" {
		t.Errorf("recipe unit = %q, want ml", line.Unit)
	}
	if !line.ConversionApplied {
		t.Error("ConversionApplied should be set")
	}
}

func TestAggregateWholeContainerByCount(t *testing.T) {
	agg := NewAggregator(units.NewCatalog())

	// One bottle (or one each) of a measurement-sized container deducts
	// a whole package at full package cost.
	for _, unit := range []string{"bottle", "each"} {
		t.Run(unit, func(t *testing.T) {
			result := agg.Aggregate([]types.RecipeIngredient{{
				ProductID: "p-wine",
				Quantity:  1,
				Unit:      unit,
				Product:   wine(),
			}})

			line := result.Ingredients[0]
			if line.InventoryDeduction != 1 {
				t.Errorf("InventoryDeduction = %v, want 1", line.InventoryDeduction)
			}
			if line.InventoryDeductionUnit != "bottle" {
				t.Errorf("InventoryDeductionUnit = %q, want bottle", line.InventoryDeductionUnit)
			}
			if !line.CostImpact.Equal(decimal.NewFromInt(20)) {
				t.Errorf("CostImpact = %s, want 20", line.CostImpact)
			}
		})
	}
}

func TestAggregateMissingSizeDegrades(t *testing.T) {
	agg := NewAggregator(units.NewCatalog())

	// Container with no stored size: resolver warns, impact fails with
	// MissingContainerSize, and the line degrades to a placeholder.
	result := agg.Aggregate([]types.RecipeIngredient{{
		ProductID: "p-keg",
		Quantity:  500,
		Unit:      "ml",
		Product: types.Product{
			ID:          "p-keg",
			Name:        "Mystery Keg",
			UOMPurchase: "container",
			CostPerUnit: 90,
		},
	}})

	if len(result.Ingredients) != 1 {
		t.Fatalf("got %d results, want 1", len(result.Ingredients))
	}
	if !result.Ingredients[0].CostImpact.IsZero() {
		t.Errorf("CostImpact = %s, want 0", result.Ingredients[0].CostImpact)
	}

	codes := map[string]bool{}
	for _, w := range result.Warnings {
		codes[w.Code] = true
	}
	if !codes["missing_container_size"] || !codes["ingredient_cost_failed"] {
		t.Errorf("want both missing_container_size and ingredient_cost_failed warnings, got %v", result.Warnings)
	}
}

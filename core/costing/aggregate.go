// Package costing - Ingredient list aggregation
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/toyiyo/nimble-pnl-sub007/core/packaging"
	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
)

// Aggregator costs whole ingredient lists. One bad line never aborts
// the batch: failures degrade to zero-cost placeholders plus warnings
// so the result stays index-aligned with the input.
type Aggregator struct {
	calculator *Calculator
	resolver   *packaging.Resolver
}

// NewAggregator creates an aggregator over the given catalog
func NewAggregator(catalog *units.Catalog) *Aggregator {
	return &Aggregator{
		calculator: NewCalculator(units.NewConverter(catalog)),
		resolver:   packaging.NewResolver(catalog),
	}
}

// CalculateIngredientCost resolves packaging and computes the impact of
// a single recipe line.
func (a *Aggregator) CalculateIngredientCost(ing types.RecipeIngredient) (types.IngredientCostResult, []types.Warning, error) {
	info, warnings := a.resolver.Resolve(ing.Product)

	// Products without cost data short-circuit to a 1:1 zero-cost
	// result; running the converter would only add noise.
	if ing.Product.CostPerUnit == 0 {
		return types.IngredientCostResult{
			ProductID:              ing.Product.ID,
			ProductName:            ing.Product.Name,
			Quantity:               ing.Quantity,
			Unit:                   units.Normalize(ing.Unit),
			CostPerUnit:            decimal.Zero,
			InventoryDeduction:     ing.Quantity,
			InventoryDeductionUnit: info.PurchaseUnit,
			CostImpact:             decimal.Zero,
		}, warnings, nil
	}

	in := ImpactInput{
		RecipeQty:      ing.Quantity,
		RecipeUnit:     ing.Unit,
		PurchaseQty:    info.PackageQuantity,
		PurchaseUnit:   info.PurchaseUnit,
		ProductName:    ing.Product.Name,
		CostPerPackage: decimal.NewFromFloat(ing.Product.CostPerUnit),
	}
	// Container capacity is only forwarded when the product actually
	// stored it; a defaulted size must not masquerade as real metadata.
	if info.IsContainerUnit && !info.SizeDefaulted {
		in.SizeValue = info.SizeValue
		in.SizeUnit = info.SizeUnit
	}

	impact, err := a.calculator.Impact(in)
	if err != nil {
		return types.IngredientCostResult{}, warnings, err
	}

	return types.IngredientCostResult{
		ProductID:              ing.Product.ID,
		ProductName:            ing.Product.Name,
		Quantity:               ing.Quantity,
		Unit:                   units.Normalize(ing.Unit),
		CostPerUnit:            decimal.NewFromFloat(ing.Product.CostPerUnit),
		InventoryDeduction:     impact.InventoryDeduction,
		InventoryDeductionUnit: impact.InventoryDeductionUnit,
		CostImpact:             impact.CostImpact,
		ConversionApplied:      impact.ConversionDetails != "",
		ConversionPath:         impact.ConversionDetails,
	}, warnings, nil
}

// Aggregate costs a list of ingredients. Per-line failures are caught,
// recorded as warnings, and replaced by zero-cost placeholders; the
// total is the sum over all lines, failed ones contributing zero.
func (a *Aggregator) Aggregate(ingredients []types.RecipeIngredient) types.RecipeCostResult {
	result := types.RecipeCostResult{
		TotalCost:   decimal.Zero,
		Ingredients: make([]types.IngredientCostResult, 0, len(ingredients)),
	}

	for _, ing := range ingredients {
		line, warnings, err := a.CalculateIngredientCost(ing)
		result.Warnings = append(result.Warnings, warnings...)

		if err != nil {
			result.Warnings = append(result.Warnings, types.Warning{
				Code:    "ingredient_cost_failed",
				Message: fmt.Sprintf("could not cost %q: %v", ing.Product.Name, err),
			})
			line = types.IngredientCostResult{
				ProductID:              ing.Product.ID,
				ProductName:            ing.Product.Name,
				Quantity:               ing.Quantity,
				Unit:                   units.Normalize(ing.Unit),
				CostPerUnit:            decimal.NewFromFloat(ing.Product.CostPerUnit),
				InventoryDeductionUnit: units.Normalize(ing.Product.UOMPurchase),
				CostImpact:             decimal.Zero,
			}
		}

		result.Ingredients = append(result.Ingredients, line)
		result.TotalCost = result.TotalCost.Add(line.CostImpact)
	}

	return result
}

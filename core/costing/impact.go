// Package costing computes inventory impact and dollar cost for
// recipe lines, and aggregates them over ingredient lists. It never
// performs I/O; degraded data turns into warnings, not aborts.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/toyiyo/nimble-pnl-sub007/core/units"
	"github.com/toyiyo/nimble-pnl-sub007/internal/errors"
	"github.com/toyiyo/nimble-pnl-sub007/internal/logging"
)

// Hard-coded oz/ml factors for the last-resort fallback path. These
// duplicate the catalog on purpose: the fallback must work even when a
// custom catalog omits the standard volume table.
const (
	mlPerOz = 29.5735
	ozPerMl = 1 / 29.5735
)

// ImpactInput is the input to a single impact calculation
type ImpactInput struct {
	// RecipeQty is the amount consumed by the recipe
	RecipeQty float64

	// RecipeUnit is the recipe's unit
	RecipeUnit string

	// PurchaseQty is how many recipe-side sub-units one purchase unit
	// holds (1 for direct-measurement products)
	PurchaseQty float64

	// PurchaseUnit is the unit in which inventory is tracked
	PurchaseUnit string

	// ProductName drives ingredient override detection
	ProductName string

	// CostPerPackage is the cost of one purchase unit
	CostPerPackage decimal.Decimal

	// SizeValue is the physical capacity of one container, if known
	SizeValue float64

	// SizeUnit is the unit of SizeValue
	SizeUnit string
}

// Impact is the result of a single impact calculation
type Impact struct {
	// InventoryDeduction is inventory consumed, in purchase units
	InventoryDeduction float64 `json:"inventory_deduction"`

	// InventoryDeductionUnit is always the purchase unit
	InventoryDeductionUnit string `json:"inventory_deduction_unit"`

	// CostImpact is the dollar cost of the consumed inventory
	CostImpact decimal.Decimal `json:"cost_impact"`

	// PercentageOfPackage is deduction as a percentage of one package
	PercentageOfPackage float64 `json:"percentage_of_package"`

	// ConversionDetails describes the conversion route taken
	ConversionDetails string `json:"conversion_details,omitempty"`

	// ProductSpecific reports whether an ingredient override was used
	ProductSpecific bool `json:"product_specific,omitempty"`
}

// Calculator computes inventory impact for recipe lines
type Calculator struct {
	converter *units.Converter
}

// NewCalculator creates a calculator over the given converter
func NewCalculator(converter *units.Converter) *Calculator {
	return &Calculator{converter: converter}
}

// Impact computes how much inventory a recipe line consumes and what it
// costs. Resolution order:
//
//  1. container purchase unit + volume recipe unit: convert the recipe
//     quantity into the container's size unit and divide by its capacity
//  2. legacy bottle/ml shortcut for callers that pass container counts
//     as the recipe unit
//  3. general conversion from recipe unit to purchase unit
//  4. hard-coded oz/ml fallback, then identity on equal units
//
// Anything past step 4 is an INCOMPATIBLE units error naming the product.
func (c *Calculator) Impact(in ImpactInput) (Impact, error) {
	recipeUnit := units.Normalize(in.RecipeUnit)
	purchaseUnit := units.Normalize(in.PurchaseUnit)
	catalog := c.converter.Catalog()

	purchaseQty := in.PurchaseQty
	if purchaseQty <= 0 {
		purchaseQty = 1
	}
	// The package quantity counts recipe-side sub-units only when the
	// package's size unit is itself a counting unit (a case of 12 each).
	// When a container's size is a measurement (a 750 ml bottle), a
	// count-converted quantity is already whole packages; dividing it by
	// the capacity would mix counts with milliliters.
	if catalog.IsCountUnit(purchaseUnit) && !catalog.IsCountUnit(in.SizeUnit) {
		purchaseQty = 1
	}

	// Step 1: fractional containers from a measured volume
	if catalog.IsCountUnit(purchaseUnit) && catalog.Family(recipeUnit) == units.FamilyVolume {
		if in.SizeValue <= 0 || in.SizeUnit == "" {
			return Impact{}, errors.MissingContainerSize(in.ProductName)
		}
		conv, err := c.converter.ConvertForProduct(in.RecipeQty, recipeUnit, in.SizeUnit, in.ProductName)
		if err != nil {
			return Impact{}, err
		}
		containersNeeded := conv.Value / in.SizeValue
		return Impact{
			InventoryDeduction:     containersNeeded,
			InventoryDeductionUnit: purchaseUnit,
			CostImpact:             in.CostPerPackage.Mul(decimal.NewFromFloat(containersNeeded)),
			PercentageOfPackage:    containersNeeded * 100,
			ConversionDetails:      fmt.Sprintf("%g %s → %.4f %s (container of %g %s)", in.RecipeQty, recipeUnit, containersNeeded, purchaseUnit, in.SizeValue, units.Normalize(in.SizeUnit)),
			ProductSpecific:        conv.ProductSpecific,
		}, nil
	}

	// Step 2: legacy shortcut for callers that pass a container count as
	// the recipe unit against an ml-tracked product
	if recipeUnit == "bottle" && purchaseUnit == "ml" {
		return Impact{
			InventoryDeduction:     in.RecipeQty * purchaseQty,
			InventoryDeductionUnit: purchaseUnit,
			CostImpact:             in.CostPerPackage.Mul(decimal.NewFromFloat(in.RecipeQty)),
			PercentageOfPackage:    in.RecipeQty * 100,
			ConversionDetails:      fmt.Sprintf("legacy: %g bottle × %g ml", in.RecipeQty, purchaseQty),
		}, nil
	}

	// Step 3: general conversion into the purchase unit
	conv, err := c.converter.ConvertForProduct(in.RecipeQty, recipeUnit, purchaseUnit, in.ProductName)
	if err == nil {
		return c.fromConverted(in, conv.Value, purchaseUnit, purchaseQty, conv.Path, conv.ProductSpecific), nil
	}

	// Step 4: fallback conversions, diagnostics only
	if converted, detail, ok := fallbackConvert(in.RecipeQty, recipeUnit, purchaseUnit); ok {
		logging.Warn("using fallback unit conversion",
			zap.String("product", in.ProductName),
			zap.String("recipe_unit", recipeUnit),
			zap.String("purchase_unit", purchaseUnit))
		return c.fromConverted(in, converted, purchaseUnit, purchaseQty, detail, false), nil
	}

	return Impact{}, errors.IncompatibleUnits(recipeUnit, purchaseUnit, in.ProductName)
}

// fromConverted turns a converted recipe quantity into an Impact.
// The percentage and cost scale by how much of one package the
// converted quantity represents. The deduction stays in measurement
// units for direct-measurement products (0.5 kg out of a 5 kg bag) but
// collapses to fractional packages for container purchase units, where
// the converted value counts sub-units (3 each out of a case of 12 is
// 0.25 case).
func (c *Calculator) fromConverted(in ImpactInput, converted float64, purchaseUnit string, purchaseQty float64, detail string, productSpecific bool) Impact {
	packagesConsumed := converted / purchaseQty
	deduction := converted
	if c.converter.Catalog().IsCountUnit(purchaseUnit) {
		deduction = packagesConsumed
	}
	return Impact{
		InventoryDeduction:     deduction,
		InventoryDeductionUnit: purchaseUnit,
		CostImpact:             in.CostPerPackage.Mul(decimal.NewFromFloat(packagesConsumed)),
		PercentageOfPackage:    packagesConsumed * 100,
		ConversionDetails:      detail,
		ProductSpecific:        productSpecific,
	}
}

// fallbackConvert applies the known oz/ml factors or identity on equal
// units after all catalog conversions are exhausted.
func fallbackConvert(value float64, from, to string) (float64, string, bool) {
	switch {
	case from == "oz" && to == "ml":
		return value * mlPerOz, "fallback: oz → ml", true
	case from == "ml" && to == "oz":
		return value * ozPerMl, "fallback: ml → oz", true
	case from == to:
		return value, "fallback: identity", true
	}
	return 0, "", false
}

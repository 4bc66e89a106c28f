// Package packaging derives a product's purchase-unit semantics from
// its stored fields: whether the purchase unit is a discrete container
// (bottle, case) or a direct measurement (kg), and what physical size
// one purchase unit represents. Missing data is defaulted, never fatal.
package packaging

import (
	"fmt"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
)

// ProductUnitInfo is the derived purchase packaging of a product
type ProductUnitInfo struct {
	// PackageType is the stated purchase unit, defaulted to "unit"
	PackageType string `json:"package_type"`

	// IsContainerUnit reports whether PackageType is a Count-family unit
	IsContainerUnit bool `json:"is_container_unit"`

	// SizeValue is the physical size of one package
	SizeValue float64 `json:"size_value"`

	// SizeUnit is the unit of SizeValue
	SizeUnit string `json:"size_unit"`

	// PurchaseUnit is the unit in which inventory is tracked
	PurchaseUnit string `json:"purchase_unit"`

	// PackageQuantity is the resolved size value, minimum 1
	PackageQuantity float64 `json:"package_quantity"`

	// SizeDefaulted reports that SizeValue/SizeUnit were substituted
	// because the stored product fields were missing
	SizeDefaulted bool `json:"size_defaulted,omitempty"`
}

// Resolver derives ProductUnitInfo from raw product fields
type Resolver struct {
	catalog *units.Catalog
}

// NewResolver creates a resolver over the given catalog
func NewResolver(catalog *units.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve computes the purchase packaging for a product. It always
// returns a best-effort structure; incomplete data degrades to
// documented defaults with a warning rather than an error.
func (r *Resolver) Resolve(product types.Product) (ProductUnitInfo, []types.Warning) {
	var warnings []types.Warning

	packageType := units.Normalize(product.UOMPurchase)
	if packageType == "" {
		packageType = "unit"
	}

	isContainer := r.catalog.IsCountUnit(packageType)

	sizeValue := product.SizeValue
	sizeUnit := units.Normalize(product.SizeUnit)

	// A container with unknown physical size is treated as one opaque
	// unit; downstream math needs some size to avoid division by zero.
	sizeDefaulted := false
	if isContainer && (sizeValue <= 0 || sizeUnit == "") {
		sizeValue = 1
		sizeUnit = packageType
		sizeDefaulted = true
		warnings = append(warnings, types.Warning{
			Code:    "missing_container_size",
			Message: fmt.Sprintf("product %q is sold as %q but has no size metadata; defaulting to 1 %s", product.Name, packageType, packageType),
		})
	}

	// An unset purchase unit already defaulted to "unit", a counting
	// unit, so every non-container product carries a stated measurement
	// unit and inventory is tracked in it directly.
	purchaseUnit := packageType

	packageQuantity := sizeValue
	if packageQuantity < 1 {
		packageQuantity = 1
	}

	return ProductUnitInfo{
		PackageType:     packageType,
		IsContainerUnit: isContainer,
		SizeValue:       sizeValue,
		SizeUnit:        sizeUnit,
		PurchaseUnit:    purchaseUnit,
		PackageQuantity: packageQuantity,
		SizeDefaulted:   sizeDefaulted,
	}, warnings
}

package packaging

import (
	"testing"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
)

func TestResolveContainerProduct(t *testing.T) {
	r := NewResolver(units.NewCatalog())

	info, warnings := r.Resolve(types.Product{
		Name:        "House Red Wine",
		UOMPurchase: "bottle",
		SizeValue:   750,
		SizeUnit:    "ml",
	})

	if !info.IsContainerUnit {
		t.Error("bottle should be a container unit")
	}
	if info.PackageType != "bottle" || info.PurchaseUnit != "bottle" {
		t.Errorf("package/purchase unit = %q/%q, want bottle/bottle", info.PackageType, info.PurchaseUnit)
	}
	if info.SizeValue != 750 || info.SizeUnit != "ml" {
		t.Errorf("size = %v %q, want 750 ml", info.SizeValue, info.SizeUnit)
	}
	if info.PackageQuantity != 750 {
		t.Errorf("PackageQuantity = %v, want 750", info.PackageQuantity)
	}
	if info.SizeDefaulted || len(warnings) != 0 {
		t.Errorf("complete container data should not warn, got %v", warnings)
	}
}

func TestResolveContainerMissingSize(t *testing.T) {
	r := NewResolver(units.NewCatalog())

	info, warnings := r.Resolve(types.Product{
		Name:        "Mystery Crate",
		UOMPurchase: "case",
	})

	if info.SizeValue != 1 || info.SizeUnit != "case" {
		t.Errorf("defaulted size = %v %q, want 1 case", info.SizeValue, info.SizeUnit)
	}
	if !info.SizeDefaulted {
		t.Error("SizeDefaulted should be set")
	}
	if len(warnings) != 1 || warnings[0].Code != "missing_container_size" {
		t.Errorf("want one missing_container_size warning, got %v", warnings)
	}
	if info.PackageQuantity != 1 {
		t.Errorf("PackageQuantity = %v, want 1", info.PackageQuantity)
	}
}

func TestResolveDirectMeasurementProduct(t *testing.T) {
	r := NewResolver(units.NewCatalog())

	info, warnings := r.Resolve(types.Product{
		Name:        "Bread Flour",
		UOMPurchase: "kg",
		SizeValue:   5,
		SizeUnit:    "kg",
	})

	if info.IsContainerUnit {
		t.Error("kg is not a container unit")
	}
	if info.PurchaseUnit != "kg" {
		t.Errorf("PurchaseUnit = %q, want kg", info.PurchaseUnit)
	}
	if info.PackageQuantity != 5 {
		t.Errorf("PackageQuantity = %v, want 5", info.PackageQuantity)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestResolveDefaults(t *testing.T) {
	r := NewResolver(units.NewCatalog())

	tests := []struct {
		name         string
		product      types.Product
		purchaseUnit string
		defaulted    bool
	}{
		{
			// An unset purchase unit becomes "unit", a counting unit, so
			// the product is treated as one opaque container.
			name:         "empty product defaults to one opaque unit",
			product:      types.Product{Name: "No Data"},
			purchaseUnit: "unit",
			defaulted:    true,
		},
		{
			name:         "unset purchase unit keeps a stored size",
			product:      types.Product{Name: "Oil", SizeValue: 2, SizeUnit: "L"},
			purchaseUnit: "unit",
			defaulted:    false,
		},
		{
			name:         "measurement purchase unit tracks itself",
			product:      types.Product{Name: "Rice", UOMPurchase: "kg", SizeValue: 10, SizeUnit: "kg"},
			purchaseUnit: "kg",
			defaulted:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, _ := r.Resolve(tt.product)
			if info.PurchaseUnit != tt.purchaseUnit {
				t.Errorf("PurchaseUnit = %q, want %q", info.PurchaseUnit, tt.purchaseUnit)
			}
			if info.SizeDefaulted != tt.defaulted {
				t.Errorf("SizeDefaulted = %v, want %v", info.SizeDefaulted, tt.defaulted)
			}
			if info.PackageQuantity < 1 {
				t.Errorf("PackageQuantity = %v, want >= 1", info.PackageQuantity)
			}
		})
	}
}

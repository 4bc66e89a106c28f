package units

import (
	"math"
	"testing"
)

func TestFamilyMembership(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		unit   string
		family Family
	}{
		{"kg", FamilyWeight},
		{"g", FamilyWeight},
		{"lb", FamilyWeight},
		{"ml", FamilyVolume},
		{"L", FamilyVolume},
		{"cup", FamilyVolume},
		{"bottle", FamilyCount},
		{"case", FamilyCount},
		{"each", FamilyCount},
		{"dozen", FamilyCount},
		{"inch", FamilyLength},
		{"meter", FamilyLength},
		{"parsec", FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			if got := catalog.Family(tt.unit); got != tt.family {
				t.Errorf("Family(%q) = %q, want %q", tt.unit, got, tt.family)
			}
		})
	}
}

func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lbs", "lb"},
		{"  CUP ", "cup"},
		{"L", "l"},
		{"fl oz", "oz"},
		{"bottles", "bottle"},
		{"g", "g"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFactorInversion(t *testing.T) {
	catalog := NewCatalog()

	// kg -> g is tabulated; g -> kg must come from inversion
	direct, ok := catalog.Factor("kg", "g")
	if !ok || direct != 1000 {
		t.Fatalf("Factor(kg, g) = %v, %v; want 1000, true", direct, ok)
	}
	inverse, ok := catalog.Factor("g", "kg")
	if !ok || math.Abs(inverse-0.001) > 1e-12 {
		t.Fatalf("Factor(g, kg) = %v, %v; want 0.001, true", inverse, ok)
	}

	if _, ok := catalog.Factor("kg", "ml"); ok {
		t.Error("Factor(kg, ml) should not exist")
	}
}

func TestRegisterUnitKeepsFamilyFixed(t *testing.T) {
	catalog := NewCatalog()

	if !catalog.RegisterUnit("shot", FamilyVolume) {
		t.Fatal("registering a new unit should succeed")
	}
	if catalog.Family("shot") != FamilyVolume {
		t.Errorf("Family(shot) = %q, want volume", catalog.Family("shot"))
	}

	// Family membership is fixed and never mutated
	if catalog.RegisterUnit("shot", FamilyWeight) {
		t.Error("re-registering into a different family should be rejected")
	}
	if catalog.RegisterUnit("kg", FamilyCount) {
		t.Error("re-registering a standard unit into a different family should be rejected")
	}
}

func TestRegisterFactorAndOverride(t *testing.T) {
	catalog := NewCatalog()
	catalog.RegisterUnit("shot", FamilyVolume)
	catalog.RegisterFactor("shot", "ml", 44.36)

	if f, ok := catalog.Factor("shot", "ml"); !ok || f != 44.36 {
		t.Errorf("Factor(shot, ml) = %v, %v; want 44.36, true", f, ok)
	}

	catalog.RegisterOverride(ProductType("honey"), "cup", "g", 340)
	f, inverted, ok := catalog.Override(ProductType("honey"), "cup", "g")
	if !ok || inverted || f != 340 {
		t.Errorf("Override(honey, cup, g) = %v, %v, %v; want 340, false, true", f, inverted, ok)
	}
}

func TestOverrideReverseDirection(t *testing.T) {
	catalog := NewCatalog()

	f, inverted, ok := catalog.Override(TypeFlour, "g", "cup")
	if !ok || !inverted {
		t.Fatalf("Override(flour, g, cup) = %v, %v, %v; want inverted hit", f, inverted, ok)
	}
	if math.Abs(f-1.0/120) > 1e-12 {
		t.Errorf("reverse flour factor = %v, want 1/120", f)
	}
}

// Package units - Unit conversion engine
package units

import (
	"fmt"

	"github.com/toyiyo/nimble-pnl-sub007/internal/errors"
)

// ConversionResult carries a converted value and how it was obtained
type ConversionResult struct {
	// Value is the converted quantity
	Value float64 `json:"value"`

	// FromUnit is the normalized source unit
	FromUnit string `json:"from_unit"`

	// ToUnit is the normalized target unit
	ToUnit string `json:"to_unit"`

	// ProductSpecific reports whether an ingredient override was applied
	ProductSpecific bool `json:"product_specific"`

	// Path describes the conversion route taken
	Path string `json:"path,omitempty"`
}

// Converter converts quantities between units using a catalog.
// All methods are pure; a converter is safe for concurrent use.
type Converter struct {
	catalog *Catalog
}

// NewConverter creates a converter over the given catalog
func NewConverter(catalog *Catalog) *Converter {
	return &Converter{catalog: catalog}
}

// Catalog returns the underlying catalog
func (cv *Converter) Catalog() *Catalog {
	return cv.catalog
}

// Convert converts a quantity between units with no product hint
func (cv *Converter) Convert(value float64, fromUnit, toUnit string) (ConversionResult, error) {
	return cv.ConvertForProduct(value, fromUnit, toUnit, "")
}

// ConvertForProduct converts a quantity between units, consulting
// ingredient-specific overrides detected from the product name before
// any standard factor. Resolution order:
//
//  1. identity (same unit)
//  2. product override, direct then reverse
//  3. direct standard factor (or inverted reverse factor)
//  4. two-hop routing through the family base (g for weight, ml for volume)
//  5. count units convert 1:1
//
// Cross-family conversion without product size metadata is unsupported
// and returns a CONVERSION_ERROR.
func (cv *Converter) ConvertForProduct(value float64, fromUnit, toUnit, productName string) (ConversionResult, error) {
	from, to := Normalize(fromUnit), Normalize(toUnit)

	if from == to {
		return ConversionResult{Value: value, FromUnit: from, ToUnit: to}, nil
	}

	if productName != "" {
		if tag, ok := DetectProductType(productName); ok {
			if factor, inverted, ok := cv.catalog.Override(tag, from, to); ok {
				direction := "direct"
				if inverted {
					direction = "reverse"
				}
				return ConversionResult{
					Value:           value * factor,
					FromUnit:        from,
					ToUnit:          to,
					ProductSpecific: true,
					Path:            fmt.Sprintf("%s override (%s, %s → %s)", tag, direction, from, to),
				}, nil
			}
		}
	}

	if factor, ok := cv.catalog.Factor(from, to); ok {
		return ConversionResult{Value: value * factor, FromUnit: from, ToUnit: to}, nil
	}

	fromFamily, toFamily := cv.catalog.Family(from), cv.catalog.Family(to)
	if fromFamily == toFamily {
		switch fromFamily {
		case FamilyWeight:
			if r, ok := cv.viaBase(value, from, to, BaseWeight); ok {
				return r, nil
			}
		case FamilyVolume:
			if r, ok := cv.viaBase(value, from, to, BaseVolume); ok {
				return r, nil
			}
		case FamilyCount:
			// Discrete counting units are dimensionless: a bottle and a
			// generic unit are interchangeable by count, not physical size.
			return ConversionResult{
				Value:    value,
				FromUnit: from,
				ToUnit:   to,
				Path:     "count 1:1",
			}, nil
		}
	}

	return ConversionResult{}, errors.NoConversionPath(from, to)
}

// viaBase routes a conversion through the family's canonical base unit
func (cv *Converter) viaBase(value float64, from, to, base string) (ConversionResult, bool) {
	toBase, ok := cv.catalog.Factor(from, base)
	if !ok {
		return ConversionResult{}, false
	}
	fromBase, ok := cv.catalog.Factor(base, to)
	if !ok {
		return ConversionResult{}, false
	}
	return ConversionResult{
		Value:    value * toBase * fromBase,
		FromUnit: from,
		ToUnit:   to,
		Path:     fmt.Sprintf("%s → %s → %s", from, base, to),
	}, true
}

// Package units - Ingredient type detection
// Replaces substring-dispatch with an ordered (predicate, tag) rule
// table evaluated in priority order.
package units

import "strings"

// ProductType tags an ingredient class that carries its own
// volumetric-to-mass conversion factors.
type ProductType string

const (
	TypeRice       ProductType = "rice"
	TypeFlour      ProductType = "flour"
	TypeSugar      ProductType = "sugar"
	TypeBrownSugar ProductType = "brown_sugar"
	TypeButter     ProductType = "butter"
)

// detectRule pairs a name predicate with the tag it yields
type detectRule struct {
	matches func(name string) bool
	tag     func(name string) ProductType
}

func contains(substr string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, substr) }
}

// detectRules are evaluated top to bottom; the first match wins.
// "sugar" resolves to brown_sugar when the name also mentions "brown",
// so the brown variant never falls through to plain sugar.
var detectRules = []detectRule{
	{contains("rice"), func(string) ProductType { return TypeRice }},
	{contains("flour"), func(string) ProductType { return TypeFlour }},
	{contains("sugar"), func(name string) ProductType {
		if strings.Contains(name, "brown") {
			return TypeBrownSugar
		}
		return TypeSugar
	}},
	{contains("butter"), func(string) ProductType { return TypeButter }},
}

// DetectProductType classifies a product name into an ingredient tag.
// Matching is case-insensitive substring matching in fixed priority.
func DetectProductType(productName string) (ProductType, bool) {
	name := strings.ToLower(productName)
	for _, rule := range detectRules {
		if rule.matches(name) {
			return rule.tag(name), true
		}
	}
	return "", false
}

// overrideFactors are ingredient-specific volumetric-to-mass factors
// that supersede generic conversion. Directed from->to; reverse
// direction is derived by inversion at lookup time.
var overrideFactors = map[ProductType]map[string]map[string]float64{
	TypeRice: {
		"cup": {"g": 180},
	},
	TypeFlour: {
		"cup":  {"g": 120},
		"tbsp": {"g": 7.5},
	},
	TypeSugar: {
		"cup":  {"g": 200},
		"tbsp": {"g": 12.5},
	},
	TypeBrownSugar: {
		"cup": {"g": 220},
	},
	TypeButter: {
		"cup":  {"g": 227},
		"tbsp": {"g": 14.2},
	},
}

// Package units - Authoritative measurement unit catalog
// Defines the canonical unit families, pairwise conversion factors, and
// product-specific override factors. This is the source of truth for
// every conversion decision in the engine.
package units

import "strings"

// Family classifies a unit by what it measures
type Family string

const (
	// FamilyWeight - mass units, canonical base is the gram
	FamilyWeight Family = "weight"

	// FamilyVolume - volume units, canonical base is the milliliter
	FamilyVolume Family = "volume"

	// FamilyCount - discrete counting units, interchangeable 1:1
	FamilyCount Family = "count"

	// FamilyLength - length units, direct factors only
	FamilyLength Family = "length"

	// FamilyUnknown - unit not in the catalog
	FamilyUnknown Family = "unknown"
)

// Base units used for multi-hop routing within a family
const (
	BaseWeight = "g"
	BaseVolume = "ml"
)

// unitFamilies maps every known unit to its family. Membership is fixed;
// it determines which conversion path is legal.
var unitFamilies = map[string]Family{
	// Weight
	"lb": FamilyWeight,
	"kg": FamilyWeight,
	"g":  FamilyWeight,

	// Volume
	"oz":   FamilyVolume,
	"cup":  FamilyVolume,
	"tbsp": FamilyVolume,
	"tsp":  FamilyVolume,
	"ml":   FamilyVolume,
	"l":    FamilyVolume,
	"gal":  FamilyVolume,
	"qt":   FamilyVolume,
	"pint": FamilyVolume,

	// Count
	"each":      FamilyCount,
	"piece":     FamilyCount,
	"serving":   FamilyCount,
	"unit":      FamilyCount,
	"bottle":    FamilyCount,
	"can":       FamilyCount,
	"box":       FamilyCount,
	"bag":       FamilyCount,
	"case":      FamilyCount,
	"container": FamilyCount,
	"package":   FamilyCount,
	"dozen":     FamilyCount,

	// Length
	"inch":  FamilyLength,
	"cm":    FamilyLength,
	"mm":    FamilyLength,
	"ft":    FamilyLength,
	"meter": FamilyLength,
}

// unitAliases maps common spellings onto catalog keys
var unitAliases = map[string]string{
	"lbs":    "lb",
	"pound":  "lb",
	"pounds": "lb",
	"gram":   "g",
	"grams":  "g",
	"liter":  "l",
	"litre":  "l",
	"fl oz":  "oz",
	"floz":   "oz",
	"ounce":  "oz",
	"ounces": "oz",
	"cups":   "cup",
	"pieces": "piece",
	"units":  "unit",
	"bottles": "bottle",
	"in":     "inch",
	"m":      "meter",
}

// standardFactors holds directed pairwise multipliers:
// quantity_in_to = quantity_in_from * factor. Only one direction is
// tabulated per pair; lookups fall back to the inverse.
var standardFactors = map[string]map[string]float64{
	// Weight, toward grams
	"kg": {"g": 1000},
	"lb": {"g": 453.592, "kg": 0.453592},

	// Volume, toward milliliters
	"l":    {"ml": 1000},
	"oz":   {"ml": 29.5735},
	"cup":  {"ml": 236.588, "tbsp": 16, "oz": 8},
	"tbsp": {"ml": 14.7868, "tsp": 3},
	"tsp":  {"ml": 4.92892},
	"gal":  {"ml": 3785.41, "qt": 4},
	"qt":   {"ml": 946.353, "pint": 2},
	"pint": {"ml": 473.176},

	// Length, direct pairs only (no base routing for length)
	"inch":  {"cm": 2.54, "mm": 25.4},
	"ft":    {"inch": 12, "cm": 30.48, "meter": 0.3048},
	"cm":    {"mm": 10},
	"meter": {"cm": 100, "mm": 1000},
}

// Catalog resolves unit families, conversion factors, and product
// overrides. The zero value is unusable; construct with NewCatalog.
// A catalog is immutable after the registration phase and safe for
// concurrent readers.
type Catalog struct {
	families  map[string]Family
	factors   map[string]map[string]float64
	overrides map[ProductType]map[string]map[string]float64
}

// NewCatalog creates a catalog seeded with the standard tables.
// Additional units, factors, and overrides may be registered before the
// catalog is handed to a converter.
func NewCatalog() *Catalog {
	c := &Catalog{
		families:  make(map[string]Family, len(unitFamilies)),
		factors:   make(map[string]map[string]float64, len(standardFactors)),
		overrides: make(map[ProductType]map[string]map[string]float64, len(overrideFactors)),
	}
	for u, f := range unitFamilies {
		c.families[u] = f
	}
	for from, tos := range standardFactors {
		m := make(map[string]float64, len(tos))
		for to, v := range tos {
			m[to] = v
		}
		c.factors[from] = m
	}
	for tag, froms := range overrideFactors {
		fm := make(map[string]map[string]float64, len(froms))
		for from, tos := range froms {
			m := make(map[string]float64, len(tos))
			for to, v := range tos {
				m[to] = v
			}
			fm[from] = m
		}
		c.overrides[tag] = fm
	}
	return c
}

// Normalize canonicalizes a unit string for catalog lookup
func Normalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if alias, ok := unitAliases[u]; ok {
		return alias
	}
	return u
}

// Family returns the family of a unit, FamilyUnknown if unrecognized
func (c *Catalog) Family(unit string) Family {
	if f, ok := c.families[Normalize(unit)]; ok {
		return f
	}
	return FamilyUnknown
}

// IsCountUnit reports whether the unit is a discrete counting unit
func (c *Catalog) IsCountUnit(unit string) bool {
	return c.Family(unit) == FamilyCount
}

// Factor returns the directed multiplier from one unit to another,
// inverting a tabulated reverse factor when only that direction exists.
func (c *Catalog) Factor(from, to string) (float64, bool) {
	from, to = Normalize(from), Normalize(to)
	if tos, ok := c.factors[from]; ok {
		if v, ok := tos[to]; ok {
			return v, true
		}
	}
	if froms, ok := c.factors[to]; ok {
		if v, ok := froms[from]; ok && v != 0 {
			return 1 / v, true
		}
	}
	return 0, false
}

// Override returns the product-specific factor for a tag and unit
// pair. The second return reports direct vs inverted; the third whether
// any override applied.
func (c *Catalog) Override(tag ProductType, from, to string) (factor float64, inverted bool, ok bool) {
	froms, found := c.overrides[tag]
	if !found {
		return 0, false, false
	}
	from, to = Normalize(from), Normalize(to)
	if tos, ok := froms[from]; ok {
		if v, ok := tos[to]; ok {
			return v, false, true
		}
	}
	// Reverse overrides are tried before giving up
	if tos, ok := froms[to]; ok {
		if v, ok := tos[from]; ok && v != 0 {
			return 1 / v, true, true
		}
	}
	return 0, false, false
}

// RegisterUnit adds a unit to a family. Re-registering an existing unit
// into a different family is rejected; membership is fixed.
func (c *Catalog) RegisterUnit(unit string, family Family) bool {
	u := Normalize(unit)
	if existing, ok := c.families[u]; ok {
		return existing == family
	}
	c.families[u] = family
	return true
}

// RegisterFactor adds a directed conversion factor
func (c *Catalog) RegisterFactor(from, to string, value float64) {
	from, to = Normalize(from), Normalize(to)
	if c.factors[from] == nil {
		c.factors[from] = make(map[string]float64)
	}
	c.factors[from][to] = value
}

// RegisterOverride adds a product-specific conversion factor
func (c *Catalog) RegisterOverride(tag ProductType, from, to string, value float64) {
	if c.overrides[tag] == nil {
		c.overrides[tag] = make(map[string]map[string]float64)
	}
	from, to = Normalize(from), Normalize(to)
	if c.overrides[tag][from] == nil {
		c.overrides[tag][from] = make(map[string]float64)
	}
	c.overrides[tag][from][to] = value
}

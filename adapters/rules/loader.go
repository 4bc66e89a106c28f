// Package rules loads conversion-rule files written in HCL. Operators
// extend the unit catalog without recompiling: extra units, pairwise
// factors, and ingredient-specific overrides.
//
// Rule file shape:
//
//	unit "shot" {
//	  family = "volume"
//	}
//
//	factor {
//	  from  = "shot"
//	  to    = "ml"
//	  value = 44.36
//	}
//
//	override "honey" {
//	  from   = "cup"
//	  to     = "g"
//	  factor = 340
//	}
package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
	"github.com/toyiyo/nimble-pnl-sub007/internal/errors"
)

// fileSchema describes the top-level blocks a rule file may contain
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "unit", LabelNames: []string{"name"}},
		{Type: "factor"},
		{Type: "override", LabelNames: []string{"tag"}},
	},
}

// Loader parses rule files and applies them to a catalog
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses one rule file and applies its rules to the catalog.
// Invalid blocks are reported as warnings; valid blocks still load.
// A syntactically broken file is a parsing error.
func (l *Loader) LoadFile(path string, catalog *units.Catalog) ([]types.Warning, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, fmt.Sprintf("cannot read rule file %s", path), err)
	}
	return l.Load(src, path, catalog)
}

// Load parses rule source and applies it to the catalog
func (l *Loader) Load(src []byte, filename string, catalog *units.Catalog) ([]types.Warning, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid rule file %s", filename), diags)
	}

	content, _, _ := file.Body.PartialContent(fileSchema)

	var warnings []types.Warning
	for _, block := range content.Blocks {
		var w *types.Warning
		switch block.Type {
		case "unit":
			w = l.applyUnit(block, catalog)
		case "factor":
			w = l.applyFactor(block, catalog)
		case "override":
			w = l.applyOverride(block, catalog)
		}
		if w != nil {
			warnings = append(warnings, *w)
		}
	}
	return warnings, nil
}

func (l *Loader) applyUnit(block *hcl.Block, catalog *units.Catalog) *types.Warning {
	name := block.Labels[0]
	family, ok := attrString(block, "family")
	if !ok {
		return blockWarning(block, "unit block needs a family attribute")
	}
	f := units.Family(family)
	switch f {
	case units.FamilyWeight, units.FamilyVolume, units.FamilyCount, units.FamilyLength:
	default:
		return blockWarning(block, fmt.Sprintf("unknown unit family %q", family))
	}
	if !catalog.RegisterUnit(name, f) {
		return blockWarning(block, fmt.Sprintf("unit %q already belongs to another family", name))
	}
	return nil
}

func (l *Loader) applyFactor(block *hcl.Block, catalog *units.Catalog) *types.Warning {
	from, okFrom := attrString(block, "from")
	to, okTo := attrString(block, "to")
	value, okValue := attrNumber(block, "value")
	if !okFrom || !okTo || !okValue || value <= 0 {
		return blockWarning(block, "factor block needs from, to, and a positive value")
	}
	catalog.RegisterFactor(from, to, value)
	return nil
}

func (l *Loader) applyOverride(block *hcl.Block, catalog *units.Catalog) *types.Warning {
	tag := block.Labels[0]
	from, okFrom := attrString(block, "from")
	to, okTo := attrString(block, "to")
	factor, okFactor := attrNumber(block, "factor")
	if !okFrom || !okTo || !okFactor || factor <= 0 {
		return blockWarning(block, "override block needs from, to, and a positive factor")
	}
	catalog.RegisterOverride(units.ProductType(tag), from, to, factor)
	return nil
}

// attrString evaluates a constant string attribute on a block body
func attrString(block *hcl.Block, name string) (string, bool) {
	v, ok := attrValue(block, name)
	if !ok || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// attrNumber evaluates a constant numeric attribute on a block body
func attrNumber(block *hcl.Block, name string) (float64, bool) {
	v, ok := attrValue(block, name)
	if !ok || v.Type() != cty.Number {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

func attrValue(block *hcl.Block, name string) (cty.Value, bool) {
	attrs, _ := block.Body.JustAttributes()
	attr, ok := attrs[name]
	if !ok {
		return cty.NilVal, false
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false
	}
	return v, true
}

func blockWarning(block *hcl.Block, message string) *types.Warning {
	return &types.Warning{
		Code:    "invalid_rule",
		Message: fmt.Sprintf("%s: %s", block.DefRange.String(), message),
	}
}

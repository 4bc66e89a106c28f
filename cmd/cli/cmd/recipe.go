// Package cmd - recipe command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyiyo/nimble-pnl-sub007/core/costing"
	"github.com/toyiyo/nimble-pnl-sub007/core/types"
)

var recipeFormat string

// recipeCmd represents the recipe command
var recipeCmd = &cobra.Command{
	Use:   "recipe [ingredients.json]",
	Short: "Cost a recipe ingredient list",
	Long: `Compute inventory impact and dollar cost for a recipe.

The input file holds a JSON array of ingredient lines:
  [{"product_id": "...", "quantity": 2, "unit": "cup",
    "product": {"name": "Flour", "uom_purchase": "bag",
                "size_value": 1000, "size_unit": "g", "cost_per_unit": 4.50}}]

Examples:
  restocost recipe ingredients.json
  restocost recipe --format json ingredients.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecipe,
}

func init() {
	recipeCmd.Flags().StringVarP(&recipeFormat, "format", "f", "cli", "output format (cli, json)")
}

func runRecipe(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading ingredients: %w", err)
	}
	var ingredients []types.RecipeIngredient
	if err := json.Unmarshal(data, &ingredients); err != nil {
		return fmt.Errorf("parsing ingredients: %w", err)
	}

	catalog, err := buildCatalog()
	if err != nil {
		return err
	}

	result := costing.NewAggregator(catalog).Aggregate(ingredients)

	if recipeFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, line := range result.Ingredients {
		fmt.Printf("%-30s %8.2f %-8s → %10.4f %-8s  $%s\n",
			line.ProductName, line.Quantity, line.Unit,
			line.InventoryDeduction, line.InventoryDeductionUnit,
			line.CostImpact.StringFixed(2))
	}
	fmt.Printf("%-30s %41s $%s\n", "Total", "", result.TotalCost.StringFixed(2))
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message)
	}
	return nil
}

// Package cmd provides the CLI commands for the costing engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyiyo/nimble-pnl-sub007/adapters/rules"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
	"github.com/toyiyo/nimble-pnl-sub007/internal/config"
	"github.com/toyiyo/nimble-pnl-sub007/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	rulesFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "restocost",
	Short: "Cost recipes and labor for a restaurant back office",
	Long: `restocost computes inventory impact and dollar cost for recipe
ingredient lists, and allocates payroll cost to calendar days.

Examples:
  restocost recipe ingredients.json
  restocost recipe --format json ingredients.json
  restocost labor --shifts shifts.json --employees employees.json --from 2025-01-01 --to 2025-01-31`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "HCL conversion-rule file")

	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(laborCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildCatalog constructs the unit catalog, merging any rule files from
// the --rules flag and the config.
func buildCatalog() (*units.Catalog, error) {
	catalog := units.NewCatalog()
	loader := rules.NewLoader()

	paths := config.Get().Rules.Paths
	if rulesFile != "" {
		paths = append(paths, rulesFile)
	}
	for _, path := range paths {
		warnings, err := loader.LoadFile(path, catalog)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message)
		}
	}
	return catalog, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("restocost version 0.1.0")
	},
}

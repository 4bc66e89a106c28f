// Package main - Entry point for the costing API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/toyiyo/nimble-pnl-sub007/adapters/rules"
	"github.com/toyiyo/nimble-pnl-sub007/api"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
	"github.com/toyiyo/nimble-pnl-sub007/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	rulesPath := flag.String("rules", "", "Optional HCL conversion-rule file")
	flag.Parse()

	catalog := units.NewCatalog()
	if *rulesPath != "" {
		warnings, err := rules.NewLoader().LoadFile(*rulesPath, catalog)
		if err != nil {
			log.Fatalf("loading rule file: %v", err)
		}
		for _, w := range warnings {
			logging.Warn("rule file warning", zap.String("detail", w.Message))
		}
	}

	apiServer := api.NewServerWithCatalog(version, catalog)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("Costing server v%s listening on %s\n", version, *addr)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}

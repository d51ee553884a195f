package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"farmmate/pkg/core/report"
	"farmmate/pkg/core/scenario"
	"farmmate/pkg/core/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file")
	persist := flag.Bool("persist", false, "save the run to the database (requires DATABASE_URL)")
	flag.Parse()

	if *scenarioPath == "" {
		log.Fatal("Error: -scenario is required.")
	}

	fmt.Println("Farm Projection Engine Starting...")

	// 1. Load scenario
	doc, err := scenario.LoadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("Scenario load failed: %v", err)
	}
	farmModel, err := doc.ToModel()
	if err != nil {
		log.Fatalf("Scenario invalid: %v", err)
	}
	fmt.Printf("[SCENARIO] Loaded %s (%d months)\n", farmModel.General.FarmName, farmModel.General.NumMonths)

	// 2. Validate inputs
	if warnings := farmModel.Validate(); len(warnings) > 0 {
		fmt.Printf("[VALIDATE] %d warning(s):\n", len(warnings))
		for _, warning := range warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}

	// 3. Calculate
	pl, bs, cf := farmModel.Calculate()
	fmt.Printf("[CALC] Produced %d months of P&L, %d balance sheets, %d cash flows\n",
		len(pl), len(bs), len(cf))

	// 4. Report
	markdown := report.AnnualSummary(farmModel)
	if !report.Validate(markdown) {
		log.Fatal("Report rendering produced invalid markdown.")
	}
	fmt.Println()
	fmt.Println(markdown)

	// 5. Optional persistence
	if *persist {
		ctx := context.Background()
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Database init failed: %v", err)
		}
		defer store.Close()

		results := store.ResultsFromModel(farmModel.General.FarmName, farmModel)
		runID, err := store.NewRunRepo().SaveRun(ctx, results)
		if err != nil {
			log.Fatalf("Run save failed: %v", err)
		}
		fmt.Printf("[STORE] Run saved as %s\n", runID)
	}

	fmt.Println("\n[Done] Projection Complete.")
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"farmmate/pkg/core/engine"
	"farmmate/pkg/core/model"
)

// RunResults is the JSONB payload persisted for one calculation run.
type RunResults struct {
	Scenario   string                           `json:"scenario"`
	MonthlyPL  []engine.PLRow                   `json:"monthly_pl"`
	MonthlyCF  []engine.CFRow                   `json:"monthly_cf"`
	MonthlyBS  []engine.BSRow                   `json:"monthly_bs"`
	MonthlyGST []engine.GSTRow                  `json:"monthly_gst"`
	AnnualPL   []engine.AnnualPLRow             `json:"annual_pl"`
	AnnualCF   []engine.AnnualCFRow             `json:"annual_cf"`
	AnnualBS   []engine.BSRow                   `json:"annual_bs"`
	StockRecon map[string][]model.StockReconRow `json:"stock_recon"`
	Disposals  []engine.DisposalResult          `json:"disposals"`
	KPIs       map[string]float64               `json:"kpis"`
}

// ResultsFromModel snapshots a calculated model into a run payload.
func ResultsFromModel(scenarioName string, m *engine.FarmModel) *RunResults {
	return &RunResults{
		Scenario:   scenarioName,
		MonthlyPL:  m.MonthlyPL,
		MonthlyCF:  m.MonthlyCF,
		MonthlyBS:  m.MonthlyBS,
		MonthlyGST: m.MonthlyGST,
		AnnualPL:   m.AnnualPL,
		AnnualCF:   m.AnnualCF,
		AnnualBS:   m.AnnualBS,
		StockRecon: m.StockRecon,
		Disposals:  m.Disposals,
		KPIs:       m.KPIs(),
	}
}

// RunRepo persists calculation runs keyed by a generated run ID.
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// SaveRun stores a run's full result set and returns its ID.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS farm_runs (
//   run_id UUID PRIMARY KEY,
//   scenario_name TEXT,
//   results_json JSONB,
//   created_at TIMESTAMPTZ
// );
func (r *RunRepo) SaveRun(ctx context.Context, results *RunResults) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run results: %w", err)
	}

	runID := uuid.NewString()
	query := `
		INSERT INTO farm_runs (run_id, scenario_name, results_json, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := pool.Exec(ctx, query, runID, results.Scenario, jsonData, time.Now()); err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return runID, nil
}

// LoadRun retrieves a run's result set by ID.
func (r *RunRepo) LoadRun(ctx context.Context, runID string) (*RunResults, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT results_json FROM farm_runs WHERE run_id = $1`

	var jsonData []byte
	if err := pool.QueryRow(ctx, query, runID).Scan(&jsonData); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no run found with id %s", runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var results RunResults
	if err := json.Unmarshal(jsonData, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run results: %w", err)
	}
	return &results, nil
}

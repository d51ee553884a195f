package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"farmmate/pkg/core/scenario"
)

// ScenarioRepo persists scenario documents keyed by name.
type ScenarioRepo struct{}

// NewScenarioRepo creates a new repository instance.
func NewScenarioRepo() *ScenarioRepo {
	return &ScenarioRepo{}
}

// Save upserts a scenario document under its name.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS farm_scenarios (
//   name TEXT PRIMARY KEY,
//   scenario_json JSONB,
//   updated_at TIMESTAMPTZ
// );
func (r *ScenarioRepo) Save(ctx context.Context, name string, doc *scenario.Document) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	query := `
		INSERT INTO farm_scenarios (name, scenario_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			scenario_json = EXCLUDED.scenario_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, name, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

// Load retrieves a scenario document by name.
func (r *ScenarioRepo) Load(ctx context.Context, name string) (*scenario.Document, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT scenario_json FROM farm_scenarios WHERE name = $1`

	var jsonData []byte
	if err := pool.QueryRow(ctx, query, name).Scan(&jsonData); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no scenario found with name %s", name)
		}
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	var doc scenario.Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario data: %w", err)
	}
	return &doc, nil
}

// List returns the stored scenario names, newest first.
func (r *ScenarioRepo) List(ctx context.Context) ([]string, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `SELECT name FROM farm_scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan scenario name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

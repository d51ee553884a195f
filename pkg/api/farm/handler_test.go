package farm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmmate/pkg/core/store"
)

const testScenario = `{
	"general": {
		"farm_name": "API Test Farm",
		"start_date": "2026-07-01",
		"num_months": 12,
		"financial_year_end_month": 6,
		"income_tax_rate": 0.275,
		"gst_rate": 0.10,
		"tax_payment_month": 9,
		"gst_reporting_period": "quarterly",
		"gst_payment_delay": 1
	},
	"opening_balances": {"cash": 10000, "share_capital": 10000},
	"crop_margins": [{
		"crop_name": "Wheat", "area_ha": 100, "yield_per_ha": 3.5,
		"price_per_unit": 350, "revenue_deductions_pct": 0.05,
		"direct_cost_per_ha": 400, "sale_month": 12
	}]
}`

func TestScenarioUploadAndRun(t *testing.T) {
	h := NewHandler()

	// Upload
	req := httptest.NewRequest("POST", "/api/farm/scenario", strings.NewReader(testScenario))
	rec := httptest.NewRecorder()
	h.HandleScenario(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Scenario upload failed: %d %s", rec.Code, rec.Body.String())
	}
	if h.Model().General.FarmName != "API Test Farm" {
		t.Errorf("Scenario not applied: %q", h.Model().General.FarmName)
	}

	// Results before any run
	rec = httptest.NewRecorder()
	h.HandleResults(rec, httptest.NewRequest("GET", "/api/farm/results", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 before first run, got %d", rec.Code)
	}

	// Run
	rec = httptest.NewRecorder()
	h.HandleRun(rec, httptest.NewRequest("POST", "/api/farm/run", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Run failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		RunID   string            `json:"run_id"`
		Results *store.RunResults `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Run response not JSON: %v", err)
	}
	if resp.Results == nil || len(resp.Results.MonthlyPL) != 12 {
		t.Fatalf("Expected 12 months of results, got %+v", resp.Results)
	}
	// No database in tests: the run is returned but not persisted.
	if resp.RunID != "" {
		t.Errorf("Expected no run ID without a database, got %q", resp.RunID)
	}

	// Results after the run
	rec = httptest.NewRecorder()
	h.HandleResults(rec, httptest.NewRequest("GET", "/api/farm/results", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 after run, got %d", rec.Code)
	}
}

func TestReportEndpoint(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest("POST", "/api/farm/scenario", strings.NewReader(testScenario))
	h.HandleScenario(httptest.NewRecorder(), req)
	h.HandleRun(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/farm/run", nil))

	rec := httptest.NewRecorder()
	h.HandleReport(rec, httptest.NewRequest("GET", "/api/farm/report", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Report failed: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "# API Test Farm") {
		t.Errorf("Expected markdown report, got %q", rec.Body.String()[:80])
	}

	rec = httptest.NewRecorder()
	h.HandleReport(rec, httptest.NewRequest("GET", "/api/farm/report?format=html", nil))
	if !strings.Contains(rec.Body.String(), "<h1") {
		t.Errorf("Expected HTML report")
	}
}

func TestValidateEndpoint(t *testing.T) {
	h := NewHandler()

	rec := httptest.NewRecorder()
	h.HandleValidate(rec, httptest.NewRequest("GET", "/api/farm/validate", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Validate failed: %d", rec.Code)
	}

	var warnings []string
	if err := json.Unmarshal(rec.Body.Bytes(), &warnings); err != nil {
		t.Fatalf("Validate response not JSON: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected clean default model, got %v", warnings)
	}
}

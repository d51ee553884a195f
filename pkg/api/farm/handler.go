package farm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"farmmate/pkg/core/engine"
	"farmmate/pkg/core/report"
	"farmmate/pkg/core/scenario"
	"farmmate/pkg/core/store"
)

// Handler holds the in-memory farm model shared by the endpoints. Persistence
// through the run repository is attempted only when the database pool has
// been initialized.
type Handler struct {
	mu      sync.Mutex
	model   *engine.FarmModel
	results *store.RunResults
	runRepo *store.RunRepo
}

// NewHandler creates a farm API handler around a fresh default model.
func NewHandler() *Handler {
	return &Handler{
		model:   engine.NewFarmModel(),
		runRepo: store.NewRunRepo(),
	}
}

// Model returns the handler's model for direct configuration (tests, CLI).
func (h *Handler) Model() *engine.FarmModel {
	return h.model
}

func cors(w http.ResponseWriter) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleScenario serves the current scenario on GET and replaces the model's
// inputs from an uploaded scenario document on POST. Uploads tolerate
// hand-edited JSON via the lenient parser.
func (h *Handler) HandleScenario(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch r.Method {
	case "GET":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(scenario.FromModel(h.model))

	case "POST":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		doc, err := scenario.Parse(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := doc.Apply(h.model); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.results = nil
		fmt.Fprintf(w, "Success: Loaded scenario %s", h.model.General.FarmName)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleRun recalculates the model and returns the full result set. The run
// is also persisted when a database pool is available; persistence failures
// are reported in the response but do not fail the run.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.model.Calculate()
	h.results = store.ResultsFromModel(h.model.General.FarmName, h.model)

	resp := struct {
		RunID    string             `json:"run_id,omitempty"`
		SaveErr  string             `json:"save_error,omitempty"`
		Warnings []string           `json:"warnings,omitempty"`
		Results  *store.RunResults  `json:"results"`
	}{
		Warnings: h.model.Validate(),
		Results:  h.results,
	}

	if store.GetPool() != nil {
		runID, err := h.runRepo.SaveRun(r.Context(), h.results)
		if err != nil {
			resp.SaveErr = err.Error()
		} else {
			resp.RunID = runID
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleResults returns the latest run's result set.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.results == nil {
		http.Error(w, "No results yet; POST /api/farm/run first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.results)
}

// HandleReconciliation returns the stock reconciliation tables.
func (h *Handler) HandleReconciliation(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.results == nil {
		http.Error(w, "No results yet; POST /api/farm/run first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.results.StockRecon)
}

// HandleReport renders the latest run as a Markdown summary, or as HTML with
// ?format=html.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.results == nil {
		http.Error(w, "No results yet; POST /api/farm/run first", http.StatusNotFound)
		return
	}

	markdown := report.AnnualSummary(h.model)
	if r.URL.Query().Get("format") == "html" {
		html, err := report.RenderHTML(markdown)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, markdown)
}

// HandleValidate returns the input validation warnings without running.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	warnings := h.model.Validate()
	if warnings == nil {
		warnings = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(warnings)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go-stat-explorer/internal/explore"
	"go-stat-explorer/internal/model"
	"go-stat-explorer/internal/query"
	"go-stat-explorer/internal/store"
	"go-stat-explorer/internal/view"
	"go-stat-explorer/pkg/utils"

	"github.com/google/uuid"
)

// App wires the explore pipeline into HTTP handlers. One App serves
// both the HTML form and the JSON API, so both share the same view
// state and counters.
type App struct {
	Orchestrator *explore.Orchestrator
	View         *view.Store
	Tracker      *explore.Tracker
	Output       *utils.OutputManager

	// HistoryEnabled guards the sqlite audit log so the App works
	// without an initialized database.
	HistoryEnabled bool
}

// ExploreRequest is the payload for POST /api/v1/explore. Question,
// description and unit only feed the export snippet.
type ExploreRequest struct {
	StatisticID string `json:"statisticId"`
	Filter      string `json:"filter"`
	Question    string `json:"question"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// runSubmission executes one full submission: orchestrate, dispatch
// into the view state, account it, render the snippet and record the
// audit trail. The statistic ID and filter are deliberately not
// validated; bad input comes back as a remote error.
func (a *App) runSubmission(ctx context.Context, spec model.StatQuerySpec, content model.SnippetContent) (string, model.ExploredData, string) {
	submissionID := uuid.New().String()
	start := time.Now()

	state := a.Orchestrator.Run(ctx, spec)
	a.View.Dispatch(state)
	a.Tracker.RecordSubmission(state, len(a.Orchestrator.Regions()), time.Since(start))

	snippet := query.Snippet(state.QueryText, content)

	if a.Output != nil {
		if _, err := a.Output.WriteSnippet(submissionID, snippet); err != nil {
			log.Printf("⚠️ Failed to write snippet for %s: %v\n", submissionID, err)
		}
	}

	if a.HistoryEnabled {
		if err := store.SaveSubmission(submissionID, spec, state); err != nil {
			log.Printf("⚠️ Failed to record submission %s: %v\n", submissionID, err)
		}
		if state.State == model.StateFailure {
			store.SaveSubmissionError(submissionID, errors.New(state.Message))
		}
	}

	return submissionID, state, snippet
}

// Explore runs a submission for the JSON API
// @Summary Explore a statistic
// @Description Query the configured example regions for a statistic and reduce the results to the common year
// @Tags explore
// @Accept json
// @Produce json
// @Param request body handler.ExploreRequest true "Statistic query and snippet annotations"
// @Success 200 {object} map[string]interface{} "Submission outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Router /explore [post]
func (a *App) Explore(w http.ResponseWriter, r *http.Request) {
	var req ExploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	spec := model.StatQuerySpec{StatisticID: req.StatisticID, Filter: req.Filter}
	content := model.SnippetContent{Question: req.Question, Description: req.Description, Unit: req.Unit}

	submissionID, state, snippet := a.runSubmission(r.Context(), spec, content)

	resp := map[string]interface{}{
		"submissionId": submissionID,
		"result":       state,
		"snippet":      snippet,
	}
	if a.Output != nil {
		resp["snippetUrl"] = a.Output.GetDownloadURL(submissionID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListRegions returns the configured example regions
// @Summary List example regions
// @Description Get the fixed example regions every submission queries
// @Tags explore
// @Produce json
// @Success 200 {array} model.RegionExample "Example regions"
// @Router /regions [get]
func (a *App) ListRegions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.Orchestrator.Regions())
}

// Metrics returns in-memory submission counters
// @Summary Get explorer metrics
// @Description Get submission counters for the lifetime of the process
// @Tags explore
// @Produce json
// @Success 200 {object} model.ExplorerMetrics "Current counters"
// @Router /metrics [get]
func (a *App) Metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.Tracker.Snapshot())
}

// ListSubmissions retrieves the submission history
// @Summary List submissions
// @Description Get all recorded submissions, newest first
// @Tags submissions
// @Produce json
// @Success 200 {array} map[string]interface{} "Recorded submissions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /submissions [get]
func (a *App) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if !a.HistoryEnabled {
		http.Error(w, "Submission history is disabled", http.StatusNotFound)
		return
	}

	submissions, err := store.ListSubmissions()
	if err != nil {
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submissions)
}

// GetSubmission retrieves one recorded submission
// @Summary Get submission
// @Description Retrieve one recorded submission including its spec and query
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]interface{} "Submission details"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Router /submissions/{id} [get]
func (a *App) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := a.submissionIDFromPath(w, r, "")
	if !ok {
		return
	}

	submission, err := store.GetSubmission(submissionID)
	if err != nil {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submission)
}

// DeleteSubmission removes one recorded submission
// @Summary Delete submission
// @Description Remove a submission and its recorded errors from the history
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /submissions/{id} [delete]
func (a *App) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := a.submissionIDFromPath(w, r, "")
	if !ok {
		return
	}

	if err := store.DeleteSubmission(submissionID); err != nil {
		http.Error(w, "Failed to delete submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"deleted": submissionID})
}

// DownloadSnippet serves the exported snippet file of a submission
// @Summary Download export snippet
// @Description Download the generated query module of a submission
// @Tags submissions
// @Produce plain
// @Param id path string true "Submission ID"
// @Success 200 {string} string "Snippet module source"
// @Failure 404 {object} map[string]interface{} "Snippet not found"
// @Router /submissions/{id}/snippet [get]
func (a *App) DownloadSnippet(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := a.submissionIDFromPath(w, r, "/snippet")
	if !ok {
		return
	}

	if a.Output == nil {
		http.Error(w, "Snippet export is disabled", http.StatusNotFound)
		return
	}

	snippet, err := os.ReadFile(a.Output.SnippetPath(submissionID))
	if err != nil {
		http.Error(w, "Snippet not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/javascript")
	w.Header().Set("Content-Disposition", "attachment; filename="+utils.SnippetFileName)
	w.Write(snippet)
}

// submissionIDFromPath extracts the submission ID between the API
// prefix and an optional suffix, writing a 400 when it is missing.
func (a *App) submissionIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/submissions/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	submissionID := strings.TrimSuffix(path[len(prefix):], suffix)
	if submissionID == "" {
		http.Error(w, "Submission ID is required", http.StatusBadRequest)
		return "", false
	}

	return submissionID, true
}

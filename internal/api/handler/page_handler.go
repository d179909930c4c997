package handler

import (
	"log"
	"net/http"

	"go-stat-explorer/internal/model"
	"go-stat-explorer/internal/query"
	"go-stat-explorer/internal/web"
)

// ExplorePage renders the explore form together with the current view
// state. The page is a pure function of the submitted field values
// and the live state slot; a fresh GET renders empty fields next to
// whatever the last submission produced.
func (a *App) ExplorePage(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, web.FormValues{})
}

// SubmitForm handles the HTML form submission: build the query, run
// the orchestrator, dispatch the outcome and re-render the page with
// the entered values intact.
func (a *App) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form payload", http.StatusBadRequest)
		return
	}

	form := web.FormValues{
		StatisticID: r.FormValue("statisticId"),
		Filter:      r.FormValue("filter"),
		Question:    r.FormValue("question"),
		Description: r.FormValue("description"),
		Unit:        r.FormValue("unit"),
	}

	spec := model.StatQuerySpec{StatisticID: form.StatisticID, Filter: form.Filter}
	content := model.SnippetContent{Question: form.Question, Description: form.Description, Unit: form.Unit}

	a.runSubmission(r.Context(), spec, content)

	a.renderPage(w, form)
}

// renderPage writes the explore page for the given field values and
// the current view state. The snippet preview appears whenever a
// query has been attempted, on success and failure alike.
func (a *App) renderPage(w http.ResponseWriter, form web.FormValues) {
	state := a.View.Current()

	snippet := ""
	if state.State != model.StateEmpty {
		content := model.SnippetContent{Question: form.Question, Description: form.Description, Unit: form.Unit}
		snippet = query.Snippet(state.QueryText, content)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderExplorePage(w, web.PageData{Form: form, State: state, Snippet: snippet}); err != nil {
		log.Printf("⚠️ Failed to render explore page: %v\n", err)
	}
}

package model

// ViewState tags the explored-data union.
type ViewState string

const (
	StateEmpty   ViewState = "empty"   // no query run yet
	StateSuccess ViewState = "success" // reduced values available
	StateFailure ViewState = "failure" // submission failed
)

// ExploredData is the single view-state record of the explorer.
// Exactly one instance is live at a time; every completed submission
// replaces it wholesale, there is no partial field carryover and no
// transition back to the empty state.
type ExploredData struct {
	State ViewState `json:"state"`

	// Success fields. Values has one row per configured region, in
	// declaration order. Year is the most recent year every region
	// has data for.
	Year     int           `json:"year,omitempty"`
	Values   []RegionValue `json:"values,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`

	// Failure field.
	Message string `json:"message,omitempty"`

	// The query document that was attempted, kept on success and
	// failure alike so the user can see what was sent.
	QueryText string `json:"queryText,omitempty"`
}

// EmptyState is the initial view state before any submission.
func EmptyState() ExploredData {
	return ExploredData{State: StateEmpty}
}

// SuccessState builds the terminal state for a reduced submission.
func SuccessState(year int, values []RegionValue, queryText string, warnings []string) ExploredData {
	return ExploredData{
		State:     StateSuccess,
		Year:      year,
		Values:    values,
		Warnings:  warnings,
		QueryText: queryText,
	}
}

// FailureState builds the terminal state for a failed submission.
func FailureState(message, queryText string) ExploredData {
	return ExploredData{
		State:     StateFailure,
		Message:   message,
		QueryText: queryText,
	}
}

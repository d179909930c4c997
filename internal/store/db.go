package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-stat-explorer/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the submission-history database and creates the
// schema if needed. The history is a server-side audit log only; the
// live view state stays in memory.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	submissionTable := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		spec TEXT,
		query TEXT,
		state TEXT,
		common_year INTEGER,
		message TEXT,
		created_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS submission_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		submission_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(submissionTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}

	return nil
}

// SaveSubmission records a completed submission and its outcome.
func SaveSubmission(id string, spec model.StatQuerySpec, state model.ExploredData) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO submissions (id, spec, query, state, common_year, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, specJSON, state.QueryText, string(state.State), state.Year, state.Message, now)
	return err
}

// SaveSubmissionError records an error alongside a submission.
func SaveSubmissionError(id string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO submission_errors (submission_id, error_message, created_at) VALUES (?, ?, ?)`,
		id, err.Error(), now)
	return e
}

// ListSubmissions returns all submissions with basic info, newest
// first.
func ListSubmissions() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, state, common_year, created_at FROM submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []map[string]interface{}
	for rows.Next() {
		var id, state string
		var commonYear int
		var createdAt time.Time
		if err := rows.Scan(&id, &state, &commonYear, &createdAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, map[string]interface{}{
			"id":         id,
			"state":      state,
			"commonYear": commonYear,
			"createdAt":  createdAt,
		})
	}
	return submissions, rows.Err()
}

// GetSubmission fetches one submission including its spec and query.
func GetSubmission(id string) (map[string]interface{}, error) {
	var specJSON, queryText, state, message string
	var commonYear int
	var createdAt time.Time

	err := db.QueryRow(`SELECT spec, query, state, common_year, message, created_at FROM submissions WHERE id = ?`, id).
		Scan(&specJSON, &queryText, &state, &commonYear, &message, &createdAt)
	if err != nil {
		return nil, err
	}

	var spec model.StatQuerySpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":         id,
		"spec":       spec,
		"query":      queryText,
		"state":      state,
		"commonYear": commonYear,
		"message":    message,
		"createdAt":  createdAt,
	}, nil
}

// DeleteSubmission removes a submission and its recorded errors.
func DeleteSubmission(id string) error {
	if _, err := db.Exec(`DELETE FROM submission_errors WHERE submission_id = ?`, id); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM submissions WHERE id = ?`, id)
	return err
}

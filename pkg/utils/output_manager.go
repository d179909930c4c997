package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// SnippetFileName is the file each submission's export snippet is
// written to inside its submission directory.
const SnippetFileName = "query.js"

// OutputManager handles snippet file organization and path management.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateSubmissionDir creates a UUID-based directory for a
// submission's exported files.
func (om *OutputManager) CreateSubmissionDir(submissionID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, submissionID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create submission output directory: %w", err)
	}

	return dir, nil
}

// SnippetPath returns the full path of a submission's snippet file.
func (om *OutputManager) SnippetPath(submissionID string) string {
	return filepath.Join(om.BaseOutputDir, submissionID, SnippetFileName)
}

// WriteSnippet stores the export snippet for a submission and returns
// the path it was written to.
func (om *OutputManager) WriteSnippet(submissionID, snippet string) (string, error) {
	if _, err := om.CreateSubmissionDir(submissionID); err != nil {
		return "", err
	}

	path := om.SnippetPath(submissionID)
	if err := os.WriteFile(path, []byte(snippet), 0644); err != nil {
		return "", fmt.Errorf("failed to write snippet file: %w", err)
	}

	return path, nil
}

// GetDownloadURL generates a download URL for a submission's snippet.
func (om *OutputManager) GetDownloadURL(submissionID string) string {
	return fmt.Sprintf("/api/v1/submissions/%s/snippet", submissionID)
}

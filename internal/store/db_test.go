package store

import (
	"errors"
	"path/filepath"
	"testing"

	"go-stat-explorer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "explorer-test.db")))
}

func TestSaveAndGetSubmission(t *testing.T) {
	initTestDB(t)

	spec := model.StatQuerySpec{StatisticID: "BEVSTD", Filter: "statistics: R12411"}
	state := model.SuccessState(2019, []model.RegionValue{{Name: "Bochum", Value: 12}}, "query {}", nil)

	require.NoError(t, SaveSubmission("sub-1", spec, state))

	got, err := GetSubmission("sub-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", got["id"])
	assert.Equal(t, "success", got["state"])
	assert.Equal(t, 2019, got["commonYear"])
	assert.Equal(t, "query {}", got["query"])
	assert.Equal(t, spec, got["spec"])
}

func TestListSubmissions(t *testing.T) {
	initTestDB(t)

	spec := model.StatQuerySpec{StatisticID: "AI0201"}
	require.NoError(t, SaveSubmission("sub-a", spec, model.FailureState("boom", "query {}")))
	require.NoError(t, SaveSubmission("sub-b", spec, model.SuccessState(2018, nil, "query {}", nil)))

	submissions, err := ListSubmissions()
	require.NoError(t, err)
	assert.Len(t, submissions, 2)
}

func TestSaveSubmissionError(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveSubmissionError("sub-1", errors.New("remote unavailable")))
	// nil errors are a no-op
	require.NoError(t, SaveSubmissionError("sub-1", nil))
}

func TestDeleteSubmission(t *testing.T) {
	initTestDB(t)

	spec := model.StatQuerySpec{StatisticID: "BEVSTD"}
	require.NoError(t, SaveSubmission("sub-1", spec, model.FailureState("boom", "query {}")))
	require.NoError(t, SaveSubmissionError("sub-1", errors.New("boom")))

	require.NoError(t, DeleteSubmission("sub-1"))

	_, err := GetSubmission("sub-1")
	assert.Error(t, err)
}

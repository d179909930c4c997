package explore

import (
	"context"
	"errors"
	"testing"

	"go-stat-explorer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRegions = []model.RegionExample{
	{DisplayName: "Bochum", RegionCode: "05911"},
	{DisplayName: "Leipzig", RegionCode: "14713"},
}

// fakeFetcher resolves per region code from fixed tables.
type fakeFetcher struct {
	results map[string]*model.RegionSeriesResult
	errs    map[string]error
}

func (f *fakeFetcher) RegionSeries(_ context.Context, _, regionCode string) (*model.RegionSeriesResult, error) {
	if err, ok := f.errs[regionCode]; ok {
		return nil, err
	}
	if res, ok := f.results[regionCode]; ok {
		copied := *res
		return &copied, nil
	}
	return nil, errors.New("unknown region")
}

func TestOrchestratorSuccess(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string]*model.RegionSeriesResult{
		"05911": {DisplayName: "Bochum", Series: []model.YearValue{
			{Year: 2018, Value: 10},
			{Year: 2019, Value: 12},
		}},
		"14713": {DisplayName: "Leipzig", Series: []model.YearValue{
			{Year: 2017, Value: 5},
			{Year: 2019, Value: 9},
		}},
	}}

	o := NewOrchestrator(fetcher, testRegions)
	state := o.Run(context.Background(), model.StatQuerySpec{StatisticID: "BEVSTD"})

	require.Equal(t, model.StateSuccess, state.State)
	assert.Equal(t, 2019, state.Year)
	assert.Equal(t, []model.RegionValue{
		{Name: "Bochum", Value: 12},
		{Name: "Leipzig", Value: 9},
	}, state.Values)
	assert.Contains(t, state.QueryText, "stat: BEVSTD")
	assert.Empty(t, state.Message)
}

func TestOrchestratorEmptySeriesFailsNamingRegion(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string]*model.RegionSeriesResult{
		"05911": {DisplayName: "Bochum", Series: []model.YearValue{{Year: 2019, Value: 10}}},
		"14713": {DisplayName: "Leipzig", Series: nil},
	}}

	o := NewOrchestrator(fetcher, testRegions)
	state := o.Run(context.Background(), model.StatQuerySpec{StatisticID: "BEVSTD"})

	require.Equal(t, model.StateFailure, state.State)
	assert.Contains(t, state.Message, "Leipzig")
	assert.Contains(t, state.QueryText, "stat: BEVSTD")
	assert.Empty(t, state.Values)
}

func TestOrchestratorJoinsTransportErrorMessages(t *testing.T) {
	fetcher := &fakeFetcher{
		results: map[string]*model.RegionSeriesResult{
			"05911": {DisplayName: "Bochum", Series: []model.YearValue{{Year: 2019, Value: 10}}},
		},
		errs: map[string]error{
			"14713": &model.TransportError{Messages: []string{
				"Cannot query field \"BVESTD\"",
				"Unknown argument \"bogus\"",
			}},
		},
	}

	o := NewOrchestrator(fetcher, testRegions)
	state := o.Run(context.Background(), model.StatQuerySpec{StatisticID: "BVESTD"})

	require.Equal(t, model.StateFailure, state.State)
	assert.Equal(t, "Cannot query field \"BVESTD\"\nUnknown argument \"bogus\"", state.Message)
	assert.NotEmpty(t, state.QueryText)
}

func TestOrchestratorSurfacesRawFailureMessage(t *testing.T) {
	fetcher := &fakeFetcher{
		results: map[string]*model.RegionSeriesResult{
			"05911": {DisplayName: "Bochum", Series: []model.YearValue{{Year: 2019, Value: 10}}},
		},
		errs: map[string]error{
			"14713": errors.New("connection refused"),
		},
	}

	o := NewOrchestrator(fetcher, testRegions)
	state := o.Run(context.Background(), model.StatQuerySpec{StatisticID: "BEVSTD"})

	require.Equal(t, model.StateFailure, state.State)
	assert.Equal(t, "connection refused", state.Message)
}

// A blank remote name falls back to the configured display name, in
// results and in empty-series errors alike.
func TestOrchestratorFallsBackToConfiguredName(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string]*model.RegionSeriesResult{
		"05911": {DisplayName: "", Series: []model.YearValue{{Year: 2019, Value: 1}}},
		"14713": {DisplayName: "", Series: nil},
	}}

	o := NewOrchestrator(fetcher, testRegions)
	state := o.Run(context.Background(), model.StatQuerySpec{StatisticID: "BEVSTD"})

	require.Equal(t, model.StateFailure, state.State)
	assert.Contains(t, state.Message, "Leipzig")
}

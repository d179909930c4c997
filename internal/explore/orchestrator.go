package explore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go-stat-explorer/internal/model"
	"go-stat-explorer/internal/query"
)

// Fetcher fetches one region's series for a query document.
type Fetcher interface {
	RegionSeries(ctx context.Context, queryText, regionCode string) (*model.RegionSeriesResult, error)
}

// Orchestrator runs one submission: build the query, fan out one call
// per configured region, join all results and reduce them to a view
// state. It keeps no per-submission state, so concurrent submissions
// simply race on the dispatch step (last one wins, in-flight calls of
// an older submission are not cancelled).
type Orchestrator struct {
	fetcher Fetcher
	regions []model.RegionExample
}

func NewOrchestrator(fetcher Fetcher, regions []model.RegionExample) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, regions: regions}
}

// Run executes a full submission and always returns a terminal view
// state. Failures carry the attempted query text so the user can see
// what was sent.
func (o *Orchestrator) Run(ctx context.Context, spec model.StatQuerySpec) model.ExploredData {
	queryText := query.Build(spec)
	fmt.Printf("🔎 Exploring statistic %q across %d regions\n", spec.StatisticID, len(o.regions))

	results := make([]*model.RegionSeriesResult, len(o.regions))
	errs := make([]error, len(o.regions))

	var wg sync.WaitGroup
	for i, region := range o.regions {
		wg.Add(1)
		go func(i int, region model.RegionExample) {
			defer wg.Done()
			res, err := o.fetcher.RegionSeries(ctx, queryText, region.RegionCode)
			if err != nil {
				errs[i] = err
				return
			}
			if res.DisplayName == "" {
				res.DisplayName = region.DisplayName
			}
			results[i] = res
		}(i, region)
	}
	wg.Wait() // join-all, inspect errors after

	for _, err := range errs {
		if err != nil {
			return model.FailureState(failureMessage(err), queryText)
		}
	}

	for i, res := range results {
		if len(res.Series) == 0 {
			err := &model.EmptySeriesError{Region: regionName(res, o.regions[i])}
			return model.FailureState(err.Error(), queryText)
		}
	}

	year, values, warnings := Reduce(results)
	return model.SuccessState(year, values, queryText, warnings)
}

// Regions returns the configured example regions in declaration order.
func (o *Orchestrator) Regions() []model.RegionExample {
	return o.regions
}

// failureMessage joins the structured messages of a transport error
// with newlines; anything else surfaces as its raw message.
func failureMessage(err error) string {
	var terr *model.TransportError
	if errors.As(err, &terr) {
		return strings.Join(terr.Messages, "\n")
	}
	return err.Error()
}

func regionName(res *model.RegionSeriesResult, configured model.RegionExample) string {
	if res.DisplayName != "" {
		return res.DisplayName
	}
	return configured.DisplayName
}

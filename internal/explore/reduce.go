package explore

import (
	"fmt"
	"log"
	"time"

	"go-stat-explorer/internal/model"
)

// Reduce computes the most recent year every region has data for and
// extracts each region's value for that year. The accumulator starts
// from the current calendar year, so the common year can never exceed
// it. A region without an entry for the common year reports value 0
// and a warning; that never fails the submission.
//
// Rows come back in the same order the regions were passed in.
func Reduce(results []*model.RegionSeriesResult) (int, []model.RegionValue, []string) {
	commonYear := time.Now().Year()
	for _, res := range results {
		last := 0
		for _, p := range res.Series {
			if p.Year > last {
				last = p.Year
			}
		}
		if last < commonYear {
			commonYear = last
		}
	}

	values := make([]model.RegionValue, 0, len(results))
	var warnings []string

	for _, res := range results {
		value, found := 0.0, false
		for _, p := range res.Series {
			if p.Year == commonYear {
				value = p.Value
				found = true
				break
			}
		}
		if !found {
			warning := fmt.Sprintf("region %s has no value for %d, using 0", res.DisplayName, commonYear)
			log.Printf("⚠️ %s\n", warning)
			warnings = append(warnings, warning)
		}
		values = append(values, model.RegionValue{Name: res.DisplayName, Value: value})
	}

	return commonYear, values, warnings
}

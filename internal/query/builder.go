package query

import (
	"fmt"

	"go-stat-explorer/internal/model"
)

// Build renders the GraphQL document for one statistic. The document
// takes a single $nuts3 parameter and requests the region's name plus
// the statistic's (year, value) series under the alias "stat".
//
// A non-empty filter is inserted verbatim in parentheses right after
// the statistic name; an empty filter omits the clause entirely.
// Nothing is escaped or validated, a broken filter produces a broken
// document and comes back as a remote error.
func Build(spec model.StatQuerySpec) string {
	stat := spec.StatisticID
	if spec.Filter != "" {
		stat = fmt.Sprintf("%s(%s)", stat, spec.Filter)
	}

	return fmt.Sprintf(`query ($nuts3: String!) {
  region(id: $nuts3) {
    name
    stat: %s {
      year
      value
    }
  }
}`, stat)
}

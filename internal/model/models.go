package model

// StatQuerySpec holds the two inputs that shape a statistic query.
// A fresh spec is built from the form values on every submission and
// never mutated afterwards. Neither field is validated or escaped;
// malformed input yields a malformed query and surfaces as a remote
// service error.
type StatQuerySpec struct {
	StatisticID string `json:"statisticId"`
	Filter      string `json:"filter,omitempty"`
}

// RegionExample is one of the fixed preview regions the explorer
// queries on every submission.
type RegionExample struct {
	DisplayName string `json:"displayName"`
	RegionCode  string `json:"regionCode"` // NUTS-3 code, bound to $nuts3
}

// YearValue is a single point of a regional time series.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// RegionSeriesResult is the remote response for one region within one
// submission. It only lives until the submission's reduction is done.
type RegionSeriesResult struct {
	DisplayName string
	Series      []YearValue
}

// RegionValue is one reduced row of a successful submission.
type RegionValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SnippetContent carries the three annotation fields that go into the
// export snippet. They are never sent to the remote service.
type SnippetContent struct {
	Question    string `json:"question"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// DefaultRegions is the fixed example-region set used for previews.
// Declaration order here is the order of the reduced result rows.
var DefaultRegions = []RegionExample{
	{DisplayName: "Bochum", RegionCode: "05911"},
	{DisplayName: "Leipzig", RegionCode: "14713"},
}

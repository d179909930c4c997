package query

import (
	"testing"

	"go-stat-explorer/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		spec        model.StatQuerySpec
		contains    []string
		notContains []string
	}{
		{
			name: "no filter omits the clause",
			spec: model.StatQuerySpec{StatisticID: "BEVSTD"},
			contains: []string{
				"query ($nuts3: String!)",
				"region(id: $nuts3)",
				"stat: BEVSTD {",
				"year",
				"value",
			},
			notContains: []string{"BEVSTD("},
		},
		{
			name: "filter appears verbatim in parentheses",
			spec: model.StatQuerySpec{StatisticID: "BEVSTD", Filter: "statistics: R12411"},
			contains: []string{
				"stat: BEVSTD(statistics: R12411) {",
			},
		},
		{
			name: "malformed filter passes through unfixed",
			spec: model.StatQuerySpec{StatisticID: "BEVSTD", Filter: "oops((("},
			contains: []string{
				"stat: BEVSTD(oops((() {",
			},
		},
		{
			name: "statistic id is not validated",
			spec: model.StatQuerySpec{StatisticID: "not a name"},
			contains: []string{
				"stat: not a name {",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.spec)
			for _, want := range tt.contains {
				assert.Contains(t, doc, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, doc, unwanted)
			}
		})
	}
}

func TestBuildIsPure(t *testing.T) {
	spec := model.StatQuerySpec{StatisticID: "AI0201", Filter: "year: 2019"}
	assert.Equal(t, Build(spec), Build(spec))
}

package query

import (
	"fmt"

	"go-stat-explorer/internal/model"
)

// Snippet renders the export-ready module source: the attempted query
// wrapped in a gql tag plus a content object with the three annotation
// fields. It is a verbatim string template, not a compiled artifact;
// the content fields are plain double-quoted literals and embedded
// quotes are not escaped (known limitation, kept on purpose).
func Snippet(queryText string, content model.SnippetContent) string {
	return fmt.Sprintf(`import gql from "graphql-tag"

export default {
  query: gql`+"`"+`
%s
  `+"`"+`,
  content: {
    question: "%s",
    description: "%s",
    unit: "%s"
  }
}
`, queryText, content.Question, content.Description, content.Unit)
}

package model

import (
	"fmt"
	"strings"
)

// TransportError is a remote-service failure carrying the structured
// error messages of a GraphQL response, one entry per error. The
// variant is decided once at the client boundary; callers join the
// messages with newlines for display.
type TransportError struct {
	Messages []string
}

func (e *TransportError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// EmptySeriesError marks a region whose response carried no data
// points at all. It fails the whole submission.
type EmptySeriesError struct {
	Region string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("region %s returned an empty series", e.Region)
}

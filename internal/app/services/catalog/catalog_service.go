// Package catalog resolves album seeds against the public catalog: best
// effort matching, artwork and preview lookups, and raw keyword search.
// Lookups are memoized, including negative outcomes, so a fictitious album
// does not trigger a network call per verification round.
package catalog

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Lookup results, positive and negative, stay cached for this long.
const cacheTTL = 6 * time.Hour

const (
	matchResultLimit   = 5
	previewResultLimit = 8
)

type Service struct {
	tracer       trace.Tracer
	client       SearchClient
	releaseCache Cache
	previewCache Cache
}

func New(
	tracer trace.Tracer,
	client SearchClient,
	releaseCache Cache,
	previewCache Cache,
) Service {
	return Service{
		tracer:       tracer,
		client:       client,
		releaseCache: releaseCache,
		previewCache: previewCache,
	}
}

var (
	ErrEmptyQuery   = fmt.Errorf("query is required")
	ErrSearchFailed = fmt.Errorf("catalog search failed")
)

// Package recommend runs the recommendation verification loop: every
// model-suggested album must be confirmed against the catalog before it
// reaches the user, without repeating anything the user has already seen.
package recommend

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

const (
	// Generation rounds before giving up on the model. Unbounded looping
	// would hang requests on obscure prompts.
	maxRounds = 3

	// Below this many verified albums the direct keyword search kicks in.
	fallbackThreshold = 5

	fallbackSearchLimit = 12

	defaultCount = 5
)

type Service struct {
	tracer    trace.Tracer
	generator Generator
	catalog   Catalog
	seenStore SeenStore
}

func New(
	tracer trace.Tracer,
	generator Generator,
	catalog Catalog,
	seenStore SeenStore,
) Service {
	return Service{
		tracer:    tracer,
		generator: generator,
		catalog:   catalog,
		seenStore: seenStore,
	}
}

// ErrNoAlbumsVerified means neither the model rounds nor the keyword
// fallback produced a single verifiable album. Distinct from a short
// list, which is returned as a partial success.
var ErrNoAlbumsVerified = fmt.Errorf("unable to verify any real albums")

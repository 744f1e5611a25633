// Package generate turns free-text prompts into structured album
// candidates and companion copy via a generative text model, tolerating
// the formatting noise such models wrap around JSON.
package generate

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

type Service struct {
	tracer trace.Tracer
	model  TextModel
}

func New(tracer trace.Tracer, model TextModel) Service {
	return Service{
		tracer: tracer,
		model:  model,
	}
}

var (
	// ErrInvalidResponse marks model output that could not be parsed even
	// after cleanup. Distinct from transport failures: retrying the same
	// round cannot help, the caller has to decide what to do.
	ErrInvalidResponse = fmt.Errorf("invalid model response")
	ErrModelFailure    = fmt.Errorf("model request failed")
)

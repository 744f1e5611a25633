package recommend

import (
	"go.opentelemetry.io/otel/trace"
)

type RecommendHandler struct {
	tracer           trace.Tracer
	recommendService RecommendService
}

func New(
	tracer trace.Tracer,
	recommendService RecommendService,
) *RecommendHandler {
	return &RecommendHandler{
		tracer:           tracer,
		recommendService: recommendService,
	}
}

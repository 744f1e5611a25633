package lookup

import (
	"go.opentelemetry.io/otel/trace"
)

type LookupHandler struct {
	tracer         trace.Tracer
	catalogService CatalogService
	detailsService DetailsService
}

func New(
	tracer trace.Tracer,
	catalogService CatalogService,
	detailsService DetailsService,
) *LookupHandler {
	return &LookupHandler{
		tracer:         tracer,
		catalogService: catalogService,
		detailsService: detailsService,
	}
}

package mocks

import (
	"forest/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

// NewOtel returns an Otel whose spans are never recorded.
func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}

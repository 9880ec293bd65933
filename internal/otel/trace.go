package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/farmasystem/pos/internal/common"
)

var Tracer = otel.Tracer(common.AppPosService)

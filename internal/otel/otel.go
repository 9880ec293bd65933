package otel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/farmasystem/pos/internal/config"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel/metric"
	"github.com/farmasystem/pos/internal/otel/trace"
)

type ShutdownFunc func(context.Context) error

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func InitOtelSdk(
	c context.Context,
	serviceName string,
	cfg config.Otel,
) (shutdownFuncs []ShutdownFunc, err error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "InitOtelSdk").
		Logger()

	endpoint := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	logger = logger.With().Str(log.KeyProcess, "initializing propagator").Logger()
	logger.Info().Msg("initializing otel propagator")
	otel.SetTextMapPropagator(newPropagator())
	logger.Info().Msg("initialized otel propagator")

	logger = logger.With().Str(log.KeyProcess, "initializing tracerProvider").Logger()
	logger.Info().Msg("initializing otel tracerProvider")
	c = logger.WithContext(c)
	tracerProvider, err := trace.InitTracerProvider(c, endpoint, serviceName)
	if err != nil {
		err = fmt.Errorf("failed initializing tracerProvider with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	otel.SetTracerProvider(tracerProvider)
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	logger.Info().Msg("initialized otel tracerProvider")

	logger = logger.With().Str(log.KeyProcess, "initializing meterProvider").Logger()
	logger.Info().Msg("initializing otel meterProvider")
	meterProvider, err := metric.InitMeterProvider(c, endpoint)
	if err != nil {
		err = fmt.Errorf("failed initializing meterProvider with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return shutdownFuncs, err
	}
	otel.SetMeterProvider(meterProvider)
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	logger.Info().Msg("initialized otel meterProvider")

	return shutdownFuncs, nil
}

func ShutdownOtel(c context.Context, shutdownFuncs []ShutdownFunc) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ShutdownOtel").
		Logger()

	var wg sync.WaitGroup
	errs := make([]error, len(shutdownFuncs))
	for i, shutdown := range shutdownFuncs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = shutdown(c)
		}()
	}
	wg.Wait()

	err := errors.Join(errs...)
	if err != nil {
		err = fmt.Errorf("failed shutting down otel with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}

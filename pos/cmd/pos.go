package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/farmasystem/pos/internal/backend"
	"github.com/farmasystem/pos/internal/common"
	"github.com/farmasystem/pos/internal/config"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/infra"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/middleware"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/catalog"
	"github.com/farmasystem/pos/pos/internal/controller"
	"github.com/farmasystem/pos/pos/internal/reports"
	"github.com/farmasystem/pos/pos/internal/service"
	"github.com/farmasystem/pos/pos/internal/users"
)

func RunPosService(c context.Context) {
	c, span := otel.Tracer.Start(c, "RunPosService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, common.AppPosService).
		Str(log.KeyTag, "main RunPosService").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, common.AppPosService)
	logger = logger.With().Any(log.KeyConfig, cfg).Logger()
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	otelShutdowns, err := otel.InitOtelSdk(c, common.AppPosService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		c = logger.WithContext(c)
		err = otel.ShutdownOtel(c, otelShutdowns)
		if err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
	logger.Info().Msg("initializing cache")
	c = logger.WithContext(c)
	cache := infra.NewCacheClient(c, cfg.Cache)
	defer func() {
		logger = logger.With().Str(log.KeyProcess, "shutting down cache").Logger()
		logger.Info().Msg("shutting down cache")
		err = cache.Close()
		if err != nil {
			err = fmt.Errorf("failed shutting down cache with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown cache")
	}()
	logger.Info().Msg("initialized cache")

	logger = logger.With().Str(log.KeyProcess, "initializing services").Logger()
	logger.Info().Msg("initializing services")
	backendClient := backend.NewClient(cfg.Backend)
	catalogService := catalog.NewService(backendClient, cache, cfg.Cache.CatalogTTL)
	posService := service.NewPosService(service.NewSessions(), catalogService, backendClient)
	reportService := reports.NewService(backendClient)
	userService := users.NewService(backendClient)
	logger.Info().Msg("initialized services")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(common.AppPosService),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(middleware.Auth)
	controller.AttachPosController(api, posService)
	controller.AttachCatalogController(api, catalogService)
	controller.AttachReportController(api, reportService)
	controller.AttachUserController(api, userService)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	httpServer := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger = logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", httpServer.Addr)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("error=%w occured while server is running", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())

			c = logger.WithContext(c)
			if err := otel.ShutdownOtel(c, otelShutdowns); err != nil {
				err = fmt.Errorf("failed shutting down otel with error=%w", err)
				inErrors.HandleError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				return
			}
			return
		}
		logger.Info().Msg("shutdown server")
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutting down http server").Logger()
	logger.Info().Msg("received interuption signal shutting down")
	err = httpServer.Shutdown(c)
	if err != nil {
		err = fmt.Errorf("failed shutting down http server with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("shutdown http server")
}

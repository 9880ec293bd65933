package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/reports"
)

type ReportController struct {
	service *reports.Service
}

func AttachReportController(mux *mux.Router, service *reports.Service) {
	controller := ReportController{service: service}

	router := mux.PathPrefix("/reports").Subrouter()
	router.HandleFunc("/kpi", controller.FindKpi).Methods(http.MethodGet)
	router.HandleFunc("/chart", controller.FindSalesChart).Methods(http.MethodGet)
	router.HandleFunc("/top-products", controller.FindTopProducts).Methods(http.MethodGet)
}

func (t ReportController) report(
	w http.ResponseWriter,
	r *http.Request,
	tag string,
	find func(context.Context) (interface{}, error),
) {
	c, span := otel.Tracer.Start(r.Context(), tag)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, tag).
		Str(log.KeyProcess, "fetching report").
		Logger()

	logger.Info().Msg("fetching report")
	c = logger.WithContext(c)
	data, err := find(c)
	if err != nil {
		err = fmt.Errorf("failed fetching report with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("fetched report")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "fetched report",
		"data":       data,
	})
}

func (t ReportController) FindKpi(w http.ResponseWriter, r *http.Request) {
	t.report(w, r, "ReportController FindKpi", func(c context.Context) (interface{}, error) {
		return t.service.FindKpi(c)
	})
}

func (t ReportController) FindSalesChart(w http.ResponseWriter, r *http.Request) {
	t.report(w, r, "ReportController FindSalesChart", func(c context.Context) (interface{}, error) {
		return t.service.FindSalesChart(c)
	})
}

func (t ReportController) FindTopProducts(w http.ResponseWriter, r *http.Request) {
	t.report(w, r, "ReportController FindTopProducts", func(c context.Context) (interface{}, error) {
		return t.service.FindTopProducts(c)
	})
}

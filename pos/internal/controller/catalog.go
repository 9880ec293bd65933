package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/catalog"
)

type CatalogController struct {
	service *catalog.Service
}

func AttachCatalogController(mux *mux.Router, service *catalog.Service) {
	controller := CatalogController{service: service}

	router := mux.PathPrefix("/products").Subrouter()
	router.HandleFunc("", controller.FindProducts).Methods(http.MethodGet)
}

func (t CatalogController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProducts")
	defer span.End()

	query := r.URL.Query().Get("query")
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProducts").
		Str(log.KeyQuery, query).
		Str(log.KeyProcess, "finding products").
		Logger()

	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := t.service.FindProducts(c, query)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Int(log.KeyProductCount, len(products)).Msg("found products")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found products",
		"data":       products,
	})
}

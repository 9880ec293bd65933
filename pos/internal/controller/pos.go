package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/service"
	"github.com/farmasystem/pos/pos/pkg/request"
)

type PosController struct {
	service *service.PosService
}

func AttachPosController(mux *mux.Router, service *service.PosService) {
	controller := PosController{service: service}

	router := mux.PathPrefix("/sessions").Subrouter()
	router.HandleFunc("", controller.CreateSession).Methods(http.MethodPost)
	router.HandleFunc("/{sessionId}", controller.RemoveSession).Methods(http.MethodDelete)
	router.HandleFunc("/{sessionId}/cart", controller.FindCart).Methods(http.MethodGet)
	router.HandleFunc("/{sessionId}/cart", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/{sessionId}/cart/items", controller.AddCartItem).
		Methods(http.MethodPost)
	router.HandleFunc("/{sessionId}/cart/items/{productId}", controller.UpdateCartItem).
		Methods(http.MethodPut)
	router.HandleFunc("/{sessionId}/cart/items/{productId}", controller.RemoveCartItem).
		Methods(http.MethodDelete)
	router.HandleFunc("/{sessionId}/checkout", controller.OpenCheckout).
		Methods(http.MethodPost)
	router.HandleFunc("/{sessionId}/checkout", controller.FindCheckout).
		Methods(http.MethodGet)
	router.HandleFunc("/{sessionId}/checkout", controller.CancelCheckout).
		Methods(http.MethodDelete)
	router.HandleFunc("/{sessionId}/checkout/confirm", controller.ConfirmSale).
		Methods(http.MethodPost)

	mux.HandleFunc("/customers/{documentId}", controller.LookupBuyer).
		Methods(http.MethodGet)
}

func sessionIdFromRequest(r *http.Request) (uuid.UUID, error) {
	pathValues := mux.Vars(r)
	sessionId, err := uuid.Parse(pathValues["sessionId"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("sessionId=%s: %w", pathValues["sessionId"], inErrors.ErrSessionNotFound)
	}
	return sessionId, nil
}

func (t PosController) CreateSession(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController CreateSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController CreateSession").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "creating session").Logger()
	logger.Info().Msg("creating session")
	c = logger.WithContext(c)
	session := t.service.CreateSession(c)
	logger.Info().Msg("created session")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "session created",
		"data":       session,
	})
}

func (t PosController) RemoveSession(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController RemoveSession")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController RemoveSession").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "removing session").
		Logger()
	logger.Info().Msg("removing session")
	c = logger.WithContext(c)
	t.service.RemoveSession(c, sessionId)
	logger.Info().Msg("removed session")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "session removed",
	})
}

func (t PosController) FindCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController FindCart").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "finding cart").
		Logger()
	c = logger.WithContext(c)
	cart, err := t.service.FindCart(c, sessionId)
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found cart",
		"data":       cart,
	})
}

func (t PosController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController AddCartItem").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeySessionID, sessionId.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.AddCartItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	if reqBody.Quantity == 0 {
		reqBody.Quantity = 1
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	cart, err := t.service.AddCartItem(c, sessionId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("added cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "added cart item",
		"data":       cart,
	})
}

func (t PosController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController UpdateCartItem").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	pathValues := mux.Vars(r)
	productId, err := strconv.ParseInt(pathValues["productId"], 10, 64)
	if err != nil {
		err = fmt.Errorf("productId=%s: %w", pathValues["productId"], inErrors.ErrInvalidProduct)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Int64(log.KeyProductID, productId).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.UpdateCartItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating cart item").Logger()
	logger.Info().Msg("updating cart item")
	c = logger.WithContext(c)
	cart, err := t.service.UpdateCartItem(c, sessionId, productId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "updated cart item",
		"data":       cart,
	})
}

func (t PosController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController RemoveCartItem").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	pathValues := mux.Vars(r)
	productId, err := strconv.ParseInt(pathValues["productId"], 10, 64)
	if err != nil {
		err = fmt.Errorf("productId=%s: %w", pathValues["productId"], inErrors.ErrInvalidProduct)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Int64(log.KeyProductID, productId).
		Str(log.KeyProcess, "removing cart item").
		Logger()
	logger.Info().Msg("removing cart item")
	c = logger.WithContext(c)
	cart, err := t.service.RemoveCartItem(c, sessionId, productId)
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("removed cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "removed cart item",
		"data":       cart,
	})
}

func (t PosController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController ClearCart").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "clearing cart").
		Logger()
	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	cart, err := t.service.ClearCart(c, sessionId)
	if err != nil {
		err = fmt.Errorf("failed clearing cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("cleared cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cleared cart",
		"data":       cart,
	})
}

func (t PosController) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController OpenCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController OpenCheckout").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "opening checkout").
		Logger()
	logger.Info().Msg("opening checkout")
	c = logger.WithContext(c)
	checkout, err := t.service.OpenCheckout(c, sessionId)
	if err != nil {
		err = fmt.Errorf("failed opening checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("opened checkout")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "opened checkout",
		"data":       checkout,
	})
}

func (t PosController) FindCheckout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController FindCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController FindCheckout").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "finding checkout").
		Logger()
	c = logger.WithContext(c)
	checkout, err := t.service.FindCheckout(c, sessionId)
	if err != nil {
		err = fmt.Errorf("failed finding checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found checkout",
		"data":       checkout,
	})
}

func (t PosController) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController CancelCheckout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController CancelCheckout").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeySessionID, sessionId.String()).
		Str(log.KeyProcess, "cancelling checkout").
		Logger()
	logger.Info().Msg("cancelling checkout")
	c = logger.WithContext(c)
	checkout, err := t.service.CancelCheckout(c, sessionId)
	if err != nil {
		err = fmt.Errorf("failed cancelling checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("cancelled checkout")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cancelled checkout",
		"data":       checkout,
	})
}

func (t PosController) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController ConfirmSale")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController ConfirmSale").
		Logger()

	sessionId, err := sessionIdFromRequest(r)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeySessionID, sessionId.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.ConfirmSale{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "confirming sale").Logger()
	logger.Info().Msg("confirming sale")
	c = logger.WithContext(c)
	checkout, err := t.service.ConfirmSale(c, sessionId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed confirming sale with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
			"data":       checkout,
		})
		return
	}
	logger.Info().
		Str(log.KeyCheckoutState, checkout.State).
		Msg("confirmed sale")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "sale confirmation finished",
		"data":       checkout,
	})
}

func (t PosController) LookupBuyer(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PosController LookupBuyer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PosController LookupBuyer").
		Logger()

	pathValues := mux.Vars(r)
	documentId := pathValues["documentId"]
	logger = logger.With().
		Str(log.KeyDocumentID, documentId).
		Str(log.KeyProcess, "looking up buyer").
		Logger()
	logger.Info().Msg("looking up buyer")
	c = logger.WithContext(c)
	buyer, err := t.service.LookupBuyer(c, documentId)
	if err != nil {
		err = fmt.Errorf("failed looking up buyer with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("looked up buyer")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found buyer",
		"data":       buyer,
	})
}

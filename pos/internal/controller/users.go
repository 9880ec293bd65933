package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/internal/users"
	"github.com/farmasystem/pos/pos/pkg/request"
)

type UserController struct {
	service *users.Service
}

func AttachUserController(mux *mux.Router, service *users.Service) {
	controller := UserController{service: service}

	router := mux.PathPrefix("/users").Subrouter()
	router.HandleFunc("", controller.FindUsers).Methods(http.MethodGet)
	router.HandleFunc("", controller.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/{userId}", controller.DeleteUser).Methods(http.MethodDelete)
}

func (t UserController) FindUsers(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController FindUsers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController FindUsers").
		Str(log.KeyProcess, "finding users").
		Logger()

	logger.Info().Msg("finding users")
	c = logger.WithContext(c)
	found, err := t.service.FindUsers(c)
	if err != nil {
		err = fmt.Errorf("failed finding users with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found users")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found users",
		"data":       found,
	})
}

func (t UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController CreateUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController CreateUser").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.CreateUser{}
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

	logger = logger.With().
		Str(log.KeyUsername, reqBody.Username).
		Str(log.KeyProcess, "creating user").
		Logger()
	logger.Info().Msg("creating user")
	c = logger.WithContext(c)
	user, err := t.service.CreateUser(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed creating user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created user")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "created user",
		"data":       user,
	})
}

func (t UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController DeleteUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController DeleteUser").
		Logger()

	pathValues := mux.Vars(r)
	userId, err := strconv.ParseInt(pathValues["userId"], 10, 64)
	if err != nil {
		err = fmt.Errorf("userId=%s is not a number", pathValues["userId"])
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
		Int64(log.KeyUserID, userId).
		Str(log.KeyProcess, "deleting user").
		Logger()
	logger.Info().Msg("deleting user")
	c = logger.WithContext(c)
	err = t.service.DeleteUser(c, userId)
	if err != nil {
		err = fmt.Errorf("failed deleting user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": errorStatusCode(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("deleted user")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "deleted user",
	})
}

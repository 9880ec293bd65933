package users

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal"
	"github.com/farmasystem/pos/internal/backend"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/pos/pkg/request"
)

// Service passes user administration through to the backend, which owns
// the accounts and the password hashing. The terminal only relays the
// caller's token.
type Service struct {
	backend *backend.Client
}

func NewService(backendClient *backend.Client) *Service {
	return &Service{backend: backendClient}
}

func (s *Service) token(c context.Context) (string, error) {
	token, err := internal.JwtTokenFromContext(c)
	if err != nil {
		return "", err
	}
	return token.Raw, nil
}

func (s *Service) FindUsers(c context.Context) ([]backend.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUsers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindUsers").
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	c = logger.WithContext(c)
	users, err := s.backend.FindUsers(c, token)
	if err != nil {
		err = fmt.Errorf("failed finding users with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	return users, nil
}

func (s *Service) CreateUser(
	c context.Context,
	param request.CreateUser,
) (backend.User, error) {
	c, span := otel.Tracer.Start(c, "UserService CreateUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService CreateUser").
		Str(log.KeyUsername, param.Username).
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return backend.User{}, err
	}

	c = logger.WithContext(c)
	user, err := s.backend.CreateUser(c, token, backend.CreateUser{
		Username: param.Username,
		FullName: param.FullName,
		Password: param.Password,
		Role:     param.Role,
	})
	if err != nil {
		err = fmt.Errorf("failed creating user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return backend.User{}, err
	}

	return user, nil
}

func (s *Service) DeleteUser(c context.Context, userId int64) error {
	c, span := otel.Tracer.Start(c, "UserService DeleteUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService DeleteUser").
		Int64(log.KeyUserID, userId).
		Logger()

	token, err := s.token(c)
	if err != nil {
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	c = logger.WithContext(c)
	err = s.backend.DeleteUser(c, token, userId)
	if err != nil {
		err = fmt.Errorf("failed deleting user with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	return nil
}

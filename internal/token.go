package internal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal/common"
	"github.com/farmasystem/pos/internal/config"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
)

func VerifyToken(c context.Context, token string) (*jwt.Token, error) {
	c, span := otel.Tracer.Start(c, "VerifyToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing config").Logger()
	logger.Trace().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, common.AppPosService)
	logger.Trace().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	logger.Trace().Msg("parsing claims")
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.Application.SecretKey), nil
		},
		jwt.WithAudience(common.AudienceSeller),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(common.AppAuthorizer),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing claims with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("parsed claims")

	logger = logger.With().Str(log.KeyProcess, "validating token").Logger()
	logger.Trace().Msg("validating token")
	if !jwtToken.Valid {
		err = fmt.Errorf("failed validating token with error=%w", inErrors.ErrTokenInvalid)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, inErrors.ErrTokenInvalid
	}
	logger.Info().Msg("validated token")

	return jwtToken, nil
}

type jwtToken struct{}

func AttachJwtToken(c context.Context, jwt *jwt.Token) context.Context {
	return context.WithValue(c, jwtToken{}, jwt)
}

func JwtTokenFromContext(c context.Context) (*jwt.Token, error) {
	token, ok := c.Value(jwtToken{}).(*jwt.Token)
	if !ok {
		return nil, inErrors.ErrMissingSession
	}
	return token, nil
}

// SellerIdFromJwtToken resolves the authenticated seller from the token
// subject. The POS never trusts a caller-provided seller id.
func SellerIdFromJwtToken(c context.Context) (int64, error) {
	c, span := otel.Tracer.Start(c, "SellerIdFromJwtToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SellerIdFromJwtToken").
		Str(log.KeyProcess, "getting sellerId from jwtToken").
		Logger()

	logger.Trace().Msg("getting jwtToken from context")
	token, err := JwtTokenFromContext(c)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		err = fmt.Errorf("failed getting subject from jwt with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}

	logger.Trace().Msg("parsing subject")
	sellerId, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		err = fmt.Errorf("failed parsing subject=%s with error=%w", subject, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}
	logger = logger.With().Int64(log.KeySellerID, sellerId).Logger()
	logger.Info().Msg("parsed subject as sellerId")

	return sellerId, nil
}

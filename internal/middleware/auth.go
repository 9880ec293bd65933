package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal"
	inErrors "github.com/farmasystem/pos/internal/errors"
	inHttp "github.com/farmasystem/pos/internal/http"
	"github.com/farmasystem/pos/internal/log"
)

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).With().Str(log.KeyTag, "middleware Auth").Logger()
		c := logger.WithContext(r.Context())

		authorization := r.Header.Get(inHttp.HeaderAuthorization)
		if authorization == "" {
			logger.Error().
				Err(inErrors.ErrEmptyAuth).
				Msg(inErrors.ErrEmptyAuth.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    inErrors.ErrMissingSession.Error(),
			})
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")
		token = strings.TrimPrefix(token, "bearer ")
		jwtToken, err := internal.VerifyToken(c, token)
		if err != nil {
			logger.Error().
				Err(err).
				Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    inErrors.ErrTokenInvalid.Error(),
			})
			return
		}

		c = internal.AttachJwtToken(c, jwtToken)
		next.ServeHTTP(w, r.WithContext(c))
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api/metrics"
	"github.com/comunidad/social-api/internal/api/session"
	"github.com/comunidad/social-api/internal/core/domain"
)

// SessionReader extracts the session id carried by a request.
type SessionReader interface {
	Read(r *http.Request) (string, error)
}

// SessionAuthenticator resolves a session id to the user it belongs to.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (string, error)
}

// Session admits a request only when it carries a live session and stores the
// owning user id in the context under session.UserIDKey. Everything else is
// answered with 401 before the handler runs.
func Session(reader SessionReader, auth SessionAuthenticator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, err := reader.Read(c.Request())
			if err != nil {
				reason := "invalid_cookie"
				if errors.Is(err, session.ErrNoCookie) {
					reason = "missing_cookie"
				}
				return reject(reason)
			}

			userID, err := auth.Authenticate(c.Request().Context(), sid)
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				return reject("invalid_session")
			case err != nil:
				log.Error().Err(err).Str("path", c.Path()).Msg("session lookup failed")
				return err
			}

			c.Set(session.UserIDKey, userID)
			return next(c)
		}
	}
}

func reject(reason string) error {
	metrics.SessionRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "no autorizado")
}

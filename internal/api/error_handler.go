package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api/handler"
	"github.com/comunidad/social-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and user-facing message.
//   - Renders operation failures as 500 with the cause in details.
//   - Renders a consistent JSON envelope: {"error": "<message>", "details": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	// Domain errors first: they may travel wrapped in an OpError.
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, handler.ErrorResponse{Error: "Faltan campos obligatorios"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, handler.ErrorResponse{Error: "Usuario ya existe"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, handler.ErrorResponse{Error: "Usuario no encontrado"}
	case errors.Is(err, domain.ErrBadPassword):
		return http.StatusBadRequest, handler.ErrorResponse{Error: "Contraseña incorrecta"}
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: "no autorizado"}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	resp := handler.ErrorResponse{Error: "internal server error", Details: err.Error()}
	var opErr *handler.OpError
	if errors.As(err, &opErr) {
		resp.Error = opErr.Message
		if opErr.Err != nil {
			resp.Details = opErr.Err.Error()
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(resp.Error)

	return http.StatusInternalServerError, resp
}

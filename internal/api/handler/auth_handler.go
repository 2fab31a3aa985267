package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api/metrics"
	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

// SessionCookies turns sessions into cookies and back.
type SessionCookies interface {
	Issue(s *domain.Session) (*http.Cookie, error)
	Read(r *http.Request) (string, error)
	Clear() *http.Cookie
}

type AuthHandler struct {
	authService ports.AuthService
	cookies     SessionCookies
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookies SessionCookies, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, log: log}
}

// Register creates a new account and opens a session for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("missing_field").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan datos")
	}

	user, sess, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		metrics.AuthRegistrationsTotal.WithLabelValues("missing_field").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan datos")
	case errors.Is(err, domain.ErrUserExists):
		metrics.AuthRegistrationsTotal.WithLabelValues("user_exists").Inc()
		return err
	case err != nil:
		metrics.AuthRegistrationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return opError("Error al registrar", err)
	}

	if err := h.setSession(c, sess); err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return opError("Error al registrar", err)
	}

	metrics.AuthRegistrationsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Usuario registrado",
		User:    userSummary{ID: user.ID, Username: user.Username},
	})
}

// Login verifies credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan datos")
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.AuthLoginsTotal.WithLabelValues("user_not_found").Inc()
		return err
	case errors.Is(err, domain.ErrBadPassword):
		metrics.AuthLoginsTotal.WithLabelValues("bad_password").Inc()
		return err
	case err != nil:
		metrics.AuthLoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return opError("Error en login", err)
	}

	if err := h.setSession(c, sess); err != nil {
		metrics.AuthLoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		return opError("Error en login", err)
	}

	metrics.AuthLoginsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login exitoso",
		User:    userSummary{ID: user.ID, Username: user.Username},
	})
}

// Logout destroys the current session, if any. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid, err := h.cookies.Read(c.Request()); err == nil {
		if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
			h.log.Error().Err(err).Msg("logout: session not destroyed")
		}
	}
	c.SetCookie(h.cookies.Clear())

	metrics.AuthLogoutsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout exitoso"})
}

// Profile returns the authenticated user.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/perfil [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return opError("Error al obtener perfil", err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

func (h *AuthHandler) setSession(c echo.Context, sess *domain.Session) error {
	ck, err := h.cookies.Issue(sess)
	if err != nil {
		return err
	}
	c.SetCookie(ck)
	return nil
}

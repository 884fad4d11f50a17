package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/esgmate/esg-platform/internal/api/middleware"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// AuthHandler handles HTTP requests for the authentication service.
type AuthHandler struct {
	auth     ports.AuthService
	tokenTTL time.Duration
	port     int
}

func NewAuthHandler(auth ports.AuthService, tokenTTL time.Duration, port int) *AuthHandler {
	return &AuthHandler{auth: auth, tokenTTL: tokenTTL, port: port}
}

// Root handles GET /, the service banner.
func (h *AuthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Auth Service",
		"port":      h.port,
		"endpoints": []string{"/login", "/register", "/refresh", "/verify", "/health", "/users"},
	})
}

// Health handles GET /health, the liveness probe.
func (h *AuthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "auth",
		"port":    h.port,
	})
}

// Register handles POST /register.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Login handles POST /login.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.tokenTTL.Seconds()),
		User:        user,
	})
}

// Verify handles GET /verify. It validates the bearer token and returns the
// live user record. Any failure, including a vanished user, is reported as
// a plain 401 so the response leaks nothing about internal state.
//
// @Summary      Verify the access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  map[string]string
// @Router       /verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	_, user, err := h.auth.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	return c.JSON(http.StatusOK, verifyResponse{Valid: true, User: user})
}

// Refresh handles POST /refresh. It reissues a currently valid bearer token
// with a fresh expiry.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	fresh, err := h.auth.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: fresh,
		TokenType:   "bearer",
		ExpiresIn:   int(h.tokenTTL.Seconds()),
	})
}

// ListUsers handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.auth.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id. Requires a bearer token; changing the
// role additionally requires the caller to be an admin.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	callerRole, _ := c.Get("role").(string)
	user, err := h.auth.UpdateUser(c.Request().Context(), id, ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, callerRole)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles POST /users/:id/change-password. A wrong current
// password is a 400, not a 401, because it is an expected outcome of the flow.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "User id"
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/{id}/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.auth.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

// DeleteUser handles DELETE /users/:id. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	deleted, err := h.auth.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

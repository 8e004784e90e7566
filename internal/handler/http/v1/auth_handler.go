package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/crime_pulse/internal/service"
)

// @Summary Login
// @Description Authenticate with email and password against the remote crime data API.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.dashboard.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		log.WithError(err).Error("Login failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   sess.Token,
		User:    ModelToUserResponse(sess.User),
	})
}

// @Summary Register
// @Description Register a new user against the remote crime data API and open a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Registration rejected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.dashboard.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		log.WithError(err).Error("Registration failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Token:   sess.Token,
		User:    ModelToUserResponse(sess.User),
	})
}

// @Summary Logout
// @Description Clear the persisted session and drop the bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.dashboard.Logout(c.Request.Context()); err != nil {
		log.WithError(err).Error("Logout failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get session state
// @Description Get the current session state without touching the remote API.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /auth/session [get]
func (h *Handler) getSession(c *gin.Context) {
	sess := h.dashboard.CurrentSession()
	if sess == nil {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		User:          ModelToUserResponse(sess.User),
	})
}

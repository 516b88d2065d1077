package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/auth"
	"github.com/BruksfildServices01/barbershop-site/internal/dto"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
)

type AuthHandler struct {
	auth     *auth.Service
	recorder audit.Recorder
}

func NewAuthHandler(authSvc *auth.Service, recorder audit.Recorder) *AuthHandler {
	return &AuthHandler{auth: authSvc, recorder: recorder}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, identity, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "Invalid credentials")
			return
		}
		httperr.Respond(c, err)
		return
	}

	userID := identity.UserID
	h.recorder.Dispatch(audit.Event{
		UserID:   &userID,
		Username: identity.Username,
		Action:   audit.ActionLogin,
		Entity:   "admin_user",
		EntityID: &userID,
	})

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Username: identity.Username})
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		httperr.Unauthorized(c, "Access token required")
		return
	}
	c.JSON(http.StatusOK, identity)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	appctx "github.com/SinaGanjii/industrial-company-website-sub000/internal/core/context"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/auth"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/dto"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(ctx, auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "user", session.User.ID, postgres.AuditActionLogin, nil)
	c.JSON(http.StatusOK, dto.FromSession(session))
}

// CreateUser handles POST /auth/users (admin only).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "user", user.ID, postgres.AuditActionCreate, dto.FromUser(user))
	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userCtx := appctx.GetUser(ctx)
	if userCtx == nil {
		h.Error(c, apperror.NewUnauthorized("not authenticated"))
		return
	}

	user, err := h.service.GetUser(ctx, userCtx.UserID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

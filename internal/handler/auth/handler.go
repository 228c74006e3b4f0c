package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/handler"
	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/service/session"
)

type Handler struct {
	service session.SessionService
}

func NewHandler(service session.SessionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/guest", h.LoginGuest)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterProtectedRoutes wires the endpoints that require an established
// session.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Deliberately generic: wrong credentials and collaborator
		// failures look the same to the caller.
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("login failed"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) LoginGuest(c *gin.Context) {
	resp, err := h.service.LoginGuest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("login failed"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	user := h.service.Current(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

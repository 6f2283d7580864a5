package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learning-notifier/learning-notifier/internal/auth"
	"github.com/learning-notifier/learning-notifier/internal/users"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Type      string `json:"type"`
	IsAdmin   bool   `json:"isAdmin"`
	AdminCode string `json:"adminCode"`
}

// UpdateUserRequest is a partial update; omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	IsAdmin   *bool  `json:"isAdmin"`
	AdminCode string `json:"adminCode"`
}

// RegisterHandler holds dependencies for the registration endpoints.
type RegisterHandler struct {
	usersSvc *users.Service
}

func NewRegisterHandler(u *users.Service) *RegisterHandler {
	return &RegisterHandler{usersSvc: u}
}

// Register routes under /register
func (h *RegisterHandler) Register(r *gin.Engine) {
	g := r.Group("/register")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create registers a new user for daily notifications
func (h *RegisterHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := h.usersSvc.Register(c.Request.Context(), users.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Type:      req.Type,
		IsAdmin:   req.IsAdmin,
		AdminCode: req.AdminCode,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration completed successfully",
		"user":    u.Public(),
	})
}

// List returns all registered users. An admin code supplied via the
// `adminCode` query parameter is validated when present.
func (h *RegisterHandler) List(c *gin.Context) {
	all, err := h.usersSvc.List(c.Request.Context(), c.Query("adminCode"))
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns a single user by id
func (h *RegisterHandler) Get(c *gin.Context) {
	u, err := h.usersSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update applies a partial update to an existing user
func (h *RegisterHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := h.usersSvc.Update(c.Request.Context(), c.Param("id"), users.UpdateInput{
		Name:      req.Name,
		Email:     req.Email,
		Type:      req.Type,
		IsAdmin:   req.IsAdmin,
		AdminCode: req.AdminCode,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": u})
}

// Delete removes a user by id
func (h *RegisterHandler) Delete(c *gin.Context) {
	if err := h.usersSvc.Delete(c.Request.Context(), c.Param("id"), c.Query("adminCode")); err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// writeUserError maps service errors to HTTP responses. Unknown errors are
// logged and reported generically so storage details never leak to clients.
func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid admin code"})
	case errors.Is(err, users.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, users.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, users.ErrInvalidEmail),
		errors.Is(err, users.ErrEmptyName),
		errors.Is(err, users.ErrAdminCodeRequired),
		errors.Is(err, users.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.Errorf("user operation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
	}
}

package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ostroner/smartCarproject/internal/store"
)

// Handler serves registration, login and password change. Login returns the
// user object directly with no token or session; the client holds it as its
// only proof of authentication.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Routes(g *gin.RouterGroup) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/change-password", h.ChangePassword)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	u, err := h.store.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Do not disclose which of the two fields collided.
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    gin.H{"username": u.Username, "email": u.Email},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	// No presence validation here: a missing username falls through to the
	// same generic rejection as a wrong password.
	_ = c.ShouldBindJSON(&req)

	u, err := h.store.UserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !h.store.VerifyPassword(u, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": u.ID, "username": u.Username, "email": u.Email},
		"message": "Login successful",
	})
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	u, err := h.store.UserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !h.store.VerifyPassword(u, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Current password is incorrect"})
		return
	}

	hash, err := store.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.store.UpdatePassword(u.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

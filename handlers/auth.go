package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legalease-backend/internal/config"
	"github.com/legalease/legalease-backend/internal/models"
	"github.com/legalease/legalease-backend/internal/tokens"
	"github.com/legalease/legalease-backend/internal/users"
	"github.com/legalease/legalease-backend/pkg/logger"
	"github.com/legalease/legalease-backend/pkg/middleware"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg      *config.Config
	usersSvc *users.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, usersSvc: u}
}

// Register routes under /api/auth
func (h *AuthHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/register", h.RegisterUser)
	a.POST("/login", h.Login)
	a.GET("/me", auth, h.Me)
}

// RegisterUser creates an account and returns a signed token.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.usersSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == users.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered. Please login."})
			return
		}
		logger.Errorf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := tokens.GenerateToken(h.cfg, u.ID.Hex())
	if err != nil {
		logger.Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account created successfully!",
		"token":   token,
		"user":    userBody(u),
	})
}

// Login verifies credentials and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.usersSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case users.ErrNoAccount:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No account found with this email."})
		case users.ErrWrongPassword:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
		default:
			logger.Errorf("login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	token, err := tokens.GenerateToken(h.cfg, u.ID.Hex())
	if err != nil {
		logger.Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   token,
		"user":    userBody(u),
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.usersSvc.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		logger.Errorf("user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	c.JSON(http.StatusOK, userBody(u))
}

func userBody(u *models.User) gin.H {
	return gin.H{"id": u.ID.Hex(), "name": u.Name, "email": u.Email}
}

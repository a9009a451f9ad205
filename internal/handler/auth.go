package handler

import (
	"net/http"
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Auth      *service.AuthService
	JWTSecret string
	TokenTTL  time.Duration

	sign func(secret string, userID uint, username string, ttl time.Duration) (string, error)
}

func NewAuthHandler(auth *service.AuthService, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Auth:      auth,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
		sign:      util.GenerateToken,
	}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userBody(id uint, username, email string) gin.H {
	return gin.H{"id": id, "username": username, "email": email}
}

// Register creates a user and hands back a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err, "")
		return
	}

	token, err := h.sign(h.JWTSecret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    userBody(user.ID, user.Username, user.Email),
	})
}

// Login authenticates a username/password pair. Failures are uniform
// regardless of whether the user exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err, "")
		return
	}

	token, err := h.sign(h.JWTSecret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userBody(user.ID, user.Username, user.Email),
	})
}

// Me returns the current user's public fields.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.Auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

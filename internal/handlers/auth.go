package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmaeda/studycards-api/internal/dto"
	apierrors "github.com/tmaeda/studycards-api/internal/errors"
	"github.com/tmaeda/studycards-api/internal/services"
)

// AuthHandler coordinates account-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login verifies credentials and returns the account profile.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password required")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name, email, and password required")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// EditUser updates the provided account fields after a password check.
func (h *AuthHandler) EditUser(c *gin.Context) {
	type EditUserRequest struct {
		UserID      string  `json:"userId" binding:"required"`
		Email       string  `json:"email" binding:"required"`
		Password    string  `json:"password" binding:"required"`
		NewName     *string `json:"newName"`
		NewEmail    *string `json:"newEmail"`
		NewPassword *string `json:"newPassword"`
	}

	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userId, email, and password required")
		return
	}

	user, err := h.authService.EditUser(services.EditUserInput{
		UserID:      req.UserID,
		Email:       req.Email,
		Password:    req.Password,
		NewName:     req.NewName,
		NewEmail:    req.NewEmail,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrIncorrectPassword):
		apierrors.Unauthorized(c, "Incorrect password")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		log.Printf("auth handler: %v", err)
		apierrors.InternalError(c, "")
	}
}

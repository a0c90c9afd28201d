package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/dto"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a token
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string          `json:"email" binding:"required,email"`
		Username string          `json:"username" binding:"required,min=3,max=20"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role" binding:"omitempty,oneof=PLAYER ORGANIZER ADMIN"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.ToUserDTO(*user),
	})
}

// Login authenticates a user and returns a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBadRequest(c, "")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserDTO(*user),
	})
}

// ListUsers returns the user directory
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

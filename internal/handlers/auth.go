package handlers

import (
	"errors"
	"net/http"
	"storyapp/internal/middleware"
	"storyapp/internal/models"
	"storyapp/internal/store"
	"storyapp/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users      store.UserStore
	logger     *zap.Logger
	bcryptCost int
}

func NewAuthHandler(users store.UserStore, logger *zap.Logger, bcryptCost int) *AuthHandler {
	return &AuthHandler{users: users, logger: logger, bcryptCost: bcryptCost}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	hash, err := utils.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Theme:     "light",
	}

	if err := h.users.Create(&user); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			jsonError(c, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, store.ErrDuplicateUsername):
			jsonError(c, http.StatusBadRequest, "Username is already taken")
		default:
			h.logger.Error("create user", zap.Error(err))
			jsonError(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	// Unknown email and wrong password respond identically.
	user, err := h.users.ByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("login lookup", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Login failed")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		jsonError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		h.logger.Error("save session", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.logger.Error("destroy session", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated user's record, password omitted.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.ByID(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("fetch current user", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

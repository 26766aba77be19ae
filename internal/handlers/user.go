package handlers

import (
	"errors"
	"net/http"
	"storyapp/internal/middleware"
	"storyapp/internal/store"
	"storyapp/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users      store.UserStore
	logger     *zap.Logger
	bcryptCost int
}

func NewUserHandler(users store.UserStore, logger *zap.Logger, bcryptCost int) *UserHandler {
	return &UserHandler{users: users, logger: logger, bcryptCost: bcryptCost}
}

// Pointer fields so absent keys stay untouched on partial updates.
type updateProfileRequest struct {
	Username     *string `json:"username" binding:"omitempty,min=3,max=30"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Password     *string `json:"password" binding:"omitempty,min=6"`
	FirstName    *string `json:"firstName" binding:"omitempty,max=50"`
	LastName     *string `json:"lastName" binding:"omitempty,max=50"`
	Bio          *string `json:"bio" binding:"omitempty,max=500"`
	ProfileImage *string `json:"profileImage"`
	Theme        *string `json:"theme" binding:"omitempty,oneof=light dark"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, h.bcryptCost)
		if err != nil {
			h.logger.Error("hash password", zap.Error(err))
			jsonError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		updates["password"] = hash
	}

	user, err := h.users.Update(middleware.CurrentUserID(c), updates)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			jsonError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrDuplicateEmail):
			jsonError(c, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, store.ErrDuplicateUsername):
			jsonError(c, http.StatusBadRequest, "Username is already taken")
		default:
			h.logger.Error("update profile", zap.Error(err))
			jsonError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

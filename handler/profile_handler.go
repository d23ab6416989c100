package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalError(c, "could not fetch user details")
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func (h *AuthHandler) Login(c *gin.Context) {
	var loginReq model.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.ValidationError(c, err)
		return
	}

	user, err := h.UserService.Authenticate(c.Request.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "invalid credentials")
			return
		}
		utils.InternalError(c, "failed to authenticate")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, dto.TokenPairResponse{
		Access:  token,
		Refresh: refreshToken,
	})
}

package handler

import (
	"errors"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService *usecase.UserService
}

func NewAuthHandler(userService *usecase.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.ValidationError(c, err)
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.TrackAuthAttempt("failure", "register")
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "failed to register user")
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

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, gin.H{
		"user": dto.ToUserResponse(user),
		"tokens": dto.TokenPairResponse{
			Access:  token,
			Refresh: refreshToken,
		},
	})
}

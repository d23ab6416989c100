package handler

import (
	"strings"

	"main/dto"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Refresh exchanges a valid refresh token for a fresh access/refresh pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}

	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if services.IsTokenBlacklisted(refreshToken) {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ParseToken(refreshToken, "refresh")
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	newAccessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "failed to generate new access token")
		return
	}

	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "failed to generate new refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, dto.TokenPairResponse{
		Access:  newAccessToken,
		Refresh: newRefreshToken,
	})
}

package handler

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

// Logout blacklists the caller's access token, plus the refresh token when
// the client sends it along. With no Redis configured this is a no-op and
// tokens simply age out.
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var req logoutRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if err := services.BlacklistTokens(accessToken, req.Refresh); err != nil {
		utils.TrackError("auth", "logout_blacklist")
		utils.InternalError(c, "failed to log out")
		return
	}

	utils.Success(c, gin.H{"message": "logged out"})
}

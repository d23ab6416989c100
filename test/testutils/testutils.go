package testutils

import (
	"os"
	"sync"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var setupOnce sync.Once

// SetupTestEnvironment configures the process for tests: test-mode env
// defaults, JWT config and the custom validators. Safe to call from every
// test package's init.
func SetupTestEnvironment() {
	setupOnce.Do(func() {
		os.Setenv("GO_ENV", "test")
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
		if os.Getenv("JWT_EXPIRATION_TIME") == "" {
			os.Setenv("JWT_EXPIRATION_TIME", "3600")
		}
		if os.Getenv("REFRESH_TOKEN_EXPIRATION_TIME") == "" {
			os.Setenv("REFRESH_TOKEN_EXPIRATION_TIME", "604800")
		}

		gin.SetMode(gin.TestMode)
		utils.InitValidator()
		utils.InitJWT()
	})
}

package handler

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus coarse host stats for dashboards.
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status": "ok",
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}

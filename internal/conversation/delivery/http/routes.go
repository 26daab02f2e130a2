package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/users", h.CreateUser)
	rg.GET("/history/:username", h.GetHistory)

	planGroup := rg.Group("/plan")
	{
		planGroup.GET("/:username", h.GetPlan)
		planGroup.POST("/:username", h.UpdatePlan)
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Данные для карты
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/features", h.getMapFeatures)
		mapGroup.GET("/config", h.getMapConfig)
	}

	// Записи о преступлениях и фильтр типов
	api.GET("/crimes", h.listCrimes)
	crimeTypes := api.Group("/crime-types")
	{
		crimeTypes.GET("", h.getCrimeTypes)
		crimeTypes.POST("/toggle", h.toggleCrimeType)
		crimeTypes.POST("/select-all", h.selectAllCrimeTypes)
		crimeTypes.POST("/clear", h.clearCrimeTypes)
	}

	// Статистика и серверная аналитика
	api.GET("/stats", h.getStats)
	api.GET("/analytics", h.getAnalytics)

	// Аутентификация
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.getSession)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

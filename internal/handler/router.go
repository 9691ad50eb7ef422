package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/middleware"
)

type RouterDeps struct {
	Auth       *AuthHandler
	Chat       *ChatHandler
	Faqs       *FaqHandler
	Complaints *ComplaintHandler
	ChatLogs   *ChatLogHandler
	Export     *ExportHandler
	JWTSecret  []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/login", deps.Auth.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.POST("/chat", deps.Chat.Send)
	authGroup.GET("/departments", deps.Chat.Departments)
	authGroup.GET("/faqs", deps.Faqs.List)
	authGroup.POST("/complaints", deps.Complaints.Create)
	authGroup.GET("/complaints/:id", deps.Complaints.Get)

	adminGroup := authGroup.Group("")
	adminGroup.Use(middleware.AdminOnly())
	adminGroup.POST("/faqs", deps.Faqs.Create)
	adminGroup.GET("/faqs/:id", deps.Faqs.Get)
	adminGroup.PUT("/faqs/:id", deps.Faqs.Update)
	adminGroup.DELETE("/faqs/:id", deps.Faqs.Delete)
	adminGroup.GET("/complaints", deps.Complaints.List)
	adminGroup.PUT("/complaints/:id", deps.Complaints.Update)
	adminGroup.GET("/chatlogs", deps.ChatLogs.List)
	adminGroup.GET("/export/faqs", deps.Export.Faqs)
	adminGroup.GET("/export/transcript", deps.Export.Transcript)
}

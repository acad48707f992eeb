package handler

import (
	"github.com/gin-gonic/gin"
)

// NewRouter はチームAPIのルートを登録したGinエンジンを作成する
func NewRouter(teamsHandler *TeamsHandler, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.Use(RequestID())

	equipes := r.Group("/equipes")
	{
		// 静的ルートを:idより先に登録する
		equipes.GET("/success", teamsHandler.HealthCheck)
		equipes.GET("", teamsHandler.GetTeams)
		equipes.GET("/:id", teamsHandler.GetTeam)
		equipes.POST("", teamsHandler.CreateTeam)
		equipes.PUT("/:id", teamsHandler.UpdateTeam)
		equipes.DELETE("/:id", teamsHandler.DeleteTeam)
	}

	return r
}

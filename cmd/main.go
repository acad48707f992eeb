package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"Equipes-App/internal/config"
	"Equipes-App/internal/domain/model"
	"Equipes-App/internal/handler"
	"Equipes-App/internal/repository"
	"Equipes-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Dependency injection
	teamsRepo := repository.NewMemoryTeamsRepository(model.SeedTeams())
	teamsUseCase := usecase.NewTeamsUseCase(teamsRepo)
	teamsHandler := handler.NewTeamsHandler(teamsUseCase)

	router := handler.NewRouter(teamsHandler, gin.Logger(), gin.Recovery())
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatalf("TRUSTED_PROXIES の設定に失敗: %v", err)
	}

	log.Printf("🚀 Equipes-App server listening on port %d", config.Port)
	log.Fatal(http.ListenAndServe(cfg.Addr(), router))
}

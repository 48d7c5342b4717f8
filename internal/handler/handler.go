package handler

import (
	"github.com/jhorsb/moodmatcher-backend/internal/config"
	"github.com/jhorsb/moodmatcher-backend/internal/repository"
	"github.com/jhorsb/moodmatcher-backend/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos     *repository.Repositories
	Config    *config.Config
	Recommend *service.RecommendationService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	// 三个目录服务 + 聚合服务
	spotify := service.NewSpotifyService(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	tmdb := service.NewTMDBService(cfg.TMDBAPIKey)
	rawg := service.NewRAWGService(cfg.RAWGAPIKey)

	return &Handler{
		Repos:     repos,
		Config:    cfg,
		Recommend: service.NewRecommendationService(spotify, tmdb, rawg),
	}
}

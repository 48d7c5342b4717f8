package service

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/model"
	"github.com/jhorsb/moodmatcher-backend/internal/mood"
	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

const rawgAPIBaseURL = "https://api.rawg.io/api"

// RAWGService 游戏推荐服务
// 调用 RAWG 游戏列表接口，按心情预设的流派筛选、按评分倒序
type RAWGService struct {
	apiKey  string
	client  *utils.HTTPClient
	baseURL string
	cache   *utils.LRUCache[[]model.RecommendationItem]
}

// NewRAWGService 创建 RAWG 服务
func NewRAWGService(apiKey string) *RAWGService {
	return &RAWGService{
		apiKey:  apiKey,
		client:  utils.NewHTTPClient(10 * time.Second),
		baseURL: rawgAPIBaseURL,
		cache:   utils.NewLRUCache[[]model.RecommendationItem](64, 10*time.Minute),
	}
}

type rawgGamesResponse struct {
	Results []struct {
		ID     int     `json:"id"`
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
	} `json:"results"`
}

// Fetch 按心情获取游戏推荐，上游失败返回空列表
func (s *RAWGService) Fetch(label string, preset mood.Preset, limit int) []model.RecommendationItem {
	if items, ok := s.cache.Get(label); ok {
		return truncate(items, limit)
	}

	query := url.Values{}
	query.Set("key", s.apiKey)
	query.Set("genres", preset.RAWG.Genres)
	query.Set("ordering", "-rating")
	query.Set("page_size", strconv.Itoa(limit))

	var result rawgGamesResponse
	err := s.client.GetJSON(s.baseURL+"/games?"+query.Encode(), nil, &result)
	if err != nil {
		log.Printf("[RAWG] 游戏列表失败 (mood: %s): %v", label, err)
		return []model.RecommendationItem{}
	}

	items := make([]model.RecommendationItem, 0, len(result.Results))
	for _, game := range result.Results {
		items = append(items, model.RecommendationItem{
			ID:       fmt.Sprintf("%d", game.ID),
			Title:    game.Name,
			Subtitle: fmt.Sprintf("评分 %.1f/5", game.Rating),
		})
	}

	s.cache.Set(label, items)
	return truncate(items, limit)
}

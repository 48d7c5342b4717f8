package service

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/model"
	"github.com/jhorsb/moodmatcher-backend/internal/mood"
	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

const tmdbAPIBaseURL = "https://api.themoviedb.org/3"

// TMDBService 电影推荐服务
// 调用 TMDB 的 discover 接口，按心情预设的流派与排序筛选
type TMDBService struct {
	apiKey  string
	client  *utils.HTTPClient
	baseURL string
	cache   *utils.LRUCache[[]model.RecommendationItem]
}

// NewTMDBService 创建 TMDB 服务
func NewTMDBService(apiKey string) *TMDBService {
	return &TMDBService{
		apiKey:  apiKey,
		client:  utils.NewHTTPClient(10 * time.Second),
		baseURL: tmdbAPIBaseURL,
		cache:   utils.NewLRUCache[[]model.RecommendationItem](64, 10*time.Minute),
	}
}

type tmdbDiscoverResponse struct {
	Results []struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		ReleaseDate string  `json:"release_date"`
		VoteAverage float64 `json:"vote_average"`
	} `json:"results"`
}

// Fetch 按心情获取电影推荐，上游失败返回空列表
func (s *TMDBService) Fetch(label string, preset mood.Preset, limit int) []model.RecommendationItem {
	if items, ok := s.cache.Get(label); ok {
		return truncate(items, limit)
	}

	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("with_genres", preset.TMDB.GenreIDs)
	query.Set("sort_by", preset.TMDB.SortBy)
	query.Set("page", "1")

	var result tmdbDiscoverResponse
	err := s.client.GetJSON(s.baseURL+"/discover/movie?"+query.Encode(), nil, &result)
	if err != nil {
		log.Printf("[TMDB] 电影发现失败 (mood: %s): %v", label, err)
		return []model.RecommendationItem{}
	}

	items := make([]model.RecommendationItem, 0, len(result.Results))
	for _, movie := range result.Results {
		subtitle := ""
		if len(movie.ReleaseDate) >= 4 {
			subtitle = movie.ReleaseDate[:4]
		}
		items = append(items, model.RecommendationItem{
			ID:    fmt.Sprintf("%d", movie.ID),
			Title: movie.Title,
			// 年份 + 五星制评分（TMDB 是十分制）
			Subtitle: fmt.Sprintf("%s · %.1f/5", subtitle, movie.VoteAverage/2),
		})
	}

	s.cache.Set(label, items)
	return truncate(items, limit)
}

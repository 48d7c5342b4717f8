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

const spotifyAPIBaseURL = "https://api.spotify.com/v1"

// SpotifyService 音乐推荐服务
// 使用 client_credentials 令牌调用 Spotify 搜索接口，
// 搜索词由心情标签加流派限定词拼成
type SpotifyService struct {
	tokens  *TokenCache
	client  *utils.HTTPClient
	baseURL string
	cache   *utils.LRUCache[[]model.RecommendationItem]
}

// NewSpotifyService 创建 Spotify 服务
func NewSpotifyService(clientID, clientSecret string) *SpotifyService {
	client := utils.NewHTTPClient(10 * time.Second)
	return &SpotifyService{
		tokens:  NewTokenCache(clientID, clientSecret, client),
		client:  client,
		baseURL: spotifyAPIBaseURL,
		cache:   utils.NewLRUCache[[]model.RecommendationItem](64, 10*time.Minute),
	}
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			PreviewURL string `json:"preview_url"`
		} `json:"items"`
	} `json:"tracks"`
}

// Fetch 按心情获取歌曲推荐
// 上游失败时返回空列表并记录日志，调用方按"结果降级"处理而非请求失败
func (s *SpotifyService) Fetch(label string, preset mood.Preset, limit int) []model.RecommendationItem {
	if items, ok := s.cache.Get(label); ok {
		return truncate(items, limit)
	}

	token, err := s.tokens.Token()
	if err != nil {
		log.Printf("[Spotify] 获取令牌失败: %v", err)
		return []model.RecommendationItem{}
	}

	// 多请求一些歌曲，提高带试听链接的比例
	query := url.Values{}
	query.Set("q", searchQuery(label, preset.Spotify))
	query.Set("type", "track")
	query.Set("limit", strconv.Itoa(limit*2))

	var result spotifySearchResponse
	err = s.client.GetJSON(s.baseURL+"/search?"+query.Encode(), map[string]string{
		"Authorization": "Bearer " + token,
	}, &result)
	if err != nil {
		log.Printf("[Spotify] 搜索失败 (mood: %s): %v", label, err)
		return []model.RecommendationItem{}
	}

	// 归一化，带试听链接的排在前面
	var withPreview, withoutPreview []model.RecommendationItem
	for _, track := range result.Tracks.Items {
		item := model.RecommendationItem{
			ID:         track.ID,
			Title:      track.Name,
			PreviewURL: track.PreviewURL,
		}
		if len(track.Artists) > 0 {
			item.Subtitle = track.Artists[0].Name
		}
		if item.PreviewURL != "" {
			withPreview = append(withPreview, item)
		} else {
			withoutPreview = append(withoutPreview, item)
		}
	}
	items := append(withPreview, withoutPreview...)

	s.cache.Set(label, items)
	return truncate(items, limit)
}

// searchQuery 把心情预设转换为 Spotify 搜索词
// 如 happy → `happy genre:pop genre:happy genre:dance`
func searchQuery(label string, params mood.SpotifyParams) string {
	q := label
	for _, genre := range params.SeedGenres {
		q += fmt.Sprintf(" genre:%s", genre)
	}
	return q
}

// truncate 截断到 limit 条
func truncate(items []model.RecommendationItem, limit int) []model.RecommendationItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

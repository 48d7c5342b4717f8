package service

import (
	"sync"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/model"
	"github.com/jhorsb/moodmatcher-backend/internal/mood"
	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

// MaxItemsPerCategory 每个分类最多返回的条数
const MaxItemsPerCategory = 15

// 类型筛选取值
const (
	TypeAll    = "all"
	TypeMusic  = "music"
	TypeMovies = "movies"
	TypeGames  = "games"
)

// Provider 推荐目录的统一抓取接口
// 实现必须自行吞掉上游错误并返回空列表，保证聚合阶段不会失败
type Provider interface {
	Fetch(label string, preset mood.Preset, limit int) []model.RecommendationItem
}

// RecommendationService 推荐聚合服务
// 并发扇出到被选中的目录，全部完成后拼装结果
type RecommendationService struct {
	music  Provider
	movies Provider
	games  Provider
}

// NewRecommendationService 创建聚合服务
func NewRecommendationService(music, movies, games Provider) *RecommendationService {
	return &RecommendationService{
		music:  music,
		movies: movies,
		games:  games,
	}
}

// Get 获取指定心情和类型的聚合推荐
// 未知心情直接返回 mood.ErrUnknownMood，不发起任何外部请求；
// 被筛选掉的分类返回空列表，三个分类全空也是合法响应
func (s *RecommendationService) Get(label, typeFilter string) (*model.Recommendations, error) {
	preset, err := mood.Lookup(label)
	if err != nil {
		return nil, err
	}

	cacheKey := "rec:" + label + ":" + typeFilter
	if utils.Cache != nil {
		if cached, ok := utils.CacheGet(cacheKey); ok {
			if recs, ok := cached.(*model.Recommendations); ok {
				return recs, nil
			}
		}
	}

	recs := &model.Recommendations{
		Music:  []model.RecommendationItem{},
		Movies: []model.RecommendationItem{},
		Games:  []model.RecommendationItem{},
	}

	var wg sync.WaitGroup

	if typeFilter == TypeAll || typeFilter == TypeMusic {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs.Music = s.music.Fetch(label, preset, MaxItemsPerCategory)
		}()
	}

	if typeFilter == TypeAll || typeFilter == TypeMovies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs.Movies = s.movies.Fetch(label, preset, MaxItemsPerCategory)
		}()
	}

	if typeFilter == TypeAll || typeFilter == TypeGames {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs.Games = s.games.Fetch(label, preset, MaxItemsPerCategory)
		}()
	}

	wg.Wait()

	if utils.Cache != nil {
		utils.CacheSet(cacheKey, recs, 5*time.Minute)
	}

	return recs, nil
}

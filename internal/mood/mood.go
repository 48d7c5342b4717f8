package mood

import (
	"errors"
	"sort"
)

// ErrUnknownMood 未知心情
var ErrUnknownMood = errors.New("unknown mood")

// SpotifyParams Spotify 查询参数
type SpotifyParams struct {
	SeedGenres    []string // 流派种子，转换为搜索限定词
	TargetValence float64  // 目标愉悦度 0-1
	TargetEnergy  float64  // 目标能量 0-1
	MinPopularity int
}

// TMDBParams TMDB 电影发现参数
type TMDBParams struct {
	GenreIDs string // 逗号分隔的流派 ID
	SortBy   string // 排序方式
}

// RAWGParams RAWG 游戏列表参数
type RAWGParams struct {
	Genres string // 逗号分隔的流派 slug
}

// Preset 单个心情对应的各目录查询参数
type Preset struct {
	Spotify SpotifyParams
	TMDB    TMDBParams
	RAWG    RAWGParams
}

// presets 心情 → 各目录参数的静态映射表，进程启动时即固定，从不修改
var presets = map[string]Preset{
	"happy": {
		Spotify: SpotifyParams{
			SeedGenres:    []string{"pop", "happy", "dance"},
			TargetValence: 0.8,
			TargetEnergy:  0.8,
			MinPopularity: 50,
		},
		TMDB: TMDBParams{GenreIDs: "35,16,10402", SortBy: "popularity.desc"}, // 喜剧/动画/音乐
		RAWG: RAWGParams{Genres: "indie,casual,family"},
	},
	"sad": {
		Spotify: SpotifyParams{
			SeedGenres:    []string{"acoustic", "sad", "indie"},
			TargetValence: 0.3,
			TargetEnergy:  0.4,
			MinPopularity: 50,
		},
		TMDB: TMDBParams{GenreIDs: "18,10749", SortBy: "vote_average.desc"}, // 剧情/爱情
		RAWG: RAWGParams{Genres: "rpg,adventure"},
	},
	"energetic": {
		Spotify: SpotifyParams{
			SeedGenres:    []string{"electronic", "dance", "rock"},
			TargetValence: 0.7,
			TargetEnergy:  0.9,
			MinPopularity: 50,
		},
		TMDB: TMDBParams{GenreIDs: "28,12,878", SortBy: "popularity.desc"}, // 动作/冒险/科幻
		RAWG: RAWGParams{Genres: "action,racing"},
	},
	"relaxed": {
		Spotify: SpotifyParams{
			SeedGenres:    []string{"ambient", "classical", "chill"},
			TargetValence: 0.5,
			TargetEnergy:  0.3,
			MinPopularity: 50,
		},
		TMDB: TMDBParams{GenreIDs: "99,36,10751", SortBy: "vote_average.desc"}, // 纪录片/历史/家庭
		RAWG: RAWGParams{Genres: "puzzle,strategy"},
	},
	"angry": {
		Spotify: SpotifyParams{
			SeedGenres:    []string{"metal", "rock"},
			TargetValence: 0.3,
			TargetEnergy:  0.9,
			MinPopularity: 50,
		},
		TMDB: TMDBParams{GenreIDs: "28,53", SortBy: "popularity.desc"}, // 动作/惊悚
		RAWG: RAWGParams{Genres: "shooter,fighting"},
	},
}

// Lookup 查找心情对应的预设，未知心情返回 ErrUnknownMood
func Lookup(label string) (Preset, error) {
	p, ok := presets[label]
	if !ok {
		return Preset{}, ErrUnknownMood
	}
	return p, nil
}

// Known 判断心情标签是否合法
func Known(label string) bool {
	_, ok := presets[label]
	return ok
}

// Moods 返回所有已知心情标签（字典序，便于展示）
func Moods() []string {
	labels := make([]string, 0, len(presets))
	for label := range presets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

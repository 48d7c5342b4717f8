package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// 收藏内容类型
const (
	ContentTypeMusic = "music"
	ContentTypeMovie = "movie"
	ContentTypeGame  = "game"
)

// Favorite 收藏
// (user_id, content_type, content_id) 组合唯一，由数据库约束保证
type Favorite struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_user_content"`
	ContentType string    `json:"content_type" db:"content_type" gorm:"uniqueIndex:idx_user_content"`
	ContentID   string    `json:"content_id" db:"content_id" gorm:"uniqueIndex:idx_user_content"`
	Title       string    `json:"title" db:"title"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RecommendationItem 推荐条目的统一结构
// 三个外部目录（音乐/电影/游戏）的原始返回都归一化为该结构，
// ID 同时作为收藏时的 content_id 使用
type RecommendationItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	PreviewURL string `json:"preview_url,omitempty"`
}

// Recommendations 聚合推荐结果
type Recommendations struct {
	Music  []RecommendationItem `json:"music"`
	Movies []RecommendationItem `json:"movies"`
	Games  []RecommendationItem `json:"games"`
}

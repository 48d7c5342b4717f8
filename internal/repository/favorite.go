package repository

import (
	"errors"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/model"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrDuplicateFavorite 重复收藏
var ErrDuplicateFavorite = errors.New("favorite already exists")

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add 添加收藏
// 重复插入依赖 (user_id, content_type, content_id) 唯一索引拦截，
// 统一返回 ErrDuplicateFavorite
func (r *FavoriteRepository) Add(userID int, contentType, contentID, title string) error {
	favorite := &model.Favorite{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Title:       title,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(favorite).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

// Remove 取消收藏（删除不存在的记录不算错误）
func (r *FavoriteRepository) Remove(userID int, contentType, contentID string) error {
	return r.db.Where("user_id = ? AND content_type = ? AND content_id = ?",
		userID, contentType, contentID).Delete(&model.Favorite{}).Error
}

// ListByUser 获取用户收藏列表（按收藏时间倒序）
func (r *FavoriteRepository) ListByUser(userID int) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// CountByUser 统计用户收藏数量
func (r *FavoriteRepository) CountByUser(userID int) (int, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}

// isDuplicateKeyError 识别唯一约束冲突
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// lib/pq 驱动的 unique_violation
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}

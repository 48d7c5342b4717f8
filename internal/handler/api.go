package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jhorsb/moodmatcher-backend/internal/middleware"
	"github.com/jhorsb/moodmatcher-backend/internal/mood"
	"github.com/jhorsb/moodmatcher-backend/internal/repository"
	"github.com/jhorsb/moodmatcher-backend/internal/service"
	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

// Moods 返回可选的心情标签列表
func (h *Handler) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": mood.Moods()})
}

// recommendationsQuery 推荐查询参数
type recommendationsQuery struct {
	Mood string `form:"mood" binding:"required,mood"`
	Type string `form:"type" binding:"omitempty,oneof=all music movies games"`
}

// Recommendations 按心情和类型返回聚合推荐
func (h *Handler) Recommendations(c *gin.Context) {
	var query recommendationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "无效的心情")
		return
	}
	if query.Type == "" {
		query.Type = service.TypeAll
	}

	recs, err := h.Recommend.Get(query.Mood, query.Type)
	if err != nil {
		if errors.Is(err, mood.ErrUnknownMood) {
			utils.BadRequest(c, "无效的心情")
			return
		}
		log.Printf("[Recommend] 聚合失败 (mood: %s, type: %s): %v", query.Mood, query.Type, err)
		utils.InternalServerError(c, "获取推荐失败")
		return
	}

	c.JSON(http.StatusOK, recs)
}

// favoriteRequest 添加/删除收藏请求体
type favoriteRequest struct {
	Type      string `json:"type" binding:"required,oneof=music movie game"`
	ContentID string `json:"contentId" binding:"required"`
	Title     string `json:"title"`
}

// AddFavorite 添加收藏
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Unauthorized(c, "")
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法")
		return
	}

	if err := h.Repos.Favorite.Add(userID, req.Type, req.ContentID, req.Title); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			utils.BadRequest(c, "已在收藏中")
			return
		}
		log.Printf("[Favorite] 添加失败 (user: %d): %v", userID, err)
		utils.InternalServerError(c, "添加收藏失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已添加收藏"})
}

// RemoveFavorite 取消收藏（删除不存在的记录同样返回成功）
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Unauthorized(c, "")
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法")
		return
	}

	if err := h.Repos.Favorite.Remove(userID, req.Type, req.ContentID); err != nil {
		log.Printf("[Favorite] 删除失败 (user: %d): %v", userID, err)
		utils.InternalServerError(c, "取消收藏失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已取消收藏"})
}

// ListFavorites 获取当前用户的收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Unauthorized(c, "")
		return
	}

	favorites, err := h.Repos.Favorite.ListByUser(userID)
	if err != nil {
		log.Printf("[Favorite] 查询失败 (user: %d): %v", userID, err)
		utils.InternalServerError(c, "获取收藏失败")
		return
	}

	c.JSON(http.StatusOK, favorites)
}

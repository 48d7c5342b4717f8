package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jhorsb/moodmatcher-backend/internal/middleware"
	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

// registerRequest 注册请求体
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginRequest 登录请求体
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authResponse 注册/登录统一返回
type authResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法")
		return
	}

	// 检查邮箱是否已存在
	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "注册失败")
		return
	}
	if existing != nil {
		utils.BadRequest(c, "该邮箱已被注册")
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Username, req.Password)
	if err != nil {
		log.Printf("[Auth] 创建用户失败: %v", err)
		utils.InternalServerError(c, "注册失败")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("[Auth] 生成令牌失败: %v", err)
		utils.InternalServerError(c, "注册失败")
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "登录失败")
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("[Auth] 生成令牌失败: %v", err)
		utils.InternalServerError(c, "登录失败")
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Me 当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Unauthorized(c, "")
		return
	}

	user, err := h.Repos.User.FindByID(userID)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "获取用户信息失败")
		return
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

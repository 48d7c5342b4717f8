package service

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/utils"
	"golang.org/x/sync/singleflight"
)

// spotifyTokenURL Spotify 客户端凭证模式的令牌端点
const spotifyTokenURL = "https://accounts.spotify.com/api/token"

// TokenCache Spotify 访问令牌缓存
// 令牌在有效期内直接复用，过期后惰性换取新令牌；
// 使用 singleflight 避免并发请求重复换取
type TokenCache struct {
	clientID     string
	clientSecret string
	tokenURL     string
	client       *utils.HTTPClient
	now          func() time.Time

	group  singleflight.Group
	mu     sync.RWMutex
	token  string
	expiry time.Time
}

// NewTokenCache 创建令牌缓存
func NewTokenCache(clientID, clientSecret string, client *utils.HTTPClient) *TokenCache {
	return &TokenCache{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     spotifyTokenURL,
		client:       client,
		now:          time.Now,
	}
}

// Token 返回有效的访问令牌，必要时向授权服务器换取
func (t *TokenCache) Token() (string, error) {
	// 快路径：令牌仍然有效
	if token, ok := t.cached(); ok {
		return token, nil
	}

	val, err, _ := t.group.Do("token", func() (interface{}, error) {
		// 进入 singleflight 后可能已被并发刷新
		if token, ok := t.cached(); ok {
			return token, nil
		}
		return t.refresh()
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

// cached 返回未过期的缓存令牌
func (t *TokenCache) cached() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.token != "" && t.now().Before(t.expiry) {
		return t.token, true
	}
	return "", false
}

// refresh 执行 client_credentials 授权交换
func (t *TokenCache) refresh() (string, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(t.clientID + ":" + t.clientSecret))

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	err := t.client.PostFormJSON(t.tokenURL, map[string]string{
		"Authorization": "Basic " + basic,
	}, form, &result)
	if err != nil {
		return "", fmt.Errorf("换取 Spotify 令牌失败: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("授权服务器未返回访问令牌")
	}

	t.mu.Lock()
	t.token = result.AccessToken
	t.expiry = t.now().Add(time.Duration(result.ExpiresIn) * time.Second)
	t.mu.Unlock()

	return result.AccessToken, nil
}

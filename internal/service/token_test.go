package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jhorsb/moodmatcher-backend/internal/utils"
)

// newTokenServer 返回统计交换次数的假授权服务器
func newTokenServer(t *testing.T, exchanges *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Basic ") {
			t.Errorf("缺少 Basic 认证头")
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("解析表单失败: %v", err)
		}
		if got := r.PostFormValue("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}
		n := atomic.AddInt32(exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600}`, n)
	}))
}

func TestTokenCacheReusesValidToken(t *testing.T) {
	var exchanges int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	tc := NewTokenCache("client-id", "client-secret", utils.NewHTTPClient(time.Second))
	tc.tokenURL = srv.URL

	first, err := tc.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	second, err := tc.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	if first != "tok-1" || second != "tok-1" {
		t.Errorf("Token() = %q, %q, want tok-1 两次", first, second)
	}
	if got := atomic.LoadInt32(&exchanges); got != 1 {
		t.Errorf("有效期内交换了 %d 次, want 1", got)
	}
}

func TestTokenCacheRefreshesAfterExpiry(t *testing.T) {
	var exchanges int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	now := time.Now()
	tc := NewTokenCache("client-id", "client-secret", utils.NewHTTPClient(time.Second))
	tc.tokenURL = srv.URL
	tc.now = func() time.Time { return now }

	first, err := tc.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	// 拨快时钟越过有效期，应触发第二次交换
	now = now.Add(2 * time.Hour)

	second, err := tc.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	if first != "tok-1" || second != "tok-2" {
		t.Errorf("Token() = %q → %q, want tok-1 → tok-2", first, second)
	}
	if got := atomic.LoadInt32(&exchanges); got != 2 {
		t.Errorf("交换了 %d 次, want 2", got)
	}
}

func TestTokenCacheExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid client", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tc := NewTokenCache("bad-id", "bad-secret", utils.NewHTTPClient(time.Second))
	tc.tokenURL = srv.URL

	if _, err := tc.Token(); err == nil {
		t.Fatal("Token() error = nil, want error")
	}
}

package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jhorsb/moodmatcher-backend/internal/mood"
)

func newSpotifyTestService(t *testing.T, handler http.HandlerFunc) (*SpotifyService, func()) {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":3600}`)
	}))
	apiSrv := httptest.NewServer(handler)

	svc := NewSpotifyService("client-id", "client-secret")
	svc.baseURL = apiSrv.URL
	svc.tokens.tokenURL = tokenSrv.URL

	return svc, func() {
		tokenSrv.Close()
		apiSrv.Close()
	}
}

func TestSpotifyFetchPreviewFirst(t *testing.T) {
	var gotQuery string
	svc, cleanup := newSpotifyTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tracks":{"items":[
			{"id":"t1","name":"无预览一","artists":[{"name":"歌手甲"}],"preview_url":""},
			{"id":"t2","name":"有预览一","artists":[{"name":"歌手乙"}],"preview_url":"https://p.scdn.co/t2"},
			{"id":"t3","name":"无预览二","artists":[{"name":"歌手丙"}],"preview_url":""},
			{"id":"t4","name":"有预览二","artists":[{"name":"歌手丁"}],"preview_url":"https://p.scdn.co/t4"}
		]}}`)
	})
	defer cleanup()

	preset, err := mood.Lookup("happy")
	if err != nil {
		t.Fatal(err)
	}

	items := svc.Fetch("happy", preset, 3)
	if len(items) != 3 {
		t.Fatalf("Fetch() 返回 %d 条, want 3", len(items))
	}

	// 带试听链接的排在前面
	if items[0].ID != "t2" || items[1].ID != "t4" {
		t.Errorf("前两条 = %s, %s, want t2, t4", items[0].ID, items[1].ID)
	}
	if items[0].PreviewURL == "" || items[2].PreviewURL != "" {
		t.Errorf("试听链接排序不正确: %+v", items)
	}
	if items[0].Subtitle != "歌手乙" {
		t.Errorf("Subtitle = %q, want 歌手乙", items[0].Subtitle)
	}

	if !strings.Contains(gotQuery, "happy") || !strings.Contains(gotQuery, "genre:pop") {
		t.Errorf("搜索词 = %q, 应包含心情与流派限定词", gotQuery)
	}
}

func TestSpotifyFetchUpstreamFailure(t *testing.T) {
	svc, cleanup := newSpotifyTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer cleanup()

	preset, _ := mood.Lookup("sad")
	items := svc.Fetch("sad", preset, 15)
	if len(items) != 0 {
		t.Errorf("上游失败应返回空列表, got %d 条", len(items))
	}
}

func TestSpotifyFetchTokenFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid client", http.StatusUnauthorized)
	}))
	defer tokenSrv.Close()

	svc := NewSpotifyService("bad-id", "bad-secret")
	svc.tokens.tokenURL = tokenSrv.URL

	preset, _ := mood.Lookup("relaxed")
	items := svc.Fetch("relaxed", preset, 15)
	if len(items) != 0 {
		t.Errorf("令牌失败应返回空列表, got %d 条", len(items))
	}
}

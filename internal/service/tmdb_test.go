package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jhorsb/moodmatcher-backend/internal/mood"
)

func TestTMDBFetchNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("path = %q, want /discover/movie", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q", query.Get("api_key"))
		}
		if query.Get("with_genres") == "" || query.Get("sort_by") == "" {
			t.Error("缺少 with_genres 或 sort_by 参数")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[
			{"id":603,"title":"黑客帝国","release_date":"1999-03-30","vote_average":8.2},
			{"id":680,"title":"低俗小说","release_date":"","vote_average":8.5}
		]}`)
	}))
	defer srv.Close()

	svc := NewTMDBService("test-key")
	svc.baseURL = srv.URL

	preset, err := mood.Lookup("energetic")
	if err != nil {
		t.Fatal(err)
	}

	items := svc.Fetch("energetic", preset, 15)
	if len(items) != 2 {
		t.Fatalf("Fetch() 返回 %d 条, want 2", len(items))
	}

	if items[0].ID != "603" {
		t.Errorf("ID = %q, want 603", items[0].ID)
	}
	if items[0].Title != "黑客帝国" {
		t.Errorf("Title = %q", items[0].Title)
	}
	if items[0].Subtitle != "1999 · 4.1/5" {
		t.Errorf("Subtitle = %q, want 1999 · 4.1/5", items[0].Subtitle)
	}
	// 缺失上映日期时年份留空
	if items[1].Subtitle != " · 4.2/5" {
		t.Errorf("Subtitle = %q, want \" · 4.2/5\"", items[1].Subtitle)
	}
}

func TestTMDBFetchTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[`)
		for i := 0; i < 20; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id":%d,"title":"电影%d","release_date":"2020-01-01","vote_average":7}`, i, i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	svc := NewTMDBService("test-key")
	svc.baseURL = srv.URL

	preset, _ := mood.Lookup("happy")
	items := svc.Fetch("happy", preset, MaxItemsPerCategory)
	if len(items) != MaxItemsPerCategory {
		t.Errorf("Fetch() 返回 %d 条, want %d", len(items), MaxItemsPerCategory)
	}
}

func TestTMDBFetchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewTMDBService("test-key")
	svc.baseURL = srv.URL

	preset, _ := mood.Lookup("sad")
	items := svc.Fetch("sad", preset, 15)
	if len(items) != 0 {
		t.Errorf("上游失败应返回空列表, got %d 条", len(items))
	}
}

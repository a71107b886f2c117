package database

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/nexusconsult-backend/errs"
)

func TestRestStoreSelectBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/portfolio_projects" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("select") != "*" || q.Get("category") != "eq.Design" || q.Get("published") != "eq.true" {
			t.Errorf("unexpected filters: %v", q)
		}
		if q.Get("order") != "featured.desc,created_at.desc" || q.Get("limit") != "3" {
			t.Errorf("unexpected order/limit: %v", q)
		}
		if r.Header.Get("apikey") != "anon" || r.Header.Get("Authorization") != "Bearer anon" {
			t.Errorf("missing auth headers")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"name":"x","category":"Design"}]`)
	}))
	defer srv.Close()

	s := NewRestStore(srv.URL+"/", "anon", srv.Client())
	q := Query{}.Eq("published", true).Eq("category", "Design").
		OrderBy("featured", true).OrderBy("created_at", true).WithLimit(3)

	var got []row
	if err := s.Select(context.Background(), "portfolio_projects", q, &got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].Name != "x" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestRestStoreErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"42P01","message":"relation \"public.blog_posts\" does not exist"}`)
	}))
	defer srv.Close()

	s := NewRestStore(srv.URL, "anon", srv.Client())
	var got []row
	err := s.Select(context.Background(), "blog_posts", Query{}, &got)

	var remote *errs.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Status != http.StatusNotFound || remote.Message != `relation "public.blog_posts" does not exist` {
		t.Fatalf("unexpected remote error: %+v", remote)
	}
}

func TestRestStoreInsert(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Prefer") != "return=minimal" {
			t.Errorf("unexpected request %s prefer=%q", r.Method, r.Header.Get("Prefer"))
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewRestStore(srv.URL, "anon", srv.Client())
	if err := s.Insert(context.Background(), "newsletter_subscriptions", map[string]any{"email": "a@b.co"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if body["email"] != "a@b.co" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRestStoreTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewRestStore(url, "anon", nil)
	err := s.Insert(context.Background(), "contact_submissions", map[string]any{"name": "x"})
	var remote *errs.RemoteError
	if !errors.As(err, &remote) || remote.Status != 0 || remote.Message == "" {
		t.Fatalf("expected transport RemoteError, got %v", err)
	}
}

func TestErrorMessageFallsBackToStatus(t *testing.T) {
	if got := errorMessage(503, nil); got != "request failed with status 503" {
		t.Fatalf("errorMessage = %q", got)
	}
	if got := errorMessage(500, []byte("upstream timeout")); got != "upstream timeout" {
		t.Fatalf("errorMessage = %q", got)
	}
}

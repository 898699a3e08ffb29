package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelfsync/internal/config"
)

func TestNewServiceReturnsNoopWithoutTopic(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = ""

	svc := NewService(&cfg)
	if _, ok := svc.(noopService); !ok {
		t.Fatalf("expected noop service, got %T", svc)
	}
	if err := svc.NotifyMatchFound(context.Background(), "Dune", "Frank Herbert"); err != nil {
		t.Errorf("noop notify returned error: %v", err)
	}
}

func TestNotifyMatchFoundSendsNtfyRequest(t *testing.T) {
	var gotTitle, gotTags, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		gotTags = r.Header.Get("Tags")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := NewService(&cfg)

	if err := svc.NotifyMatchFound(context.Background(), "Project Hail Mary", "Andy Weir"); err != nil {
		t.Fatalf("NotifyMatchFound failed: %v", err)
	}
	if gotTitle != "Shelfsync - Book Matched" {
		t.Errorf("title header %q", gotTitle)
	}
	if gotTags != "shelfsync,match" {
		t.Errorf("tags header %q", gotTags)
	}
	if gotBody != "Matched across platforms: Project Hail Mary by Andy Weir" {
		t.Errorf("body %q", gotBody)
	}
}

func TestNotifyMatchFoundDisabled(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	cfg.Notifications.Match = false
	svc := NewService(&cfg)

	if err := svc.NotifyMatchFound(context.Background(), "Dune", ""); err != nil {
		t.Fatalf("NotifyMatchFound failed: %v", err)
	}
	if called {
		t.Error("match notifications disabled but request was sent")
	}
}

func TestNotifyErrorSurfacesServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic not found", http.StatusNotFound)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := NewService(&cfg)

	err := svc.NotifyError(context.Background(), errors.New("boom"), "observe")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

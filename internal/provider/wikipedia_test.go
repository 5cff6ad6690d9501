package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// wikiStub answers both the search and extract calls of the action API.
func wikiStub(t *testing.T, title, extract string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("list") {
		case "search":
			if title == "" {
				w.Write([]byte(`{"query": {"search": []}}`))
				return
			}
			w.Write([]byte(`{"query": {"search": [{"title": "` + title + `"}]}}`))
		default:
			if got := r.URL.Query().Get("titles"); got != title {
				t.Errorf("expected summary for title %q, got %q", title, got)
			}
			if got := r.URL.Query().Get("exsentences"); got != "2" {
				t.Errorf("expected two-sentence summary, got exsentences=%q", got)
			}
			w.Write([]byte(`{"query": {"pages": {"42": {"extract": "` + extract + `"}}}}`))
		}
	}))
}

func TestWikipedia_SearchAndSummary(t *testing.T) {
	srv := wikiStub(t, "Go (programming language)", "Go is a statically typed language. It was designed at Google.")
	defer srv.Close()

	wiki := NewWikipedia(srv.URL)
	answer, ok, err := wiki.Query(context.Background(), "go language")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if !ok {
		t.Fatal("expected an answer")
	}
	if !strings.HasPrefix(answer, "According to Wikipedia, ") {
		t.Errorf("expected attribution prefix, got %q", answer)
	}
	if !strings.Contains(answer, "Go is a statically typed language.") {
		t.Errorf("expected summary text, got %q", answer)
	}
}

func TestWikipedia_NoSearchResults(t *testing.T) {
	srv := wikiStub(t, "", "")
	defer srv.Close()

	wiki := NewWikipedia(srv.URL)
	_, ok, err := wiki.Query(context.Background(), "gibberish zzzz")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if ok {
		t.Error("expected no answer when search is empty")
	}
}

func TestWikipedia_EmptyExtract(t *testing.T) {
	srv := wikiStub(t, "Some Page", "")
	defer srv.Close()

	wiki := NewWikipedia(srv.URL)
	_, ok, err := wiki.Query(context.Background(), "some page")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if ok {
		t.Error("expected no answer when the extract is empty")
	}
}

func TestWikipedia_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	wiki := NewWikipedia(srv.URL)
	_, _, err := wiki.Query(context.Background(), "anything")
	if err == nil {
		t.Error("expected an error on 503")
	}
}

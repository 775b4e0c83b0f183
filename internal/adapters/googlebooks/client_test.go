package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tasklane/tasklane/internal/domain/model"
)

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestFetch_MapsVolumes(t *testing.T) {
	c := serve(t, http.StatusOK, `{
		"items": [
			{"id": "v1", "volumeInfo": {
				"title": "The Go Programming Language",
				"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
				"description": "A book about Go.",
				"averageRating": 4.5
			}},
			{"id": "v2", "volumeInfo": {"title": "Untitled"}}
		]
	}`)

	books, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books", len(books))
	}

	first := books[0]
	if first.Title != "The Go Programming Language" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Author != "Alan A. A. Donovan, Brian W. Kernighan" {
		t.Errorf("author = %q", first.Author)
	}
	if first.Rating != 90 {
		t.Errorf("rating = %d", first.Rating)
	}

	second := books[1]
	if second.Description != "<No description found>" {
		t.Errorf("missing description mapped to %q", second.Description)
	}
	if second.Author != "Unknown" {
		t.Errorf("missing authors mapped to %q", second.Author)
	}
}

func TestFetch_StableIDs(t *testing.T) {
	body := `{"items": [{"id": "v1", "volumeInfo": {"title": "T"}}]}`
	c1 := serve(t, http.StatusOK, body)
	c2 := serve(t, http.StatusOK, body)

	b1, err := c1.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b2, err := c2.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if b1[0].ID != b2[0].ID {
		t.Errorf("same volume mapped to different ids: %s vs %s", b1[0].ID, b2[0].ID)
	}
}

func TestFetch_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 500)
	c := serve(t, http.StatusOK, `{
		"items": [{"id": "v1", "volumeInfo": {"title": "T", "description": "`+long+`"}}]
	}`)

	books, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := books[0].Description
	if utf8.RuneCountInString(got) != model.BookDescriptionMax {
		t.Errorf("truncated to %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncation not marked: %q", got[len(got)-10:])
	}
}

func TestFetch_UpstreamError(t *testing.T) {
	c := serve(t, http.StatusBadGateway, "")
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

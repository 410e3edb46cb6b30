package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-key", server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestByIMDbIDMatch(t *testing.T) {
	var gotKey, gotID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		gotID = r.URL.Query().Get("i")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Title":"The Matrix","Year":"1999","Type":"movie","imdbID":"tt0133093","imdbRating":"8.7"}`))
	})

	record, err := client.ByIMDbID(context.Background(), "tt0133093")
	if err != nil {
		t.Fatalf("ByIMDbID: %v", err)
	}
	if gotKey != "test-key" || gotID != "tt0133093" {
		t.Errorf("request params = (%q, %q)", gotKey, gotID)
	}
	if record.Title != "The Matrix" || record.Year != "1999" {
		t.Errorf("record = %+v", record)
	}
}

func TestByIMDbIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	})

	_, err := client.ByIMDbID(context.Background(), "tt0000000")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestByIMDbIDTransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ByIMDbID(context.Background(), "tt0133093")
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("transport failure must not look like a provider miss")
	}
}

func TestByIMDbIDRejectsEmptyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty id should not reach the network")
	})
	if _, err := client.ByIMDbID(context.Background(), "  "); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", "https://example.com"); err == nil {
		t.Error("expected error for missing api key")
	}
	if _, err := New("key", ""); err == nil {
		t.Error("expected error for missing base url")
	}
}

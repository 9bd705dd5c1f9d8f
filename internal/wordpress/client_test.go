package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/users/me" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		username, password, ok := r.BasicAuth()
		if !ok || username != "writer" || password != "abcd efgh" {
			t.Error("Request should carry basic auth credentials")
		}
		json.NewEncoder(w).Encode(UserInfo{ID: 7, Name: "Writer"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "writer", "abcd efgh", 5*time.Second)
	info, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if info.ID != 7 {
		t.Errorf("Expected user id 7, got %d", info.ID)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		kind    ErrKind
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, ErrKindInvalidCredentials, "Invalid credentials. Please check your username and application password."},
		{"not found", http.StatusNotFound, ErrKindUnavailable, "WordPress REST API not found. Please check your site URL."},
		{"server error", http.StatusInternalServerError, ErrKindConnection, "Failed to connect to WordPress site."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "writer", "pw", 5*time.Second)
			_, err := client.Me(context.Background())

			var wpErr *Error
			if !errors.As(err, &wpErr) {
				t.Fatalf("Expected a classified error, got %v", err)
			}
			if wpErr.Kind != c.kind {
				t.Errorf("Expected kind %v, got %v", c.kind, wpErr.Kind)
			}
			if wpErr.Error() != c.message {
				t.Errorf("Expected message %q, got %q", c.message, wpErr.Error())
			}
		})
	}
}

func TestClient_UnreachableHostIsConnectionError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "writer", "pw", 500*time.Millisecond)
	_, err := client.Me(context.Background())

	var wpErr *Error
	if !errors.As(err, &wpErr) || wpErr.Kind != ErrKindConnection {
		t.Errorf("Network failure should classify as connection error, got %v", err)
	}
}

func TestClient_CreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Bad request body: %v", err)
		}
		if req.Title != "Hello" || req.Status != "draft" {
			t.Errorf("Unexpected payload: %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Post{ID: 42, Link: "https://site/?p=42", Status: "draft"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "writer", "pw", 5*time.Second)
	post, err := client.CreatePost(context.Background(), &PostRequest{
		Title:      "Hello",
		Content:    "Body",
		Status:     "draft",
		Categories: []int{2},
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if post.ID != 42 || post.Link != "https://site/?p=42" {
		t.Errorf("Unexpected post: %+v", post)
	}
}

func TestClient_UploadMedia(t *testing.T) {
	imageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not-really-a-png"))
	}))
	defer imageSrv.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/media" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("Content type should follow the downloaded image, got %q", ct)
		}
		if cd := r.Header.Get("Content-Disposition"); cd != `attachment; filename="cover.jpg"` {
			t.Errorf("Unexpected content disposition: %q", cd)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int{"id": 501})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "writer", "pw", 5*time.Second)
	mediaID, err := client.UploadMedia(context.Background(), imageSrv.URL+"/cover.png", "cover.jpg")
	if err != nil {
		t.Fatalf("UploadMedia failed: %v", err)
	}
	if mediaID != 501 {
		t.Errorf("Expected media id 501, got %d", mediaID)
	}
}

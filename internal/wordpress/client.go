// Package wordpress is a minimal client for the WordPress REST API.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrKind classifies remote failures into the three categories callers
// depend on. The Error() strings are fixed and must not change.
type ErrKind int

const (
	// ErrKindInvalidCredentials covers HTTP 401 from the remote site
	ErrKindInvalidCredentials ErrKind = iota
	// ErrKindUnavailable covers HTTP 404, i.e. the REST API is not reachable
	ErrKindUnavailable
	// ErrKindConnection covers every other remote failure
	ErrKindConnection
)

// Error is a classified WordPress API failure
type Error struct {
	Kind   ErrKind
	Status int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrKindInvalidCredentials:
		return "Invalid credentials. Please check your username and application password."
	case ErrKindUnavailable:
		return "WordPress REST API not found. Please check your site URL."
	default:
		return "Failed to connect to WordPress site."
	}
}

func classify(status int) *Error {
	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: ErrKindInvalidCredentials, Status: status}
	case http.StatusNotFound:
		return &Error{Kind: ErrKindUnavailable, Status: status}
	default:
		return &Error{Kind: ErrKindConnection, Status: status}
	}
}

// API is the subset of the WordPress REST API the publisher uses
type API interface {
	Me(ctx context.Context) (*UserInfo, error)
	CreatePost(ctx context.Context, post *PostRequest) (*Post, error)
	UpdatePost(ctx context.Context, postID int, post *PostRequest) (*Post, error)
	DeletePost(ctx context.Context, postID int) error
	ListPosts(ctx context.Context, page, perPage int) ([]Post, error)
	UploadMedia(ctx context.Context, imageURL, filename string) (int, error)
}

// Client talks to one WordPress site with an application password
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// NewClient creates a WordPress client for a site. The base URL is the
// site root; the REST prefix is appended per request.
func NewClient(siteURL, username, appPassword string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(siteURL, "/"),
		username: username,
		password: appPassword,
		http:     &http.Client{Timeout: timeout},
	}
}

// UserInfo is the remote users/me response
type UserInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostRequest is the payload for creating or updating a remote post
type PostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Categories    []int  `json:"categories,omitempty"`
	FeaturedMedia *int   `json:"featured_media,omitempty"`
}

// Post is a remote post as returned by the API
type Post struct {
	ID     int    `json:"id"`
	Link   string `json:"link"`
	Status string `json:"status"`
	Title  struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Date string `json:"date"`
}

// Me probes the authenticated user endpoint. A nil error means the
// credentials are valid and the REST API is reachable.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.do(ctx, http.MethodGet, "/wp-json/wp/v2/users/me?context=edit", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreatePost creates a remote post
func (c *Client) CreatePost(ctx context.Context, post *PostRequest) (*Post, error) {
	var created Post
	if err := c.do(ctx, http.MethodPost, "/wp-json/wp/v2/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost updates a remote post by id
func (c *Client) UpdatePost(ctx context.Context, postID int, post *PostRequest) (*Post, error) {
	var updated Post
	path := "/wp-json/wp/v2/posts/" + strconv.Itoa(postID)
	if err := c.do(ctx, http.MethodPost, path, post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost deletes a remote post by id
func (c *Client) DeletePost(ctx context.Context, postID int) error {
	path := "/wp-json/wp/v2/posts/" + strconv.Itoa(postID) + "?force=true"
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListPosts lists the site's posts
func (c *Client) ListPosts(ctx context.Context, page, perPage int) ([]Post, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 10
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("context", "edit")

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/wp-json/wp/v2/posts?"+params.Encode(), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UploadMedia downloads the image and uploads it as a media item,
// returning the remote media id.
func (c *Client) UploadMedia(ctx context.Context, imageURL, filename string) (int, error) {
	imgReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create image request: %w", err)
	}
	imgResp, err := c.http.Do(imgReq)
	if err != nil {
		return 0, fmt.Errorf("failed to download image: %w", err)
	}
	defer imgResp.Body.Close()
	if imgResp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("image download failed with status: %d", imgResp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(imgResp.Body, 20<<20))
	if err != nil {
		return 0, fmt.Errorf("failed to read image: %w", err)
	}
	contentType := imgResp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wp-json/wp/v2/media", bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to create media request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &Error{Kind: ErrKindConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return 0, classify(resp.StatusCode)
	}

	var media struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return 0, fmt.Errorf("failed to parse media response: %w", err)
	}
	return media.ID, nil
}

// do performs one authenticated request and classifies remote failures
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: ErrKindConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

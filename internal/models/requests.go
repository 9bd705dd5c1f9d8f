package models

import (
	"time"
)

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the payload for PUT /api/auth/profile
type UpdateProfileRequest struct {
	Username     *string        `json:"username,omitempty"`
	WritingStyle *StyleOverride `json:"writing_style,omitempty"`
	Preferences  *Preferences   `json:"preferences,omitempty"`
}

// ConnectBlogRequest is the payload for POST /api/blog/connect
type ConnectBlogRequest struct {
	URL                string `json:"url"`
	Username           string `json:"username"`
	AppPassword        string `json:"app_password"`
	DefaultStatus      string `json:"default_status,omitempty"`
	DefaultImageSource string `json:"default_image_source,omitempty"`
}

// BlogStatus reports connection state without exposing credentials
type BlogStatus struct {
	Connected   bool       `json:"connected"`
	URL         string     `json:"url,omitempty"`
	Username    string     `json:"username,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

// PublishRequest is the payload for POST /api/blog/post
type PublishRequest struct {
	ArticleID        string `json:"article_id"`
	Status           string `json:"status,omitempty"`
	FeaturedImageURL string `json:"featured_image_url,omitempty"`
}

// UpdatePostRequest is the payload for PUT /api/blog/post/:id
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// DownloadImageRequest is the payload for POST /api/images/download
type DownloadImageRequest struct {
	URL         string `json:"url"`
	DownloadURL string `json:"download_url,omitempty"`
	Source      string `json:"source,omitempty"`
}

package models

// Image is a stock photo returned by an image source
type Image struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	ThumbURL        string `json:"thumb_url,omitempty"`
	Alt             string `json:"alt,omitempty"`
	Source          string `json:"source"`
	Photographer    string `json:"photographer,omitempty"`
	PhotographerURL string `json:"photographer_url,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	Color           string `json:"color,omitempty"`
	DownloadURL     string `json:"download_url,omitempty"`
}

// ImageQuery holds image search parameters
type ImageQuery struct {
	Query       string
	Page        int
	PerPage     int
	Orientation string
	Color       string
}

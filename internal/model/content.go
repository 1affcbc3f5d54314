package model

import "time"

// ContentTypes enumerates the accepted educational content kinds.
var ContentTypes = map[string]bool{
	"article":     true,
	"video":       true,
	"podcast":     true,
	"infographic": true,
	"guide":       true,
}

// EducationalContent mirrors the `educational_contents` table. Contents are
// managed by admins and served publicly once published.
type EducationalContent struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	ContentType  string    `json:"contentType"`
	Description  string    `json:"description"`
	ContentURL   *string   `json:"contentUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

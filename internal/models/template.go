package models

import "time"

// Category classifies a template or design by print format.
type Category string

const (
	CategoryBanner  Category = "banner"
	CategoryLeaflet Category = "leaflet"
	CategoryPoster  Category = "poster"
)

// Template represents a read-only catalog entry users can start a design from.
// The catalog is seeded at startup and immutable at runtime: there is no
// insertable shape and no create/update/delete operation for templates.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	Thumbnail   string         `json:"thumbnail"`
	Description string         `json:"description"`
	DesignData  map[string]any `json:"designData"`
	CreatedAt   time.Time      `json:"createdAt"`
}

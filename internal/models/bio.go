package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BioLink is one entry of a bio page.
type BioLink struct {
	Title string `json:"title" validate:"required,max=100"`
	URL   string `json:"url" validate:"required,http_url,max=2048"`
}

// BioPageDB represents a row of bio_pages. Handles share the shortcode namespace.
type BioPageDB struct {
	Handle      string    `json:"handle" db:"handle"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Links       []byte    `json:"-" db:"links"` // JSON array of BioLink
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// BioPage is the rendered form of a bio page.
type BioPage struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Links       []BioLink `json:"links"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page decodes the stored links.
func (b *BioPageDB) Page() (*BioPage, error) {
	links := []BioLink{}
	if len(b.Links) > 0 {
		if err := json.Unmarshal(b.Links, &links); err != nil {
			return nil, err
		}
	}
	return &BioPage{
		Handle:      b.Handle,
		Title:       b.Title,
		Description: b.Description,
		Links:       links,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}

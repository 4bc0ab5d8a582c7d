package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Shortcode prefixes that select the link kind.
const (
	SnippetPrefix = "c-"
	FilePrefix    = "f-"
)

// ShortLinkDB represents a row of short_urls.
// TargetURL holds the destination URL for redirects, the raw text for
// snippets and a JSON array of object URLs for file bins.
type ShortLinkDB struct {
	Shortcode           string     `json:"shortcode" db:"shortcode"`
	TargetURL           string     `json:"target_url" db:"target_url"`
	CreatorID           *uuid.UUID `json:"creator_id,omitempty" db:"creator_id"`
	IsSnippet           bool       `json:"is_snippet" db:"is_snippet"`
	IsFile              bool       `json:"is_file" db:"is_file"`
	PasswordHash        *string    `json:"-" db:"password_hash"`
	IsPasswordProtected bool       `json:"is_password_protected" db:"is_password_protected"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
}

// OwnedBy reports whether uid created the link.
func (l *ShortLinkDB) OwnedBy(uid uuid.UUID) bool {
	return l != nil && l.CreatorID != nil && *l.CreatorID == uid
}

// ErrNotFileList is returned when a file bin value is not a JSON array of strings.
var ErrNotFileList = errors.New("file bin value is not a JSON array of URLs")

// FileURLs decodes the object URLs stored in a file bin.
func (l *ShortLinkDB) FileURLs() ([]string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(l.TargetURL), &raw); err != nil {
		return nil, err
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil || urls == nil {
		return nil, ErrNotFileList
	}
	return urls, nil
}

// DeletionDB is a scheduled deletion of a shortcode.
type DeletionDB struct {
	Shortcode string `json:"shortcode" db:"shortcode"`
	DeleteAt  int64  `json:"delete_at" db:"delete_at"` // epoch ms
	IsFile    bool   `json:"is_file" db:"is_file"`
}

// AnalyticsEvent is one redirect view.
type AnalyticsEvent struct {
	Shortcode string    `json:"shortcode" db:"shortcode"`
	TargetURL string    `json:"target_url" db:"target_url"`
	Country   string    `json:"country" db:"country"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

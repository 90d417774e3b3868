package database

import (
	"time"
)

type MediaItem struct {
	ID           string // Database UUID
	Title        string
	Description  *string
	ImageURL     string
	ThumbnailURL *string
	Category     string
	MediaKind    string
	VideoURL     *string
	AltText      string
	SortOrder    int
	Featured     bool
	Fingerprint  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Review struct {
	ID          string // Database UUID
	MemberName  string
	Rating      int
	Quote       string
	Source      string
	Approved    bool
	Photo       *string
	Featured    bool
	Fingerprint string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package database

import (
	"context"
)

type MediaRepository interface {
	GetDescriptions(ctx context.Context, category string) ([]string, error)
	GetItemCount(ctx context.Context, category string) (int, error)

	// InsertIfAbsent inserts the item unless a row with the same
	// (category, fingerprint) already exists. Returns true when a row
	// was inserted.
	InsertIfAbsent(ctx context.Context, item MediaItem) (bool, error)
}

type ReviewRepository interface {
	GetBySource(ctx context.Context, source string) ([]Review, error)
	GetReviewCount(ctx context.Context, source string) (int, error)

	InsertIfAbsent(ctx context.Context, review Review) (bool, error)
	UpdateContent(ctx context.Context, id string, rating int, quote string, photo *string) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

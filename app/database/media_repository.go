package database

import (
	"context"
	"fmt"
)

// MediaItemRepository handles database operations for synced media items
type MediaItemRepository struct {
	db *DB
}

var _ MediaRepository = (*MediaItemRepository)(nil)

func NewMediaItemRepository(db *DB) *MediaItemRepository {
	return &MediaItemRepository{db: db}
}

// GetDescriptions returns the descriptions of all stored media items for a
// category. Used as the dedup snapshot for one ingestion run.
func (r *MediaItemRepository) GetDescriptions(ctx context.Context, category string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(description, '')
		FROM media_items
		WHERE category = $1
	`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get media descriptions: %w", err)
	}
	defer rows.Close()

	var descriptions []string
	for rows.Next() {
		var description string
		if err := rows.Scan(&description); err != nil {
			return nil, fmt.Errorf("failed to scan media description: %w", err)
		}
		descriptions = append(descriptions, description)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media descriptions: %w", err)
	}

	return descriptions, nil
}

// InsertIfAbsent inserts a media item unless one with the same
// (category, fingerprint) already exists, so overlapping sync runs cannot
// double-insert the same upstream item.
func (r *MediaItemRepository) InsertIfAbsent(ctx context.Context, item MediaItem) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO media_items (
			title, description, image_url, thumbnail_url, category,
			media_kind, video_url, alt_text, sort_order, featured, fingerprint
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (category, fingerprint) DO NOTHING
	`, item.Title, item.Description, item.ImageURL, item.ThumbnailURL, item.Category,
		item.MediaKind, item.VideoURL, item.AltText, item.SortOrder, item.Featured,
		item.Fingerprint)
	if err != nil {
		return false, fmt.Errorf("failed to insert media item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetItemCount returns the number of stored media items for a category
func (r *MediaItemRepository) GetItemCount(ctx context.Context, category string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM media_items WHERE category = $1", category).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get media item count: %w", err)
	}
	return count, nil
}

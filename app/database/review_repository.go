package database

import (
	"context"
	"fmt"
)

// StoredReviewRepository handles database operations for synced reviews
type StoredReviewRepository struct {
	db *DB
}

var _ ReviewRepository = (*StoredReviewRepository)(nil)

func NewStoredReviewRepository(db *DB) *StoredReviewRepository {
	return &StoredReviewRepository{db: db}
}

// GetBySource returns all stored reviews for a source. Used as the dedup
// snapshot for one ingestion run.
func (r *StoredReviewRepository) GetBySource(ctx context.Context, source string) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, member_name, rating, quote, source, approved, photo,
		       featured, fingerprint, created_at, updated_at
		FROM reviews
		WHERE source = $1
		ORDER BY created_at
	`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID, &review.MemberName, &review.Rating, &review.Quote,
			&review.Source, &review.Approved, &review.Photo, &review.Featured,
			&review.Fingerprint, &review.CreatedAt, &review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// InsertIfAbsent inserts a review unless one with the same
// (source, fingerprint) already exists. Returns true when a row was inserted.
func (r *StoredReviewRepository) InsertIfAbsent(ctx context.Context, review Review) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (
			member_name, rating, quote, source, approved, photo, featured, fingerprint
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source, fingerprint) DO NOTHING
	`, review.MemberName, review.Rating, review.Quote, review.Source,
		review.Approved, review.Photo, review.Featured, review.Fingerprint)
	if err != nil {
		return false, fmt.Errorf("failed to insert review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// UpdateContent refreshes the mutable fields of a matched review. Ratings and
// profile photos can change upstream after the review was first synced.
func (r *StoredReviewRepository) UpdateContent(ctx context.Context, id string, rating int, quote string, photo *string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET rating = $2, quote = $3, photo = $4, updated_at = NOW()
		WHERE id = $1
	`, id, rating, quote, photo)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// GetReviewCount returns the number of stored reviews for a source
func (r *StoredReviewRepository) GetReviewCount(ctx context.Context, source string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reviews WHERE source = $1", source).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get review count: %w", err)
	}
	return count, nil
}

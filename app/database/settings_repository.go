package database

import (
	"context"
	"database/sql"
	"fmt"
)

// SiteSettingsRepository reads key/value settings maintained by the admin
// surface, e.g. a per-deployment Google Place ID override.
type SiteSettingsRepository struct {
	db *DB
}

var _ SettingsRepository = (*SiteSettingsRepository)(nil)

func NewSiteSettingsRepository(db *DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

// Get returns the value for a settings key, or an empty string when the key
// is not present.
func (r *SiteSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = $1", key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}

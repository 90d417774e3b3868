package sync

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/embercove/content-sync/app/database"
	"github.com/embercove/content-sync/app/instagram"
)

const (
	// MediaCategory is the fixed source category for synced Instagram posts.
	MediaCategory = "Instagram"

	fallbackTitle    = "Instagram Post"
	maxTitleLength   = 100
	maxAltTextLength = 200
)

type InstagramClient interface {
	FetchRecentMedia(ctx context.Context) ([]instagram.Media, error)
}

// MediaSyncer pulls recent Instagram posts and merges them into the stored
// media collection without creating duplicates.
type MediaSyncer struct {
	gate        *Gate
	client      InstagramClient
	repo        database.MediaRepository
	matcher     MediaMatcher
	accessToken string
}

func NewMediaSyncer(gate *Gate, client InstagramClient, repo database.MediaRepository,
	matcher MediaMatcher, accessToken string) *MediaSyncer {
	return &MediaSyncer{
		gate:        gate,
		client:      client,
		repo:        repo,
		matcher:     matcher,
		accessToken: accessToken,
	}
}

// Run executes one media ingestion pass. Without a configured access token
// this is a successful no-op: the Instagram integration is optional per
// deployment.
func (s *MediaSyncer) Run(ctx context.Context, key string) (*MediaReport, error) {
	if err := s.gate.Check(key); err != nil {
		return nil, err
	}

	if s.accessToken == "" {
		slog.Info("Instagram access token not configured, skipping media sync")
		return &MediaReport{Message: "Instagram access token not configured"}, nil
	}

	media, err := s.client.FetchRecentMedia(ctx)
	if err != nil {
		return nil, mediaUpstreamError(err)
	}

	report := &MediaReport{ItemsFetched: len(media)}
	if len(media) == 0 {
		slog.Info("No media returned by Instagram")
		return report, nil
	}

	// Dedup snapshot, read once; items are then classified and written
	// sequentially against this frozen view.
	existing, err := s.repo.GetDescriptions(ctx, MediaCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to load media dedup snapshot: %w", err)
	}

	// Newest first. The sort fixes sortOrder assignment independently of
	// whatever order the upstream returned.
	sort.Slice(media, func(i, j int) bool {
		return media[i].Timestamp.After(media[j].Timestamp)
	})

	for i, item := range media {
		if s.matcher.IsDuplicate(existing, item.Caption) {
			report.Skipped++
			slog.Debug("Media item already stored, skipping", "media_id", item.ID)
			continue
		}

		record := buildMediaRecord(item, i)

		inserted, err := s.repo.InsertIfAbsent(ctx, record)
		if err != nil {
			report.Skipped++
			slog.Warn("Failed to insert media item, continuing", "media_id", item.ID, "error", err)
			continue
		}
		if !inserted {
			// A concurrent run already inserted the same fingerprint.
			report.Skipped++
			slog.Debug("Media item fingerprint already present, skipping", "media_id", item.ID)
			continue
		}

		report.Synced++
	}

	slog.Info("Media sync completed",
		"fetched", report.ItemsFetched,
		"synced", report.Synced,
		"skipped", report.Skipped)

	return report, nil
}

func buildMediaRecord(item instagram.Media, sortOrder int) database.MediaItem {
	record := database.MediaItem{
		Title:       deriveTitle(item.Caption),
		ImageURL:    item.MediaURL,
		Category:    MediaCategory,
		MediaKind:   mediaKind(item.MediaType),
		AltText:     deriveAltText(item.Caption),
		SortOrder:   sortOrder,
		Featured:    false,
		Fingerprint: mediaFingerprint(item),
	}

	if item.Caption != "" {
		caption := item.Caption
		record.Description = &caption
	}

	if item.ThumbnailURL != "" {
		thumbnail := item.ThumbnailURL
		record.ThumbnailURL = &thumbnail
	}

	if item.MediaType == "VIDEO" {
		videoURL := item.MediaURL
		record.VideoURL = &videoURL
		if item.ThumbnailURL != "" {
			record.ImageURL = item.ThumbnailURL
		}
	}

	return record
}

// deriveTitle takes the first line of the caption, truncated to 100
// characters, with a fixed fallback for caption-less posts.
func deriveTitle(caption string) string {
	if caption == "" {
		return fallbackTitle
	}

	firstLine := caption
	if idx := strings.IndexByte(caption, '\n'); idx >= 0 {
		firstLine = caption[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)
	if firstLine == "" {
		return fallbackTitle
	}

	return truncate(firstLine, maxTitleLength)
}

func deriveAltText(caption string) string {
	if caption == "" {
		return fallbackTitle
	}
	return truncate(caption, maxAltTextLength)
}

// mediaFingerprint is the store-level dedup key: captioned posts dedup on
// caption text, caption-less posts on permalink and timestamp so they stay
// individually insertable.
func mediaFingerprint(item instagram.Media) string {
	if item.Caption != "" {
		return fmt.Sprintf("%x", sha256.Sum256([]byte(item.Caption)))
	}

	seed := item.Permalink + "|" + item.Timestamp.UTC().Format(time.RFC3339)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(seed)))
}

func mediaKind(mediaType string) string {
	switch mediaType {
	case "VIDEO":
		return "video"
	case "CAROUSEL_ALBUM":
		return "carousel"
	default:
		return "image"
	}
}

// truncate shortens s to at most n characters, counted in runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func mediaUpstreamError(err error) error {
	var apiErr *instagram.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}
	return &UpstreamError{Message: fmt.Sprintf("Instagram request failed: %v", err)}
}

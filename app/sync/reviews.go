package sync

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"

	"github.com/embercove/content-sync/app/database"
	"github.com/embercove/content-sync/app/places"
)

const (
	// ReviewSource is the fixed source literal for synced Google reviews.
	ReviewSource = "google"

	// PlaceIDSettingKey is the settings key holding a per-deployment place
	// override, maintained through the admin surface.
	PlaceIDSettingKey = "google_place_id"

	// defaultPlaceID is the last-resort place identifier when neither the
	// settings override nor the configured value is present.
	defaultPlaceID = "ChIJN1t_tDeuEmsRUsoyG83frY4"

	featuredRating = 5
)

type PlacesClient interface {
	FetchPlaceDetails(ctx context.Context, placeID string) (*places.PlaceDetails, error)
}

// ReviewSyncer pulls Google Places reviews and merges them into the stored
// reviews collection, refreshing previously synced reviews whose rating or
// photo changed upstream.
type ReviewSyncer struct {
	gate     *Gate
	client   PlacesClient
	reviews  database.ReviewRepository
	settings database.SettingsRepository
	matcher  ReviewMatcher
	apiKey   string
	placeID  string
}

func NewReviewSyncer(gate *Gate, client PlacesClient, reviews database.ReviewRepository,
	settings database.SettingsRepository, matcher ReviewMatcher, apiKey, placeID string) *ReviewSyncer {
	return &ReviewSyncer{
		gate:     gate,
		client:   client,
		reviews:  reviews,
		settings: settings,
		matcher:  matcher,
		apiKey:   apiKey,
		placeID:  placeID,
	}
}

// Run executes one review ingestion pass. Unlike the media adapter, a
// missing upstream credential is a hard configuration failure.
func (s *ReviewSyncer) Run(ctx context.Context, key string) (*ReviewReport, error) {
	if err := s.gate.Check(key); err != nil {
		return nil, err
	}

	if s.apiKey == "" {
		return nil, &ConfigError{Message: "Google Places API key not configured"}
	}

	placeID := s.resolvePlaceID(ctx)

	details, err := s.client.FetchPlaceDetails(ctx, placeID)
	if err != nil {
		return nil, placesUpstreamError(err)
	}

	report := &ReviewReport{
		ItemsFetched:  len(details.Reviews),
		PlaceName:     details.Name,
		OverallRating: details.Rating,
		TotalReviews:  details.TotalReviews,
	}

	if len(details.Reviews) == 0 {
		slog.Info("No reviews returned by Places API", "place_id", placeID)
		return report, nil
	}

	// Dedup snapshot, read once before any write.
	existing, err := s.reviews.GetBySource(ctx, ReviewSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load review dedup snapshot: %w", err)
	}

	for _, upstream := range details.Reviews {
		if upstream.AuthorName == "" || upstream.Text == "" {
			report.Skipped++
			continue
		}

		if match := s.matcher.Match(existing, upstream.AuthorName, upstream.Text); match != nil {
			// Refresh the fields that can change upstream. A refreshed
			// review counts as skipped: it is not a new insert.
			photo := optionalString(upstream.ProfilePhotoURL)
			if err := s.reviews.UpdateContent(ctx, match.ID, upstream.Rating, upstream.Text, photo); err != nil {
				slog.Warn("Failed to refresh review, continuing", "author", upstream.AuthorName, "error", err)
			}
			report.Skipped++
			continue
		}

		record := database.Review{
			MemberName:  upstream.AuthorName,
			Rating:      upstream.Rating,
			Quote:       upstream.Text,
			Source:      ReviewSource,
			Approved:    true,
			Photo:       optionalString(upstream.ProfilePhotoURL),
			Featured:    upstream.Rating >= featuredRating,
			Fingerprint: reviewFingerprint(upstream.AuthorName, upstream.Text),
		}

		inserted, err := s.reviews.InsertIfAbsent(ctx, record)
		if err != nil {
			report.Skipped++
			slog.Warn("Failed to insert review, continuing", "author", upstream.AuthorName, "error", err)
			continue
		}
		if !inserted {
			report.Skipped++
			continue
		}

		report.Synced++
	}

	slog.Info("Review sync completed",
		"place", details.Name,
		"fetched", report.ItemsFetched,
		"synced", report.Synced,
		"skipped", report.Skipped)

	return report, nil
}

// resolvePlaceID prefers the settings override, then the configured place
// ID, then the built-in default. Settings lookup failures fall back
// silently; the override is best-effort and must never fail a sync run.
func (s *ReviewSyncer) resolvePlaceID(ctx context.Context) string {
	if s.settings != nil {
		value, err := s.settings.Get(ctx, PlaceIDSettingKey)
		if err != nil {
			slog.Debug("Failed to read place ID override, using default", "error", err)
		} else if value != "" {
			return value
		}
	}

	if s.placeID != "" {
		return s.placeID
	}

	return defaultPlaceID
}

// reviewFingerprint hashes the dedup key itself (author plus the first 50
// characters of the text), so later in-place refreshes keep the same
// fingerprint.
func reviewFingerprint(authorName, text string) string {
	seed := authorName + "\n" + prefix(text, 50)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(seed)))
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func placesUpstreamError(err error) error {
	var apiErr *places.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}
	return &UpstreamError{Message: fmt.Sprintf("Places request failed: %v", err)}
}

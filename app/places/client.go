package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	detailsFields = "name,rating,user_ratings_total,reviews"
)

type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
}

// Client fetches place details, including reviews, from the Google Places API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
	}
}

// FetchPlaceDetails requests the place's name, overall rating, total review
// count and its most relevant reviews. Always requests fresh data; responses
// are never cached.
func (c *Client) FetchPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", detailsFields)
	query.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/details/json?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch place details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Places API returned HTTP %d", resp.StatusCode),
		}
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode place details: %w", err)
	}

	if apiResp.Status != "OK" {
		message := fmt.Sprintf("Places API status %s", apiResp.Status)
		if apiResp.ErrorMessage != "" {
			message = fmt.Sprintf("%s: %s", message, apiResp.ErrorMessage)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     apiResp.Status,
			Message:    message,
		}
	}

	details := &PlaceDetails{
		Name:         apiResp.Result.Name,
		Rating:       apiResp.Result.Rating,
		TotalReviews: apiResp.Result.UserRatingsTotal,
		Reviews:      make([]Review, 0, len(apiResp.Result.Reviews)),
	}

	for _, review := range apiResp.Result.Reviews {
		details.Reviews = append(details.Reviews, Review{
			AuthorName:      review.AuthorName,
			Rating:          review.Rating,
			Text:            review.Text,
			ProfilePhotoURL: review.ProfilePhotoURL,
			Time:            review.Time,
		})
	}

	return details, nil
}

package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://graph.instagram.com"

	// mediaFields selects exactly the fields needed for mapping into the
	// content store.
	mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"

	// pageLimit bounds one fetch to the most recent posts.
	pageLimit = 25
)

// timestampLayout matches the Graph API's ISO 8601 variant with a
// colon-less zone offset.
const timestampLayout = "2006-01-02T15:04:05-0700"

type Config struct {
	BaseURL     string
	AccessToken string
	UserAgent   string
}

// Client fetches recent media posts from the Instagram Graph API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	userAgent   string
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		userAgent:   cfg.UserAgent,
	}
}

// FetchRecentMedia requests one bounded page of the account's most recent
// media posts. The upstream's order is not trusted; callers re-sort.
func (c *Client) FetchRecentMedia(ctx context.Context) ([]Media, error) {
	query := url.Values{}
	query.Set("fields", mediaFields)
	query.Set("limit", fmt.Sprintf("%d", pageLimit))
	query.Set("access_token", c.accessToken)

	requestURL := fmt.Sprintf("%s/me/media?%s", c.baseURL, query.Encode())

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
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("Instagram API returned HTTP %d", resp.StatusCode),
			}
		}
		return nil, fmt.Errorf("failed to decode media response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Instagram API error %d: %s", apiResp.Error.Code, apiResp.Error.Message),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Instagram API returned HTTP %d", resp.StatusCode),
		}
	}

	return transform(apiResp.Data), nil
}

func transform(items []apiMedia) []Media {
	media := make([]Media, 0, len(items))

	for _, item := range items {
		timestamp, err := parseTimestamp(item.Timestamp)
		if err != nil {
			slog.Warn("Failed to parse media timestamp, skipping item",
				"media_id", item.ID, "timestamp", item.Timestamp)
			continue
		}

		media = append(media, Media{
			ID:           item.ID,
			Caption:      item.Caption,
			MediaType:    item.MediaType,
			MediaURL:     item.MediaURL,
			ThumbnailURL: item.ThumbnailURL,
			Permalink:    item.Permalink,
			Timestamp:    timestamp,
		})
	}

	return media
}

func parseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(timestampLayout, value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}

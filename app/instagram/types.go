package instagram

import "time"

// Media is a single media post fetched from the Graph API, transformed for
// ingestion. Transient: it exists only for the duration of one sync run.
type Media struct {
	ID           string
	Caption      string
	MediaType    string // IMAGE, VIDEO or CAROUSEL_ALBUM
	MediaURL     string
	ThumbnailURL string
	Permalink    string
	Timestamp    time.Time
}

// apiResponse is the Graph API media listing payload
type apiResponse struct {
	Data  []apiMedia `json:"data"`
	Error *apiError  `json:"error"`
}

type apiMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// APIError is returned when the Graph API responds with a non-success status
// or an in-band error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

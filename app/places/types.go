package places

// PlaceDetails holds the place metadata and reviews fetched for one sync
// run. The reviews list is capped by the upstream at five entries.
type PlaceDetails struct {
	Name         string
	Rating       float64
	TotalReviews int
	Reviews      []Review
}

// Review is a single third-party review as the upstream reports it.
type Review struct {
	AuthorName      string
	Rating          int
	Text            string
	ProfilePhotoURL string
	Time            int64
}

// apiResponse is the Place Details payload
type apiResponse struct {
	Result       apiResult `json:"result"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
}

type apiResult struct {
	Name             string      `json:"name"`
	Rating           float64     `json:"rating"`
	UserRatingsTotal int         `json:"user_ratings_total"`
	Reviews          []apiReview `json:"reviews"`
}

type apiReview struct {
	AuthorName      string `json:"author_name"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Time            int64  `json:"time"`
}

// APIError is returned when the Places API responds with a non-success HTTP
// status or a non-OK in-band status.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

package sync

import (
	"time"
)

// MediaReport is the outcome of one media ingestion run.
type MediaReport struct {
	ItemsFetched int    `json:"itemsFetched"`
	Synced       int    `json:"synced"`
	Skipped      int    `json:"skipped"`
	Message      string `json:"message,omitempty"`
}

// ReviewReport is the outcome of one review ingestion run, including the
// upstream place metadata passed through for the site.
type ReviewReport struct {
	ItemsFetched  int     `json:"itemsFetched"`
	Synced        int     `json:"synced"`
	Skipped       int     `json:"skipped"`
	PlaceName     string  `json:"placeName,omitempty"`
	OverallRating float64 `json:"overallRating,omitempty"`
	TotalReviews  int     `json:"totalReviews,omitempty"`
}

// MediaOutcome wraps a media adapter result for the aggregate report: either
// a report or a captured error, never both.
type MediaOutcome struct {
	Success bool         `json:"success"`
	Report  *MediaReport `json:"report,omitempty"`
	Error   string       `json:"error,omitempty"`
	Code    int          `json:"code,omitempty"`
}

// ReviewOutcome wraps a review adapter result for the aggregate report.
type ReviewOutcome struct {
	Success bool          `json:"success"`
	Report  *ReviewReport `json:"report,omitempty"`
	Error   string        `json:"error,omitempty"`
	Code    int           `json:"code,omitempty"`
}

// Report is the aggregate outcome of one orchestrated sync run. Adapter
// failures are captured in their sub-objects; the aggregate itself only
// fails before fan-out.
type Report struct {
	Timestamp time.Time     `json:"timestamp"`
	Reviews   ReviewOutcome `json:"reviews"`
	Instagram MediaOutcome  `json:"instagram"`
}

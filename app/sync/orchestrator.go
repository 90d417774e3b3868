package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ReportStore persists the last aggregate report, best-effort. A nil store
// disables persistence.
type ReportStore interface {
	SetReport(ctx context.Context, report *Report) error
}

// MediaRunner runs a media sync pass.
type MediaRunner interface {
	Run(ctx context.Context, key string) (*MediaReport, error)
}

// ReviewRunner runs a review sync pass.
type ReviewRunner interface {
	Run(ctx context.Context, key string) (*ReviewReport, error)
}

// Orchestrator runs both ingestion adapters concurrently and aggregates
// their outcomes. Settle-all: one adapter's failure never cancels or
// suppresses the other's result.
type Orchestrator struct {
	gate    *Gate
	media   MediaRunner
	reviews ReviewRunner
	reports ReportStore
}

func NewOrchestrator(gate *Gate, media MediaRunner, reviews ReviewRunner, reports ReportStore) *Orchestrator {
	return &Orchestrator{
		gate:    gate,
		media:   media,
		reviews: reviews,
		reports: reports,
	}
}

// Run authorizes once, fans out to both adapters and joins both outcomes.
// Adapter failures are captured as structured values in the report; the
// call itself only fails before fan-out.
func (o *Orchestrator) Run(ctx context.Context, key string) (*Report, error) {
	if err := o.gate.Check(key); err != nil {
		return nil, err
	}

	report := &Report{Timestamp: time.Now().UTC()}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		report.Instagram = o.runMedia(ctx, key)
	}()

	go func() {
		defer wg.Done()
		report.Reviews = o.runReviews(ctx, key)
	}()

	wg.Wait()

	if o.reports != nil {
		if err := o.reports.SetReport(ctx, report); err != nil {
			slog.Warn("Failed to store sync report", "error", err)
		}
	}

	slog.Info("Sync run completed",
		"media_success", report.Instagram.Success,
		"reviews_success", report.Reviews.Success)

	return report, nil
}

func (o *Orchestrator) runMedia(ctx context.Context, key string) (outcome MediaOutcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Media sync panicked", "panic", r)
			outcome = MediaOutcome{
				Error: fmt.Sprintf("media sync panicked: %v", r),
				Code:  500,
			}
		}
	}()

	mediaReport, err := o.media.Run(ctx, key)
	if err != nil {
		return MediaOutcome{Error: err.Error(), Code: StatusForError(err)}
	}

	return MediaOutcome{Success: true, Report: mediaReport}
}

func (o *Orchestrator) runReviews(ctx context.Context, key string) (outcome ReviewOutcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Review sync panicked", "panic", r)
			outcome = ReviewOutcome{
				Error: fmt.Sprintf("review sync panicked: %v", r),
				Code:  500,
			}
		}
	}()

	reviewReport, err := o.reviews.Run(ctx, key)
	if err != nil {
		return ReviewOutcome{Error: err.Error(), Code: StatusForError(err)}
	}

	return ReviewOutcome{Success: true, Report: reviewReport}
}

package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMediaRunner struct {
	report *MediaReport
	err    error
	panics bool
	calls  int
}

func (f *fakeMediaRunner) Run(ctx context.Context, key string) (*MediaReport, error) {
	f.calls++
	if f.panics {
		panic("media runner exploded")
	}
	return f.report, f.err
}

type fakeReviewRunner struct {
	report *ReviewReport
	err    error
	panics bool
	calls  int
}

func (f *fakeReviewRunner) Run(ctx context.Context, key string) (*ReviewReport, error) {
	f.calls++
	if f.panics {
		panic("review runner exploded")
	}
	return f.report, f.err
}

type fakeReportStore struct {
	stored *Report
	err    error
	calls  int
}

func (f *fakeReportStore) SetReport(ctx context.Context, report *Report) error {
	f.calls++
	f.stored = report
	return f.err
}

func TestOrchestrator_BothSucceed(t *testing.T) {
	media := &fakeMediaRunner{report: &MediaReport{ItemsFetched: 3, Synced: 2, Skipped: 1}}
	reviews := &fakeReviewRunner{report: &ReviewReport{ItemsFetched: 5, Synced: 5}}
	store := &fakeReportStore{}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, store)

	report, err := orchestrator.Run(context.Background(), "secret")

	require.NoError(t, err)
	assert.True(t, report.Instagram.Success)
	assert.True(t, report.Reviews.Success)
	assert.Equal(t, 2, report.Instagram.Report.Synced)
	assert.Equal(t, 5, report.Reviews.Report.Synced)
	assert.False(t, report.Timestamp.IsZero())
	assert.Equal(t, 1, store.calls)
	assert.Same(t, report, store.stored)
}

func TestOrchestrator_OneFailureDoesNotSuppressTheOther(t *testing.T) {
	media := &fakeMediaRunner{err: &UpstreamError{StatusCode: 500, Message: "token expired"}}
	reviews := &fakeReviewRunner{report: &ReviewReport{ItemsFetched: 2, Synced: 2}}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, nil)

	report, err := orchestrator.Run(context.Background(), "secret")

	require.NoError(t, err, "adapter failures are captured, not returned")
	assert.False(t, report.Instagram.Success)
	assert.Equal(t, "token expired", report.Instagram.Error)
	assert.Equal(t, 502, report.Instagram.Code)
	assert.Nil(t, report.Instagram.Report)

	assert.True(t, report.Reviews.Success)
	assert.Equal(t, 2, report.Reviews.Report.Synced)
	assert.Equal(t, 1, reviews.calls)
}

func TestOrchestrator_BothFail(t *testing.T) {
	media := &fakeMediaRunner{err: &UpstreamError{Message: "instagram down"}}
	reviews := &fakeReviewRunner{err: &ConfigError{Message: "Google Places API key not configured"}}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, nil)

	report, err := orchestrator.Run(context.Background(), "secret")

	require.NoError(t, err)
	assert.False(t, report.Instagram.Success)
	assert.Equal(t, 502, report.Instagram.Code)
	assert.False(t, report.Reviews.Success)
	assert.Equal(t, 500, report.Reviews.Code)
}

func TestOrchestrator_InvalidKeyRunsNothing(t *testing.T) {
	media := &fakeMediaRunner{}
	reviews := &fakeReviewRunner{}
	store := &fakeReportStore{}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, store)

	_, err := orchestrator.Run(context.Background(), "wrong")

	var unauthorizedErr *UnauthorizedError
	require.ErrorAs(t, err, &unauthorizedErr)
	assert.Equal(t, 0, media.calls)
	assert.Equal(t, 0, reviews.calls)
	assert.Equal(t, 0, store.calls)
}

func TestOrchestrator_PanicCapturedAsFailure(t *testing.T) {
	media := &fakeMediaRunner{panics: true}
	reviews := &fakeReviewRunner{report: &ReviewReport{Synced: 1}}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, nil)

	report, err := orchestrator.Run(context.Background(), "secret")

	require.NoError(t, err)
	assert.False(t, report.Instagram.Success)
	assert.Contains(t, report.Instagram.Error, "panicked")
	assert.Equal(t, 500, report.Instagram.Code)
	assert.True(t, report.Reviews.Success)
}

func TestOrchestrator_StoreFailureDoesNotFailRun(t *testing.T) {
	media := &fakeMediaRunner{report: &MediaReport{}}
	reviews := &fakeReviewRunner{report: &ReviewReport{}}
	store := &fakeReportStore{err: assert.AnError}

	orchestrator := NewOrchestrator(NewGate("secret"), media, reviews, store)

	report, err := orchestrator.Run(context.Background(), "secret")

	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, 1, store.calls)
}

package api

import (
	"context"

	"github.com/embercove/content-sync/app/cache"
	"github.com/embercove/content-sync/app/database"
	"github.com/embercove/content-sync/app/sync"
)

type OrchestratorInterface interface {
	Run(ctx context.Context, key string) (*sync.Report, error)
}

var _ OrchestratorInterface = (*sync.Orchestrator)(nil)

type MediaSyncerInterface interface {
	Run(ctx context.Context, key string) (*sync.MediaReport, error)
}

var _ MediaSyncerInterface = (*sync.MediaSyncer)(nil)

type ReviewSyncerInterface interface {
	Run(ctx context.Context, key string) (*sync.ReviewReport, error)
}

var _ ReviewSyncerInterface = (*sync.ReviewSyncer)(nil)

type ReportReaderInterface interface {
	GetReport(ctx context.Context) (*sync.Report, error)
}

var _ ReportReaderInterface = (*cache.Cache)(nil)

type Handler struct {
	orchestrator OrchestratorInterface
	media        MediaSyncerInterface
	reviews      ReviewSyncerInterface
	gate         *sync.Gate
	reports      ReportReaderInterface
	mediaRepo    database.MediaRepository
	reviewRepo   database.ReviewRepository
	version      string
}

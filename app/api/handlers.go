package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/embercove/content-sync/app/database"
	"github.com/embercove/content-sync/app/sync"
)

func NewHandler(orchestrator OrchestratorInterface, media MediaSyncerInterface,
	reviews ReviewSyncerInterface, gate *sync.Gate, reports ReportReaderInterface,
	mediaRepo database.MediaRepository, reviewRepo database.ReviewRepository,
	version string) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		media:        media,
		reviews:      reviews,
		gate:         gate,
		reports:      reports,
		mediaRepo:    mediaRepo,
		reviewRepo:   reviewRepo,
		version:      version,
	}
}

// RunSync runs both adapters and returns the aggregate report. Adapter
// failures are reported inside the 200 payload; only a failure before
// fan-out (bad key) produces an error status.
func (h *Handler) RunSync(c *gin.Context) {
	report, err := h.orchestrator.Run(c.Request.Context(), c.Query("key"))
	if err != nil {
		slog.Error("Sync run rejected", "error", err)
		c.JSON(sync.StatusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) RunMediaSync(c *gin.Context) {
	report, err := h.media.Run(c.Request.Context(), c.Query("key"))
	if err != nil {
		slog.Error("Media sync failed", "error", err)
		c.JSON(sync.StatusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	body := gin.H{
		"success":      true,
		"postsFetched": report.ItemsFetched,
		"synced":       report.Synced,
		"skipped":      report.Skipped,
	}
	if report.Message != "" {
		body["message"] = report.Message
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) RunReviewSync(c *gin.Context) {
	report, err := h.reviews.Run(c.Request.Context(), c.Query("key"))
	if err != nil {
		slog.Error("Review sync failed", "error", err)
		c.JSON(sync.StatusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	body := gin.H{
		"success":      true,
		"itemsFetched": report.ItemsFetched,
		"synced":       report.Synced,
		"skipped":      report.Skipped,
	}
	if report.PlaceName != "" {
		body["placeName"] = report.PlaceName
	}
	if report.OverallRating > 0 {
		body["overallRating"] = report.OverallRating
	}
	if report.TotalReviews > 0 {
		body["totalReviews"] = report.TotalReviews
	}

	c.JSON(http.StatusOK, body)
}

// GetSyncStatus returns the last stored aggregate report, if any.
func (h *Handler) GetSyncStatus(c *gin.Context) {
	if err := h.gate.Check(c.Query("key")); err != nil {
		c.JSON(sync.StatusForError(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	if h.reports == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "report storage not configured"})
		return
	}

	report, err := h.reports.GetReport(c.Request.Context())
	if err != nil {
		slog.Error("Failed to read sync report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read sync report"})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no sync report available"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	ctx := c.Request.Context()

	if mediaCount, err := h.mediaRepo.GetItemCount(ctx, sync.MediaCategory); err == nil {
		health["media_items"] = mediaCount
	}

	if reviewCount, err := h.reviewRepo.GetReviewCount(ctx, sync.ReviewSource); err == nil {
		health["reviews"] = reviewCount
	}

	c.JSON(http.StatusOK, health)
}

package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/yt-mirror/app/cfg"
	"github.com/lysyi3m/yt-mirror/app/database"
	"github.com/lysyi3m/yt-mirror/app/tasks"
)

func NewHandler(tracker *tasks.Tracker, cycleRepo database.CycleRepository) *Handler {
	return &Handler{
		tracker:   tracker,
		cycleRepo: cycleRepo,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   cfg.GetVersion(),
	}

	if last, ok := h.tracker.Last(); ok {
		health["last_cycle_at"] = last.FinishedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

// GetStatus reports the most recent completed cycle with per-channel counts.
func (h *Handler) GetStatus(c *gin.Context) {
	last, ok := h.tracker.Last()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "waiting", "message": "No cycle completed yet"})
		return
	}

	channels := make([]gin.H, 0, len(last.Channels))
	for _, channel := range last.Channels {
		info := gin.H{
			"url":        channel.ChannelURL,
			"local_name": channel.LocalName,
			"total":      channel.Total,
			"downloaded": channel.Downloaded,
			"skipped":    channel.Skipped,
			"filtered":   channel.Filtered,
			"failed":     channel.Failed,
			"swept":      channel.Swept,
		}
		if channel.Error != "" {
			info["error"] = channel.Error
		}
		channels = append(channels, info)
	}

	c.JSON(http.StatusOK, gin.H{
		"started_at":      last.StartedAt.Format(time.RFC3339),
		"finished_at":     last.FinishedAt.Format(time.RFC3339),
		"duration":        last.FinishedAt.Sub(last.StartedAt).String(),
		"channels_total":  last.ChannelsTotal,
		"channels_failed": last.ChannelsFailed,
		"downloaded":      last.Downloaded,
		"swept":           last.Swept,
		"reconciled":      last.Reconciled,
		"channels":        channels,
	})
}

// GetHistory returns recent cycles from the journal, newest first.
func (h *Handler) GetHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	runs, err := h.cycleRepo.RecentCycleRuns(limit)
	if err != nil {
		slog.Error("Database error", "operation", "recent_cycle_runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	cycles := make([]gin.H, 0, len(runs))
	for _, run := range runs {
		cycles = append(cycles, cycleInfo(run))
	}

	c.JSON(http.StatusOK, gin.H{
		"cycles": cycles,
		"total":  len(cycles),
	})
}

func cycleInfo(run database.CycleRun) gin.H {
	return gin.H{
		"id":              run.ID,
		"started_at":      run.StartedAt.Format(time.RFC3339),
		"finished_at":     run.FinishedAt.Format(time.RFC3339),
		"channels_total":  run.ChannelsTotal,
		"channels_failed": run.ChannelsFailed,
		"downloaded":      run.Downloaded,
		"swept":           run.Swept,
		"reconciled":      run.Reconciled,
	}
}

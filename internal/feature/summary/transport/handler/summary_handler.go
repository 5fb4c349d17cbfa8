// Package handler provides the HTTP handlers for the summary feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockcalendar/internal/feature/summary/domain/entity"
	"stockcalendar/internal/feature/summary/transport/http/dto"
	jwtmw "stockcalendar/internal/platform/jwt"
)

// SummaryUsecase defines the summary operations the handler depends on.
type SummaryUsecase interface {
	Upsert(ctx context.Context, userID uint, date, content string) (*entity.Summary, error)
	Get(ctx context.Context, userID uint, date string) (*entity.Summary, error)
}

// SummaryHandler handles HTTP requests for daily summaries.
type SummaryHandler struct {
	summaries SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaries SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// Upsert handles PUT /summary: stores the day's note, replacing any earlier
// one for the same date.
func (h *SummaryHandler) Upsert(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.SummaryUpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.summaries.Upsert(c.Request.Context(), userID, req.Date, req.Content)
	if err != nil {
		slog.Error("upsert summary failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryItem{Date: s.Date, Content: s.Content})
}

// Get handles GET /summary?date=YYYY-MM-DD. A day without a note answers an
// empty content rather than a 404, so the calendar view renders uniformly.
func (h *SummaryHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	s, err := h.summaries.Get(c.Request.Context(), userID, date)
	if err != nil {
		slog.Error("get summary failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if s == nil {
		c.JSON(http.StatusOK, dto.SummaryItem{Date: date})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryItem{Date: s.Date, Content: s.Content})
}

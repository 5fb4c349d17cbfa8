// Package handler provides the HTTP handlers for the snapshot feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockcalendar/internal/feature/snapshot/domain"
	"stockcalendar/internal/feature/snapshot/domain/entity"
	"stockcalendar/internal/feature/snapshot/transport/http/dto"
	"stockcalendar/internal/feature/snapshot/usecase"
	jwtmw "stockcalendar/internal/platform/jwt"
)

// SnapshotUsecase defines the snapshot operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SnapshotUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.SubmitInput) (*usecase.SubmitResult, error)
	Update(ctx context.Context, userID, id uint, in usecase.SubmitInput) (*usecase.SubmitResult, error)
	Delete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, userID uint, date, word string) ([]usecase.ListItem, error)
	ListInterests(ctx context.Context, userID uint) ([]entity.Interest, error)
}

// SnapshotHandler handles HTTP requests for stock snapshot operations.
type SnapshotHandler struct {
	snapshots SnapshotUsecase
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshots SnapshotUsecase) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Create handles POST /stocks.
// - 400 on validation errors
// - 422 when the stock code is unknown to the market source
// - 409 when a snapshot already exists for the same stock and date
// - 201 with the reconciled snapshot on success
func (h *SnapshotHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.StockSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.snapshots.Create(c.Request.Context(), userID, usecase.SubmitInput{
		Code:          req.Code,
		CategoryName:  req.CategoryName,
		RegisterDate:  req.RegisterDate,
		IsInterest:    req.IsInterest,
		Issue:         req.Issue,
		CurrentPrice:  req.CurrentPrice,
		PreviousClose: req.PreviousClose,
	})
	if err != nil {
		h.writeError(c, err, "create snapshot", userID)
		return
	}

	c.JSON(http.StatusCreated, toItem(*res.Snapshot, res.IsInterest, res.CategoryName))
}

// Update handles PUT /stocks/:id.
func (h *SnapshotHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	id, ok := snapshotID(c)
	if !ok {
		return
	}

	var req dto.StockEditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.snapshots.Update(c.Request.Context(), userID, id, usecase.SubmitInput{
		CategoryName:  req.CategoryName,
		IsInterest:    req.IsInterest,
		Issue:         req.Issue,
		CurrentPrice:  req.CurrentPrice,
		PreviousClose: req.PreviousClose,
	})
	if err != nil {
		h.writeError(c, err, "update snapshot", userID)
		return
	}

	c.JSON(http.StatusOK, toItem(*res.Snapshot, res.IsInterest, res.CategoryName))
}

// Delete handles DELETE /stocks/:id.
func (h *SnapshotHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	id, ok := snapshotID(c)
	if !ok {
		return
	}

	if err := h.snapshots.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "delete snapshot", userID)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /stocks?date=YYYY-MM-DD&word=. The word may mix full
// syllables and bare initial consonants.
func (h *SnapshotHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	items, err := h.snapshots.List(c.Request.Context(), userID, c.Query("date"), c.Query("word"))
	if err != nil {
		h.writeError(c, err, "list snapshots", userID)
		return
	}

	out := make([]dto.StockItem, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Snapshot.Category != nil {
			name = item.Snapshot.Category.Name
		}
		out = append(out, toItem(item.Snapshot, item.IsInterest, name))
	}
	c.JSON(http.StatusOK, out)
}

// ListInterests handles GET /interests.
func (h *SnapshotHandler) ListInterests(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	rows, err := h.snapshots.ListInterests(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "list interests", userID)
		return
	}

	out := make([]dto.InterestItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.InterestItem{StockCode: row.StockCode})
	}
	c.JSON(http.StatusOK, out)
}

// writeError maps domain errors to status codes; anything else is a 500.
func (h *SnapshotHandler) writeError(c *gin.Context, err error, op string, userID uint) {
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown stock code"})
	case errors.Is(err, domain.ErrDuplicateSnapshot):
		c.JSON(http.StatusConflict, gin.H{"error": "snapshot already exists for this date"})
	case errors.Is(err, domain.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
	default:
		slog.Error(op+" failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// snapshotID parses the :id path parameter, answering 400 itself on failure.
func snapshotID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot id"})
		return 0, false
	}
	return uint(id), true
}

// toItem converts a snapshot to its response shape.
func toItem(s entity.Snapshot, isInterest bool, categoryName string) dto.StockItem {
	return dto.StockItem{
		ID:            s.ID,
		Name:          s.Name,
		Code:          s.Code,
		CurrentPrice:  s.CurrentPrice,
		PreviousClose: s.PreviousClose,
		DiffPrice:     s.DiffPrice,
		DiffPercent:   s.DiffPercent,
		RegisterDate:  s.RegisterDate,
		Issue:         s.Issue,
		CategoryName:  categoryName,
		IsInterest:    isInterest,
	}
}

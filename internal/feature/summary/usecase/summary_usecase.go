// Package usecase implements the business logic for the summary feature.
package usecase

import (
	"context"

	"stockcalendar/internal/feature/summary/domain/entity"
	"stockcalendar/internal/platform/kdate"
)

// SummaryRepository abstracts the persistence layer for summaries.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SummaryRepository interface {
	// FindByDate retrieves a user's summary for a date, (nil, nil) on a miss.
	FindByDate(ctx context.Context, userID uint, date string) (*entity.Summary, error)

	// Upsert inserts the summary or replaces the content of the existing
	// row for the same (user, date).
	Upsert(ctx context.Context, s *entity.Summary) error
}

// summaryUsecase implements the one-note-per-day workflow.
type summaryUsecase struct {
	summaries SummaryRepository
}

// NewSummaryUsecase creates a new summaryUsecase.
func NewSummaryUsecase(summaries SummaryRepository) *summaryUsecase {
	return &summaryUsecase{summaries: summaries}
}

// Upsert stores the user's note for a date, replacing any earlier note for
// the same day.
func (u *summaryUsecase) Upsert(ctx context.Context, userID uint, date, content string) (*entity.Summary, error) {
	s := &entity.Summary{
		UserID:  userID,
		Date:    kdate.Normalize(date),
		Content: content,
	}
	if err := u.summaries.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get retrieves the user's note for a date, (nil, nil) when none exists.
func (u *summaryUsecase) Get(ctx context.Context, userID uint, date string) (*entity.Summary, error) {
	return u.summaries.FindByDate(ctx, userID, kdate.Normalize(date))
}

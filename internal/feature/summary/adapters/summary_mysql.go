// Package adapters provides the GORM repository implementation for the
// summary feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockcalendar/internal/feature/summary/domain/entity"
	"stockcalendar/internal/feature/summary/usecase"
)

// summaryMySQL is the MySQL implementation of SummaryRepository.
type summaryMySQL struct {
	db *gorm.DB
}

// Compile-time check that summaryMySQL implements SummaryRepository.
var _ usecase.SummaryRepository = (*summaryMySQL)(nil)

// NewSummaryRepository creates a new summaryMySQL for the given connection.
func NewSummaryRepository(db *gorm.DB) *summaryMySQL {
	return &summaryMySQL{db: db}
}

// FindByDate retrieves a user's summary for a date. A miss is (nil, nil).
func (r *summaryMySQL) FindByDate(ctx context.Context, userID uint, date string) (*entity.Summary, error) {
	var s entity.Summary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts the summary or replaces the content of the existing row
// for the same (user, date), keeping the one-note-per-day invariant.
func (r *summaryMySQL) Upsert(ctx context.Context, s *entity.Summary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(s).Error
}

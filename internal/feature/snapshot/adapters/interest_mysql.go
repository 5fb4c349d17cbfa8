package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockcalendar/internal/feature/snapshot/domain/entity"
	"stockcalendar/internal/feature/snapshot/usecase"
)

// interestMySQL is the MySQL implementation of InterestRepository.
type interestMySQL struct {
	db *gorm.DB
}

// Compile-time check that interestMySQL implements InterestRepository.
var _ usecase.InterestRepository = (*interestMySQL)(nil)

// NewInterestRepository creates a new interestMySQL for the given connection.
func NewInterestRepository(db *gorm.DB) *interestMySQL {
	return &interestMySQL{db: db}
}

// FindByCode retrieves the marker for (user, code). A miss is (nil, nil).
func (r *interestMySQL) FindByCode(ctx context.Context, userID uint, code string) (*entity.Interest, error) {
	var i entity.Interest
	err := conn(ctx, r.db).
		Where("user_id = ? AND stock_code = ?", userID, code).
		First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

// ListByUser retrieves all of a user's markers, oldest first.
func (r *interestMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Interest, error) {
	var rows []entity.Interest
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create persists a new marker. A marker that already exists for the same
// (user, code) is left as is, keeping the toggle idempotent even when the
// lookup raced another writer.
func (r *interestMySQL) Create(ctx context.Context, i *entity.Interest) error {
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "stock_code"}},
			DoNothing: true,
		}).
		Create(i).Error
}

// DeleteByCode removes the marker for (user, code). Deleting an absent
// marker is a no-op.
func (r *interestMySQL) DeleteByCode(ctx context.Context, userID uint, code string) error {
	return conn(ctx, r.db).
		Where("user_id = ? AND stock_code = ?", userID, code).
		Delete(&entity.Interest{}).Error
}

package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockcalendar/internal/feature/snapshot/domain/entity"
	"stockcalendar/internal/feature/snapshot/usecase"
)

// categoryMySQL is the MySQL implementation of CategoryRepository.
type categoryMySQL struct {
	db *gorm.DB
}

// Compile-time check that categoryMySQL implements CategoryRepository.
var _ usecase.CategoryRepository = (*categoryMySQL)(nil)

// NewCategoryRepository creates a new categoryMySQL for the given connection.
func NewCategoryRepository(db *gorm.DB) *categoryMySQL {
	return &categoryMySQL{db: db}
}

// FindByName retrieves a user's category by name. A miss is (nil, nil).
func (r *categoryMySQL) FindByName(ctx context.Context, userID uint, name string) (*entity.Category, error) {
	var c entity.Category
	err := conn(ctx, r.db).
		Where("user_id = ? AND name = ?", userID, name).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persists a new category.
func (r *categoryMySQL) Create(ctx context.Context, c *entity.Category) error {
	return conn(ctx, r.db).Create(c).Error
}

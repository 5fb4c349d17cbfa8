// Package entity defines the domain entities for the snapshot feature.
package entity

import "time"

// Snapshot is one recorded observation of a stock's price and derived
// metrics for one user on one date. The composite unique index backstops the
// usecase's duplicate check; the check itself stays the primary guard so the
// caller gets a domain error rather than a driver error.
type Snapshot struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;uniqueIndex:stock_user_name_date,priority:1"`

	// CategoryID is nil when the snapshot was submitted without a category.
	// Categories are deletable independently, so the reference may also
	// dangle after the fact.
	CategoryID *uint
	Category   *Category `gorm:"foreignKey:CategoryID"`

	Name string `gorm:"size:30;not null;uniqueIndex:stock_user_name_date,priority:2"`
	Code string `gorm:"size:30;not null"`

	// Prices are in won. Both deltas are non-negative; gain vs. loss is
	// inferred by clients from CurrentPrice and PreviousClose.
	CurrentPrice  int64   `gorm:"not null"`
	PreviousClose int64   `gorm:"not null"`
	DiffPrice     int64   `gorm:"not null"`
	DiffPercent   float64 `gorm:"not null"`

	// RegisterDate is a date string ("2024-03-15"), not a timestamp.
	RegisterDate string `gorm:"size:100;not null;uniqueIndex:stock_user_name_date,priority:3"`

	// Issue holds the user's free-text news/issue notes for the day.
	Issue string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the original table name.
func (Snapshot) TableName() string {
	return "stocks"
}

package entity

import "time"

// Category is a user-scoped label for grouping snapshots. It is created
// lazily the first time a user submits its name (find-or-create) and is
// deletable independently of the snapshots that reference it.
type Category struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;index"`
	Name   string `gorm:"size:30;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

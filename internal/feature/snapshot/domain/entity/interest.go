package entity

import "time"

// Interest marks a stock code as watched by a user. At most one row exists
// per (user, code); the marker is shared by every snapshot of that code and
// lives independently of any single snapshot's lifecycle.
type Interest struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:interest_user_code,priority:1"`
	StockCode string `gorm:"size:30;not null;uniqueIndex:interest_user_code,priority:2"`

	CreatedAt time.Time
}

func (Interest) TableName() string {
	return "interests"
}

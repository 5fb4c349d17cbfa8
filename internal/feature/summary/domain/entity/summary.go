// Package entity defines the domain entities for the summary feature.
package entity

import "time"

// Summary is a user's free-text note for one calendar day. At most one row
// exists per (user, date); submitting again replaces the content.
type Summary struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"not null;uniqueIndex:summary_user_date,priority:1"`
	Date    string `gorm:"size:100;not null;uniqueIndex:summary_user_date,priority:2"`
	Content string `gorm:"size:1000"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Summary) TableName() string {
	return "summaries"
}

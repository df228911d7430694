package models

import "time"

type EmailSubscriber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedDate  time.Time  `gorm:"autoCreateTime" json:"created_date"`
	LastSentDate *time.Time `json:"last_sent_date"`
}

package models

import "time"

type StorageBin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RFID     string `gorm:"column:rfid;size:100;uniqueIndex;not null" json:"rfid"`
	RackID   string `gorm:"size:100;index" json:"rack_id"`
	Capacity int    `gorm:"not null;default:1" json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items        []Item        `gorm:"foreignKey:StorageBinRFID;references:RFID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:StorageBinRFID;references:RFID" json:"-"`
}

package models

import "time"

type ItemTrackStatus string

const (
	TrackInward  ItemTrackStatus = "INWARD"
	TrackOutward ItemTrackStatus = "OUTWARD"
	TrackReturn  ItemTrackStatus = "RETURN"
)

// Item statuses are free-form; these are the known values.
const (
	ItemStatusInStock = "IN_STOCK"
	ItemStatusSold    = "SOLD"
	ItemStatusDamaged = "DAMAGED"
)

type Item struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	RFID string `gorm:"column:rfid;size:100;uniqueIndex;not null" json:"rfid"`

	SKUID uint `gorm:"column:sku_id;not null;index" json:"sku_id"`
	SKU   SKU  `gorm:"foreignKey:SKUID" json:"-"`

	RackID         string `gorm:"size:100;index" json:"rack_id"`
	StorageBinRFID string `gorm:"column:storage_bin_rfid;size:100;index" json:"storage_bin_rfid"`

	Status string          `gorm:"size:20;default:IN_STOCK" json:"status"`
	Track  ItemTrackStatus `gorm:"size:10;default:INWARD" json:"track"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type SKU struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SKUCode     string `gorm:"size:50;uniqueIndex;not null" json:"sku_code"` // e.g. TS-M-BLU
	ProductName string `gorm:"size:100" json:"product_name"`
	Category    string `gorm:"size:50" json:"category"`

	MRP        float64 `json:"mrp"`
	SalePrice  float64 `json:"sale_price"`
	GSTPercent float64 `json:"gst_percent"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []Item `gorm:"foreignKey:SKUID" json:"-"`
}

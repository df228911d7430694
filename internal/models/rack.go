package models

import "time"

type Rack struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RackID   string `gorm:"size:100;uniqueIndex;not null" json:"rack_id"` // human identifier, e.g. RACK-A1
	Location string `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StorageBins []StorageBin `gorm:"foreignKey:RackID;references:RackID" json:"-"`
	Items       []Item       `gorm:"foreignKey:RackID;references:RackID" json:"-"`
}

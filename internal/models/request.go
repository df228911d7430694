package models

import "time"

type Request struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ReqFrom     string `gorm:"size:255" json:"req_from"`
	ReqTo       string `gorm:"size:255" json:"req_to"`
	Description string `gorm:"size:500" json:"description"`

	// RequestDate is always stored in UTC; naive client input is interpreted
	// in the warehouse reference zone first.
	RequestDate time.Time `json:"request_date"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`
	IsSent      bool      `gorm:"default:false" json:"is_sent"`
}

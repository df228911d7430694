package models

import "time"

type TransactionType string

const (
	TxInward  TransactionType = "inward"
	TxOutward TransactionType = "outward"
	TxReturn  TransactionType = "return"
)

// TrackFor maps a transaction type to the item track status it drives.
func (t TransactionType) TrackFor() (ItemTrackStatus, bool) {
	switch t {
	case TxInward:
		return TrackInward, true
	case TxOutward:
		return TrackOutward, true
	case TxReturn:
		return TrackReturn, true
	}
	return "", false
}

// Transaction is a bin's movement record. The unique index on StorageBinRFID
// enforces at most one transaction per bin regardless of type; a bin is either
// free or mid-movement.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Type           TransactionType `gorm:"size:10;not null" json:"type"`
	Reason         string          `gorm:"size:255" json:"reason"`
	StorageBinRFID string          `gorm:"column:storage_bin_rfid;size:100;uniqueIndex;not null" json:"storage_bin_rfid"`

	TransactionDate time.Time `gorm:"autoCreateTime" json:"transaction_date"`
}

package transactions

import (
	"errors"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/catalog"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

// BulkUpdateResult reports what a bulk update touched. RFIDs with no existing
// transaction are not errors; the caller only learns the counts.
type BulkUpdateResult struct {
	Type                models.TransactionType `json:"transaction_type"`
	RFIDsReceived       int                    `json:"rfids_received"`
	TransactionsUpdated int                    `json:"transactions_updated"`
	ItemsUpdated        int                    `json:"items_updated"`
}

func validType(t models.TransactionType) bool {
	_, ok := t.TrackFor()
	return ok
}

// CreateTransaction opens a movement record for a bin. The bin must exist and
// must not already have a transaction; the unique index on storage_bin_rfid is
// the serialization point when two creates race, so a constraint violation is
// reported the same way as the pre-check.
func CreateTransaction(db *gorm.DB, binRFID string, txType models.TransactionType, reason string) (*models.Transaction, error) {
	if !validType(txType) {
		return nil, apperr.Validation("type must be inward, outward or return")
	}

	if _, err := catalog.GetStorageBinByRFID(db, binRFID); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("Storage Bin RFID does not exist")
		}
		return nil, err
	}

	var existing models.Transaction
	err := db.First(&existing, "storage_bin_rfid = ?", binRFID).Error
	if err == nil {
		return nil, apperr.DuplicateState("Transaction for this Storage Bin RFID already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tx := models.Transaction{
		Type:           txType,
		Reason:         reason,
		StorageBinRFID: binRFID,
	}
	if err := db.Create(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.DuplicateState("Transaction for this Storage Bin RFID already exists")
		}
		return nil, err
	}
	return &tx, nil
}

func ListTransactions(db *gorm.DB, skip, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := db.Offset(skip).Limit(limit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransactionForBin returns the bin's active transaction, if any.
func GetTransactionForBin(db *gorm.DB, binRFID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := db.First(&tx, "storage_bin_rfid = ?", binRFID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No transaction found for this storage bin RFID")
		}
		return nil, err
	}
	return &tx, nil
}

// ItemRFIDsForBin lists the RFIDs of items currently assigned to the bin.
func ItemRFIDsForBin(db *gorm.DB, binRFID string) ([]string, error) {
	var rfids []string
	err := db.Model(&models.Item{}).Where("storage_bin_rfid = ?", binRFID).Pluck("rfid", &rfids).Error
	if err != nil {
		return nil, err
	}
	return rfids, nil
}

// UpdateTransaction overwrites type and reason in place. No state transition,
// value replacement only.
func UpdateTransaction(db *gorm.DB, binRFID string, txType models.TransactionType, reason string) (*models.Transaction, error) {
	if !validType(txType) {
		return nil, apperr.Validation("type must be inward, outward or return")
	}

	tx, err := GetTransactionForBin(db, binRFID)
	if err != nil {
		return nil, err
	}

	tx.Type = txType
	tx.Reason = reason
	if err := db.Save(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction clears the bin's transaction slot.
func DeleteTransaction(db *gorm.DB, binRFID string) error {
	tx, err := GetTransactionForBin(db, binRFID)
	if err != nil {
		return err
	}
	return db.Delete(tx).Error
}

// BulkUpdateTransactionsAndItems overwrites type and reason on every existing
// transaction whose bin RFID is in the input, then flips the track status of
// every item sitting in one of the affected bins. The whole batch commits as a
// single unit; partial state is never visible.
func BulkUpdateTransactionsAndItems(db *gorm.DB, rfids []string, txType models.TransactionType, reason string) (*BulkUpdateResult, error) {
	if len(rfids) == 0 {
		return nil, apperr.Validation("RFID list cannot be empty")
	}
	newTrack, ok := txType.TrackFor()
	if !ok {
		return nil, apperr.Validation("type must be inward, outward or return")
	}

	result := &BulkUpdateResult{Type: txType, RFIDsReceived: len(rfids)}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Only bins that actually hold a transaction are affected; the rest
		// of the input is silently ignored.
		var affected []string
		err := tx.Model(&models.Transaction{}).
			Where("storage_bin_rfid IN ?", rfids).
			Pluck("storage_bin_rfid", &affected).Error
		if err != nil {
			return err
		}
		if len(affected) == 0 {
			return apperr.NotFound("No transactions found for provided RFIDs")
		}

		res := tx.Model(&models.Transaction{}).
			Where("storage_bin_rfid IN ?", affected).
			Updates(map[string]any{"type": txType, "reason": reason})
		if res.Error != nil {
			return res.Error
		}
		result.TransactionsUpdated = int(res.RowsAffected)

		res = tx.Model(&models.Item{}).
			Where("storage_bin_rfid IN ?", affected).
			Update("track", newTrack)
		if res.Error != nil {
			return res.Error
		}
		result.ItemsUpdated = int(res.RowsAffected)

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyRFIDs partitions the scanned tags into those the ledger knows with the
// expected track status and the rest. Pure query, no mutation; existing and
// missing together are exactly the deduplicated input.
func VerifyRFIDs(db *gorm.DB, rfids []string, expected models.ItemTrackStatus) (existing, missing []string, err error) {
	if len(rfids) == 0 {
		return nil, nil, apperr.Validation("RFID list cannot be empty")
	}

	var found []string
	err = db.Model(&models.Item{}).
		Where("rfid IN ? AND track = ?", rfids, expected).
		Pluck("rfid", &found).Error
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]bool, len(found))
	for _, rfid := range found {
		foundSet[rfid] = true
	}

	seen := make(map[string]bool, len(rfids))
	for _, rfid := range rfids {
		if seen[rfid] {
			continue
		}
		seen[rfid] = true
		if foundSet[rfid] {
			existing = append(existing, rfid)
		} else {
			missing = append(missing, rfid)
		}
	}
	return existing, missing, nil
}

package items

import (
	"errors"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/catalog"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

// ItemPatch is a partial update applied through typed setters; nil fields are
// left untouched.
type ItemPatch struct {
	SKUID          *uint   `json:"sku_id"`
	RackID         *string `json:"rack_id"`
	StorageBinRFID *string `json:"storage_bin_rfid"`
	Status         *string `json:"status"`
}

// Filter holds conjunctive predicates; zero values mean "no filter on this
// field", never "match empty".
type Filter struct {
	Track  models.ItemTrackStatus `json:"track"`
	Status string                 `json:"status"`
	SKUID  uint                   `json:"sku_id"`
	RackID string                 `json:"rack_id"`
}

func GetItemByID(db *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, err
	}
	return &item, nil
}

func GetItemByRFID(db *gorm.DB, rfid string) (*models.Item, error) {
	var item models.Item
	if err := db.First(&item, "rfid = ?", rfid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Item not found")
		}
		return nil, err
	}
	return &item, nil
}

func itemRFIDExists(db *gorm.DB, rfid string) (bool, error) {
	var count int64
	if err := db.Model(&models.Item{}).Where("rfid = ?", rfid).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkParents verifies the referenced SKU, rack and bin all exist.
func checkParents(db *gorm.DB, skuID uint, rackID, binRFID string) error {
	if _, err := catalog.GetSKUByID(db, skuID); err != nil {
		return err
	}
	if _, err := catalog.GetRackByID(db, rackID); err != nil {
		return err
	}
	if _, err := catalog.GetStorageBinByRFID(db, binRFID); err != nil {
		return err
	}
	return nil
}

func CreateItem(db *gorm.DB, item *models.Item) error {
	if item.RFID == "" {
		return apperr.Validation("rfid is required")
	}

	exists, err := itemRFIDExists(db, item.RFID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.DuplicateKey("RFID already exists")
	}

	if err := checkParents(db, item.SKUID, item.RackID, item.StorageBinRFID); err != nil {
		return err
	}

	if item.Status == "" {
		item.Status = models.ItemStatusInStock
	}
	if item.Track == "" {
		item.Track = models.TrackInward
	}

	return db.Create(item).Error
}

// BulkCreateItems creates one item per RFID with a shared SKU/rack/bin/track
// assignment. RFIDs already in the ledger are skipped, not errors. The whole
// batch commits as one unit and only the items actually created are returned.
func BulkCreateItems(db *gorm.DB, rfids []string, skuID uint, rackID, binRFID string, track models.ItemTrackStatus) ([]models.Item, error) {
	if len(rfids) == 0 {
		return nil, apperr.Validation("RFID list cannot be empty")
	}
	if track == "" {
		track = models.TrackInward
	}

	if err := checkParents(db, skuID, rackID, binRFID); err != nil {
		return nil, err
	}

	var created []models.Item
	err := db.Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]bool, len(rfids))
		for _, rfid := range rfids {
			if rfid == "" || seen[rfid] {
				continue
			}
			seen[rfid] = true

			exists, err := itemRFIDExists(tx, rfid)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			item := models.Item{
				RFID:           rfid,
				SKUID:          skuID,
				RackID:         rackID,
				StorageBinRFID: binRFID,
				Status:         models.ItemStatusInStock,
				Track:          track,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			created = append(created, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.Track != "" {
		q = q.Where("track = ?", f.Track)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.SKUID != 0 {
		q = q.Where("sku_id = ?", f.SKUID)
	}
	if f.RackID != "" {
		q = q.Where("rack_id = ?", f.RackID)
	}
	return q
}

func ListItems(db *gorm.DB, skip, limit int, f Filter) ([]models.Item, error) {
	var items []models.Item
	if err := applyFilter(db.Model(&models.Item{}), f).Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func FilterItems(db *gorm.DB, f Filter) ([]models.Item, error) {
	var items []models.Item
	if err := applyFilter(db.Model(&models.Item{}), f).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func UpdateItem(db *gorm.DB, id uint, patch ItemPatch) (*models.Item, error) {
	item, err := GetItemByID(db, id)
	if err != nil {
		return nil, err
	}

	if patch.SKUID != nil {
		item.SKUID = *patch.SKUID
	}
	if patch.RackID != nil {
		item.RackID = *patch.RackID
	}
	if patch.StorageBinRFID != nil {
		item.StorageBinRFID = *patch.StorageBinRFID
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}

	if err := db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemTrack sets the track status and optionally reassigns the rack or
// bin. The new rack/bin are intentionally not validated: the endpoint backs
// RFID-gun reassignment flows where both were checked when registered.
func UpdateItemTrack(db *gorm.DB, id uint, track models.ItemTrackStatus, rackID, binRFID string) (*models.Item, error) {
	if track != models.TrackInward && track != models.TrackOutward && track != models.TrackReturn {
		return nil, apperr.Validation("track must be INWARD, OUTWARD or RETURN")
	}

	item, err := GetItemByID(db, id)
	if err != nil {
		return nil, err
	}

	item.Track = track
	if rackID != "" {
		item.RackID = rackID
	}
	if binRFID != "" {
		item.StorageBinRFID = binRFID
	}

	if err := db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeleteItem(db *gorm.DB, id uint) error {
	item, err := GetItemByID(db, id)
	if err != nil {
		return err
	}
	return db.Delete(item).Error
}

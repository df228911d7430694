package catalog

import (
	"errors"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

type StorageBinPatch struct {
	RFID     *string `json:"rfid"`
	RackID   *string `json:"rack_id"`
	Capacity *int    `json:"capacity"`
}

func CreateStorageBin(db *gorm.DB, bin *models.StorageBin) error {
	if bin.RFID == "" {
		return apperr.Validation("rfid is required")
	}
	if bin.Capacity <= 0 {
		return apperr.Validation("Capacity must be greater than 0")
	}

	var existing models.StorageBin
	err := db.First(&existing, "rfid = ?", bin.RFID).Error
	if err == nil {
		return apperr.DuplicateKey("RFID already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := GetRackByID(db, bin.RackID); err != nil {
		return err
	}

	return db.Create(bin).Error
}

func ListStorageBins(db *gorm.DB, skip, limit int) ([]models.StorageBin, error) {
	var bins []models.StorageBin
	if err := db.Offset(skip).Limit(limit).Find(&bins).Error; err != nil {
		return nil, err
	}
	return bins, nil
}

func GetStorageBinByRFID(db *gorm.DB, rfid string) (*models.StorageBin, error) {
	var bin models.StorageBin
	if err := db.First(&bin, "rfid = ?", rfid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("StorageBin not found")
		}
		return nil, err
	}
	return &bin, nil
}

func UpdateStorageBin(db *gorm.DB, rfid string, patch StorageBinPatch) (*models.StorageBin, error) {
	bin, err := GetStorageBinByRFID(db, rfid)
	if err != nil {
		return nil, err
	}

	if patch.RFID != nil && *patch.RFID != bin.RFID {
		var other models.StorageBin
		err := db.First(&other, "rfid = ?", *patch.RFID).Error
		if err == nil {
			return nil, apperr.DuplicateKey("RFID already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		bin.RFID = *patch.RFID
	}
	if patch.Capacity != nil {
		if *patch.Capacity <= 0 {
			return nil, apperr.Validation("Capacity must be greater than 0")
		}
		bin.Capacity = *patch.Capacity
	}
	if patch.RackID != nil {
		if _, err := GetRackByID(db, *patch.RackID); err != nil {
			return nil, err
		}
		bin.RackID = *patch.RackID
	}

	if err := db.Save(bin).Error; err != nil {
		return nil, err
	}
	return bin, nil
}

func DeleteStorageBin(db *gorm.DB, rfid string) error {
	bin, err := GetStorageBinByRFID(db, rfid)
	if err != nil {
		return err
	}
	return db.Delete(bin).Error
}

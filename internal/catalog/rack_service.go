package catalog

import (
	"errors"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

type RackPatch struct {
	RackID   *string `json:"rack_id"`
	Location *string `json:"location"`
}

func CreateRack(db *gorm.DB, rack *models.Rack) error {
	if rack.RackID == "" {
		return apperr.Validation("rack_id is required")
	}

	var existing models.Rack
	err := db.First(&existing, "rack_id = ?", rack.RackID).Error
	if err == nil {
		return apperr.DuplicateKey("Rack %s already exists", rack.RackID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(rack).Error
}

func ListRacks(db *gorm.DB) ([]models.Rack, error) {
	var racks []models.Rack
	if err := db.Find(&racks).Error; err != nil {
		return nil, err
	}
	return racks, nil
}

func GetRackByID(db *gorm.DB, rackID string) (*models.Rack, error) {
	var rack models.Rack
	if err := db.First(&rack, "rack_id = ?", rackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Rack not found")
		}
		return nil, err
	}
	return &rack, nil
}

func UpdateRack(db *gorm.DB, rackID string, patch RackPatch) (*models.Rack, error) {
	rack, err := GetRackByID(db, rackID)
	if err != nil {
		return nil, err
	}

	if patch.RackID != nil && *patch.RackID != rack.RackID {
		var other models.Rack
		err := db.First(&other, "rack_id = ?", *patch.RackID).Error
		if err == nil {
			return nil, apperr.DuplicateKey("Rack %s already exists", *patch.RackID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rack.RackID = *patch.RackID
	}
	if patch.Location != nil {
		rack.Location = *patch.Location
	}

	if err := db.Save(rack).Error; err != nil {
		return nil, err
	}
	return rack, nil
}

// RackHasBins reports whether any storage bin still references the rack.
// Checked by existence query, not cascade.
func RackHasBins(db *gorm.DB, rackID string) (bool, error) {
	var count int64
	if err := db.Model(&models.StorageBin{}).Where("rack_id = ?", rackID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func DeleteRack(db *gorm.DB, rackID string) error {
	rack, err := GetRackByID(db, rackID)
	if err != nil {
		return err
	}

	hasBins, err := RackHasBins(db, rack.RackID)
	if err != nil {
		return err
	}
	if hasBins {
		return apperr.Conflict("Rack is not empty")
	}

	return db.Delete(rack).Error
}

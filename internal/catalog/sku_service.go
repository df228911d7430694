package catalog

import (
	"errors"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

// SKUPatch is a partial update; nil fields are left untouched.
type SKUPatch struct {
	SKUCode     *string  `json:"sku_code"`
	ProductName *string  `json:"product_name"`
	Category    *string  `json:"category"`
	MRP         *float64 `json:"mrp"`
	SalePrice   *float64 `json:"sale_price"`
	GSTPercent  *float64 `json:"gst_percent"`
	IsActive    *bool    `json:"is_active"`
}

func CreateSKU(db *gorm.DB, sku *models.SKU) error {
	if sku.SKUCode == "" {
		return apperr.Validation("sku_code is required")
	}

	var existing models.SKU
	err := db.First(&existing, "sku_code = ?", sku.SKUCode).Error
	if err == nil {
		return apperr.DuplicateKey("SKU %s already exists", sku.SKUCode)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(sku).Error
}

func ListSKUs(db *gorm.DB) ([]models.SKU, error) {
	var skus []models.SKU
	if err := db.Find(&skus).Error; err != nil {
		return nil, err
	}
	return skus, nil
}

func GetSKUByID(db *gorm.DB, id uint) (*models.SKU, error) {
	var sku models.SKU
	if err := db.First(&sku, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("SKU not found")
		}
		return nil, err
	}
	return &sku, nil
}

func UpdateSKU(db *gorm.DB, id uint, patch SKUPatch) (*models.SKU, error) {
	sku, err := GetSKUByID(db, id)
	if err != nil {
		return nil, err
	}

	if patch.SKUCode != nil && *patch.SKUCode != sku.SKUCode {
		var other models.SKU
		err := db.First(&other, "sku_code = ?", *patch.SKUCode).Error
		if err == nil {
			return nil, apperr.DuplicateKey("SKU %s already exists", *patch.SKUCode)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sku.SKUCode = *patch.SKUCode
	}
	if patch.ProductName != nil {
		sku.ProductName = *patch.ProductName
	}
	if patch.Category != nil {
		sku.Category = *patch.Category
	}
	if patch.MRP != nil {
		sku.MRP = *patch.MRP
	}
	if patch.SalePrice != nil {
		sku.SalePrice = *patch.SalePrice
	}
	if patch.GSTPercent != nil {
		sku.GSTPercent = *patch.GSTPercent
	}
	if patch.IsActive != nil {
		sku.IsActive = *patch.IsActive
	}

	if err := db.Save(sku).Error; err != nil {
		return nil, err
	}
	return sku, nil
}

func DeleteSKU(db *gorm.DB, id uint) error {
	sku, err := GetSKUByID(db, id)
	if err != nil {
		return err
	}

	var itemCount int64
	if err := db.Model(&models.Item{}).Where("sku_id = ?", sku.ID).Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount > 0 {
		return apperr.Conflict("Cannot delete SKU with existing items")
	}

	return db.Delete(sku).Error
}

package catalog

import (
	"testing"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
)

func TestCreateAndGetSKU(t *testing.T) {
	db := database.NewTestDB(t)

	sku := models.SKU{SKUCode: "TS-M-BLU", ProductName: "T-Shirt M Blue", MRP: 499, SalePrice: 449, IsActive: true}
	if err := CreateSKU(db, &sku); err != nil {
		t.Fatalf("CreateSKU: %v", err)
	}

	got, err := GetSKUByID(db, sku.ID)
	if err != nil {
		t.Fatalf("GetSKUByID: %v", err)
	}
	if got.SKUCode != "TS-M-BLU" {
		t.Errorf("expected sku_code TS-M-BLU, got %q", got.SKUCode)
	}
}

func TestCreateSKUDuplicateCode(t *testing.T) {
	db := database.NewTestDB(t)

	if err := CreateSKU(db, &models.SKU{SKUCode: "TS-M-BLU"}); err != nil {
		t.Fatalf("CreateSKU: %v", err)
	}

	err := CreateSKU(db, &models.SKU{SKUCode: "TS-M-BLU"})
	if !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Errorf("expected DuplicateKey, got %v", err)
	}
}

func TestUpdateSKUPatch(t *testing.T) {
	db := database.NewTestDB(t)

	sku := models.SKU{SKUCode: "TS-M-BLU", ProductName: "T-Shirt", SalePrice: 449}
	if err := CreateSKU(db, &sku); err != nil {
		t.Fatalf("CreateSKU: %v", err)
	}

	newPrice := 399.0
	updated, err := UpdateSKU(db, sku.ID, SKUPatch{SalePrice: &newPrice})
	if err != nil {
		t.Fatalf("UpdateSKU: %v", err)
	}
	if updated.SalePrice != 399 {
		t.Errorf("expected sale_price 399, got %v", updated.SalePrice)
	}
	// Fields not in the patch stay untouched.
	if updated.ProductName != "T-Shirt" {
		t.Errorf("expected product_name unchanged, got %q", updated.ProductName)
	}
}

func TestDeleteSKUBlockedByItems(t *testing.T) {
	db := database.NewTestDB(t)

	sku := models.SKU{SKUCode: "TS-M-BLU"}
	if err := CreateSKU(db, &sku); err != nil {
		t.Fatalf("CreateSKU: %v", err)
	}
	if err := db.Create(&models.Item{RFID: "ITEM-1", SKUID: sku.ID}).Error; err != nil {
		t.Fatalf("seeding item: %v", err)
	}

	err := DeleteSKU(db, sku.ID)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}

	// Once the item is gone the delete goes through.
	if err := db.Delete(&models.Item{}, "rfid = ?", "ITEM-1").Error; err != nil {
		t.Fatalf("removing item: %v", err)
	}
	if err := DeleteSKU(db, sku.ID); err != nil {
		t.Errorf("DeleteSKU after removing items: %v", err)
	}
}

func TestDeleteSKUNotFound(t *testing.T) {
	db := database.NewTestDB(t)

	err := DeleteSKU(db, 42)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

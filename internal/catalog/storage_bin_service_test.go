package catalog

import (
	"testing"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

func seedRack(t *testing.T, db *gorm.DB, rackID string) {
	t.Helper()
	if err := CreateRack(db, &models.Rack{RackID: rackID}); err != nil {
		t.Fatalf("seeding rack %s: %v", rackID, err)
	}
}

func TestCreateStorageBin(t *testing.T) {
	db := database.NewTestDB(t)
	seedRack(t, db, "RACK-A1")

	bin := models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 20}
	if err := CreateStorageBin(db, &bin); err != nil {
		t.Fatalf("CreateStorageBin: %v", err)
	}

	got, err := GetStorageBinByRFID(db, "BIN-1")
	if err != nil {
		t.Fatalf("GetStorageBinByRFID: %v", err)
	}
	if got.Capacity != 20 {
		t.Errorf("expected capacity 20, got %d", got.Capacity)
	}
}

func TestCreateStorageBinValidation(t *testing.T) {
	db := database.NewTestDB(t)
	seedRack(t, db, "RACK-A1")

	err := CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 0})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected Validation for zero capacity, got %v", err)
	}

	err = CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-MISSING", Capacity: 5})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound for missing rack, got %v", err)
	}

	if err := CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 5}); err != nil {
		t.Fatalf("CreateStorageBin: %v", err)
	}
	err = CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 5})
	if !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Errorf("expected DuplicateKey for RFID collision, got %v", err)
	}
}

func TestUpdateStorageBinPatch(t *testing.T) {
	db := database.NewTestDB(t)
	seedRack(t, db, "RACK-A1")

	if err := CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 5}); err != nil {
		t.Fatalf("CreateStorageBin: %v", err)
	}
	if err := CreateStorageBin(db, &models.StorageBin{RFID: "BIN-2", RackID: "RACK-A1", Capacity: 5}); err != nil {
		t.Fatalf("CreateStorageBin: %v", err)
	}

	// RFID uniqueness is re-validated, excluding self.
	taken := "BIN-2"
	if _, err := UpdateStorageBin(db, "BIN-1", StorageBinPatch{RFID: &taken}); !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Errorf("expected DuplicateKey when renaming onto existing RFID, got %v", err)
	}

	self := "BIN-1"
	if _, err := UpdateStorageBin(db, "BIN-1", StorageBinPatch{RFID: &self}); err != nil {
		t.Errorf("renaming to own RFID should be a no-op, got %v", err)
	}

	bad := -3
	if _, err := UpdateStorageBin(db, "BIN-1", StorageBinPatch{Capacity: &bad}); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected Validation for negative capacity, got %v", err)
	}

	capacity := 50
	updated, err := UpdateStorageBin(db, "BIN-1", StorageBinPatch{Capacity: &capacity})
	if err != nil {
		t.Fatalf("UpdateStorageBin: %v", err)
	}
	if updated.Capacity != 50 {
		t.Errorf("expected capacity 50, got %d", updated.Capacity)
	}
	if updated.RackID != "RACK-A1" {
		t.Errorf("expected rack unchanged, got %q", updated.RackID)
	}
}

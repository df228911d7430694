package catalog

import (
	"testing"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
)

func TestCreateAndGetRack(t *testing.T) {
	db := database.NewTestDB(t)

	rack := models.Rack{RackID: "RACK-A1", Location: "Warehouse-1"}
	if err := CreateRack(db, &rack); err != nil {
		t.Fatalf("CreateRack: %v", err)
	}

	got, err := GetRackByID(db, "RACK-A1")
	if err != nil {
		t.Fatalf("GetRackByID: %v", err)
	}
	if got.Location != "Warehouse-1" {
		t.Errorf("expected location Warehouse-1, got %q", got.Location)
	}
}

func TestCreateRackDuplicate(t *testing.T) {
	db := database.NewTestDB(t)

	if err := CreateRack(db, &models.Rack{RackID: "RACK-A1"}); err != nil {
		t.Fatalf("CreateRack: %v", err)
	}

	err := CreateRack(db, &models.Rack{RackID: "RACK-A1"})
	if !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Errorf("expected DuplicateKey, got %v", err)
	}
}

func TestDeleteRackBlockedByBins(t *testing.T) {
	db := database.NewTestDB(t)

	if err := CreateRack(db, &models.Rack{RackID: "RACK-A1"}); err != nil {
		t.Fatalf("CreateRack: %v", err)
	}
	if err := CreateStorageBin(db, &models.StorageBin{RFID: "BIN-1", RackID: "RACK-A1", Capacity: 10}); err != nil {
		t.Fatalf("CreateStorageBin: %v", err)
	}

	err := DeleteRack(db, "RACK-A1")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected Conflict for non-empty rack, got %v", err)
	}

	if err := DeleteStorageBin(db, "BIN-1"); err != nil {
		t.Fatalf("DeleteStorageBin: %v", err)
	}
	if err := DeleteRack(db, "RACK-A1"); err != nil {
		t.Errorf("DeleteRack on empty rack: %v", err)
	}
}

func TestDeleteRackNotFound(t *testing.T) {
	db := database.NewTestDB(t)

	err := DeleteRack(db, "RACK-MISSING")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

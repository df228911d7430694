package catalog

import (
	"fmt"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/cache"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateStorageBinRequest struct {
	RFID     string `json:"rfid"`
	RackID   string `json:"rack_id"`
	Capacity int    `json:"capacity"`
}

// POST /api/v1/storage_bins
func CreateStorageBinHandler(db *gorm.DB, binCache *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStorageBinRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		bin := models.StorageBin{RFID: body.RFID, RackID: body.RackID, Capacity: body.Capacity}
		if err := CreateStorageBin(db, &bin); err != nil {
			return apperr.AsFiber(err)
		}

		binCache.InvalidateBinLists(c.Context())

		return c.Status(fiber.StatusCreated).JSON(bin)
	}
}

// GET /api/v1/storage_bins
func ListStorageBinsHandler(db *gorm.DB, binCache *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)

		cacheKey := fmt.Sprintf("list:%d:%d", skip, limit)
		var cached []models.StorageBin
		if binCache.GetBin(c.Context(), cacheKey, &cached) {
			return c.JSON(cached)
		}

		bins, err := ListStorageBins(db, skip, limit)
		if err != nil {
			return apperr.AsFiber(err)
		}

		binCache.SetBin(c.Context(), cacheKey, bins)

		return c.JSON(bins)
	}
}

// GET /api/v1/storage_bins/:rfid
func GetStorageBinHandler(db *gorm.DB, binCache *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rfid := c.Params("rfid")

		var cached models.StorageBin
		if binCache.GetBin(c.Context(), rfid, &cached) {
			return c.JSON(cached)
		}

		bin, err := GetStorageBinByRFID(db, rfid)
		if err != nil {
			return apperr.AsFiber(err)
		}

		binCache.SetBin(c.Context(), rfid, bin)

		return c.JSON(bin)
	}
}

// PUT /api/v1/storage_bins/:rfid
func UpdateStorageBinHandler(db *gorm.DB, binCache *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rfid := c.Params("rfid")

		var patch StorageBinPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		bin, err := UpdateStorageBin(db, rfid, patch)
		if err != nil {
			return apperr.AsFiber(err)
		}

		binCache.DeleteBin(c.Context(), rfid)
		binCache.SetBin(c.Context(), bin.RFID, bin)
		binCache.InvalidateBinLists(c.Context())

		return c.JSON(bin)
	}
}

// DELETE /api/v1/storage_bins/:rfid
func DeleteStorageBinHandler(db *gorm.DB, binCache *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rfid := c.Params("rfid")

		if err := DeleteStorageBin(db, rfid); err != nil {
			return apperr.AsFiber(err)
		}

		binCache.DeleteBin(c.Context(), rfid)
		binCache.InvalidateBinLists(c.Context())

		return c.JSON(fiber.Map{"message": "Storage bin deleted successfully"})
	}
}

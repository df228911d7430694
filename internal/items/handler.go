package items

import (
	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateItemRequest struct {
	RFID           string                 `json:"rfid"`
	SKUID          uint                   `json:"sku_id"`
	RackID         string                 `json:"rack_id"`
	StorageBinRFID string                 `json:"storage_bin_rfid"`
	Track          models.ItemTrackStatus `json:"track"`
}

type BulkCreateItemsRequest struct {
	RFIDs          []string               `json:"rfids"`
	SKUID          uint                   `json:"sku_id"`
	RackID         string                 `json:"rack_id"`
	StorageBinRFID string                 `json:"storage_bin_rfid"`
	Track          models.ItemTrackStatus `json:"track"`
}

type UpdateItemTrackRequest struct {
	Track          models.ItemTrackStatus `json:"track"`
	RackID         string                 `json:"rack_id"`
	StorageBinRFID string                 `json:"storage_bin_rfid"`
}

// POST /api/v1/items
func CreateItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item := models.Item{
			RFID:           body.RFID,
			SKUID:          body.SKUID,
			RackID:         body.RackID,
			StorageBinRFID: body.StorageBinRFID,
			Track:          body.Track,
		}
		if err := CreateItem(db, &item); err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// POST /api/v1/items/bulk
func BulkCreateItemsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkCreateItemsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		created, err := BulkCreateItems(db, body.RFIDs, body.SKUID, body.RackID, body.StorageBinRFID, body.Track)
		if err != nil {
			return apperr.AsFiber(err)
		}
		if created == nil {
			created = []models.Item{}
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GET /api/v1/items
func ListItemsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		f := Filter{
			Track:  models.ItemTrackStatus(c.Query("track")),
			Status: c.Query("status"),
			SKUID:  uint(c.QueryInt("sku_id", 0)),
			RackID: c.Query("rack_id"),
		}

		items, err := ListItems(db, skip, limit, f)
		if err != nil {
			return apperr.AsFiber(err)
		}
		if items == nil {
			items = []models.Item{}
		}
		return c.JSON(items)
	}
}

// POST /api/v1/items/filter
func FilterItemsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f Filter
		if err := c.BodyParser(&f); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		items, err := FilterItems(db, f)
		if err != nil {
			return apperr.AsFiber(err)
		}
		if items == nil {
			items = []models.Item{}
		}
		return c.JSON(items)
	}
}

// GET /api/v1/items/:id
func GetItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		item, err := GetItemByID(db, uint(id))
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(item)
	}
}

// GET /api/v1/items/rfid/:rfid
func GetItemByRFIDHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := GetItemByRFID(db, c.Params("rfid"))
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(item)
	}
}

// PUT /api/v1/items/:id
func UpdateItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		var patch ItemPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := UpdateItem(db, uint(id), patch)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(item)
	}
}

// PATCH /api/v1/items/:id/track
func UpdateItemTrackHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		var body UpdateItemTrackRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := UpdateItemTrack(db, uint(id), body.Track, body.RackID, body.StorageBinRFID)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(item)
	}
}

// DELETE /api/v1/items/:id
func DeleteItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		if err := DeleteItem(db, uint(id)); err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": "Item deleted successfully"})
	}
}

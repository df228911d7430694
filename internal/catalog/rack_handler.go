package catalog

import (
	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateRackRequest struct {
	RackID   string `json:"rack_id"`
	Location string `json:"location"`
}

// POST /api/v1/racks
func CreateRackHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRackRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		rack := models.Rack{RackID: body.RackID, Location: body.Location}
		if err := CreateRack(db, &rack); err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(rack)
	}
}

// GET /api/v1/racks
func ListRacksHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		racks, err := ListRacks(db)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(racks)
	}
}

// GET /api/v1/racks/:rack_id
func GetRackHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rack, err := GetRackByID(db, c.Params("rack_id"))
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(rack)
	}
}

// PUT /api/v1/racks/:rack_id
func UpdateRackHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch RackPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		rack, err := UpdateRack(db, c.Params("rack_id"), patch)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(rack)
	}
}

// DELETE /api/v1/racks/:rack_id
func DeleteRackHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := DeleteRack(db, c.Params("rack_id")); err != nil {
			// A non-empty rack answers 406, not 400.
			if apperr.IsKind(err, apperr.KindConflict) {
				return fiber.NewError(fiber.StatusNotAcceptable, err.Error())
			}
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": "Rack deleted successfully"})
	}
}

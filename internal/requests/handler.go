package requests

import (
	"warehouse-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateRequestBody struct {
	ReqFrom     string `json:"req_from"`
	ReqTo       string `json:"req_to"`
	Description string `json:"description"`
	RequestDate string `json:"request_date"`
}

// POST /api/v1/requests
func CreateRequestHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequestBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		requestDate, err := ParseRequestDate(body.RequestDate)
		if err != nil {
			return apperr.AsFiber(err)
		}

		request, err := CreateRequest(db, body.ReqFrom, body.ReqTo, body.Description, requestDate)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(request)
	}
}

// GET /api/v1/requests
func ListRequestsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := ListRequests(db)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(reqs)
	}
}

// GET /api/v1/requests/:id
func GetRequestHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
		}

		request, err := GetRequestByID(db, uint(id))
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(request)
	}
}

// DELETE /api/v1/requests/:id
func DeleteRequestHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
		}

		if err := DeleteRequest(db, uint(id)); err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": "Request deleted successfully"})
	}
}

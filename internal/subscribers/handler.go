package subscribers

import (
	"fmt"
	"time"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/notify"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AddSubscriberRequest struct {
	Email    string `json:"email"`
	IsActive *bool  `json:"is_active"`
}

// POST /api/v1/email-subscribers/add
func AddSubscriberHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddSubscriberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		sub, err := AddSubscriber(db, body.Email, isActive)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

// GET /api/v1/email-subscribers/all
func ListAllSubscribersHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := ListSubscribers(db, false)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(subs)
	}
}

// GET /api/v1/email-subscribers/active
func ListActiveSubscribersHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := ListSubscribers(db, true)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(subs)
	}
}

// PATCH /api/v1/email-subscribers/:email/toggle?active=bool
func ToggleSubscriberHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active := c.QueryBool("active", true)

		if _, err := SetSubscriberActive(db, c.Params("email"), active); err != nil {
			return apperr.AsFiber(err)
		}

		statusMsg := "activated"
		if !active {
			statusMsg = "deactivated"
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Email subscriber %s successfully", statusMsg)})
	}
}

// DELETE /api/v1/email-subscribers/:email
func DeleteSubscriberHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		if err := DeleteSubscriber(db, email); err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Email subscriber %s removed successfully", email)})
	}
}

// POST /api/v1/email-subscribers/:email/test
func SendTestEmailHandler(db *gorm.DB, mailer notify.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		if _, err := GetByEmail(db, email); err != nil {
			return apperr.AsFiber(err)
		}

		subject := "Test Email - Request Management System"
		body := fmt.Sprintf("TEST EMAIL\n\nYour email (%s) is successfully subscribed\nto receive daily summaries.\n", email)

		if err := mailer.Send(email, subject, body); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to send test email")
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Test email sent successfully to %s", email)})
	}
}

// POST /api/v1/email-subscribers/broadcast/:timeslot
func BroadcastHandler(db *gorm.DB, mailer notify.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		timeslot := c.Params("timeslot")

		result, err := Broadcast(db, mailer, timeslot, time.Now())
		if err != nil {
			return apperr.AsFiber(err)
		}

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("Manual %s broadcast completed", timeslot),
			"result":  result,
		})
	}
}

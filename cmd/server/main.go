package main

import (
	"log"
	"strings"

	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/cache"
	"warehouse-backend/internal/catalog"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/items"
	"warehouse-backend/internal/notify"
	"warehouse-backend/internal/requests"
	"warehouse-backend/internal/scheduler"
	"warehouse-backend/internal/subscribers"
	"warehouse-backend/internal/transactions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	binCache := cache.New(cfg)
	mailer := notify.NewSMTPMailer(cfg)

	sched := scheduler.New(db, mailer)
	if err := sched.Start(); err != nil {
		log.Fatalf("Scheduler setup failed: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api/v1")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(db))
	api.Post("/auth/login", auth.LoginHandler(db, cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(db))

	// SKUs
	protected.Post("/skus", catalog.CreateSKUHandler(db))
	protected.Get("/skus", catalog.ListSKUsHandler(db))
	protected.Get("/skus/:id", catalog.GetSKUHandler(db))
	protected.Put("/skus/:id", catalog.UpdateSKUHandler(db))
	protected.Delete("/skus/:id", catalog.DeleteSKUHandler(db))

	// Racks
	protected.Post("/racks", catalog.CreateRackHandler(db))
	protected.Get("/racks", catalog.ListRacksHandler(db))
	protected.Get("/racks/:rack_id", catalog.GetRackHandler(db))
	protected.Put("/racks/:rack_id", catalog.UpdateRackHandler(db))
	protected.Delete("/racks/:rack_id", catalog.DeleteRackHandler(db))

	// Storage bins
	protected.Post("/storage_bins", catalog.CreateStorageBinHandler(db, binCache))
	protected.Get("/storage_bins", catalog.ListStorageBinsHandler(db, binCache))
	protected.Get("/storage_bins/:rfid", catalog.GetStorageBinHandler(db, binCache))
	protected.Put("/storage_bins/:rfid", catalog.UpdateStorageBinHandler(db, binCache))
	protected.Delete("/storage_bins/:rfid", catalog.DeleteStorageBinHandler(db, binCache))

	// Items
	protected.Post("/items/bulk", items.BulkCreateItemsHandler(db))
	protected.Post("/items/filter", items.FilterItemsHandler(db))
	protected.Post("/items", items.CreateItemHandler(db))
	protected.Get("/items", items.ListItemsHandler(db))
	protected.Get("/items/rfid/:rfid", items.GetItemByRFIDHandler(db))
	protected.Get("/items/:id", items.GetItemHandler(db))
	protected.Put("/items/:id", items.UpdateItemHandler(db))
	protected.Patch("/items/:id/track", items.UpdateItemTrackHandler(db))
	protected.Delete("/items/:id", items.DeleteItemHandler(db))

	// Transactions
	protected.Put("/transactions/update-by-rfid-bulk", transactions.BulkUpdateHandler(db))
	protected.Post("/transactions/inward/verify-rfids", transactions.VerifyInwardRFIDsHandler(db))
	protected.Post("/transactions/outward/verify-rfids", transactions.VerifyOutwardRFIDsHandler(db))
	protected.Post("/transactions", transactions.CreateTransactionHandler(db))
	protected.Get("/transactions", transactions.ListTransactionsHandler(db))
	protected.Get("/transactions/:rfid", transactions.GetTransactionHandler(db))
	protected.Put("/transactions/:rfid", transactions.UpdateTransactionHandler(db))
	protected.Delete("/transactions/:rfid", transactions.DeleteTransactionHandler(db))

	// Requests
	protected.Post("/requests", requests.CreateRequestHandler(db))
	protected.Get("/requests", requests.ListRequestsHandler(db))
	protected.Get("/requests/:id", requests.GetRequestHandler(db))
	protected.Delete("/requests/:id", requests.DeleteRequestHandler(db))

	// Email subscribers
	protected.Post("/email-subscribers/add", subscribers.AddSubscriberHandler(db))
	protected.Get("/email-subscribers/all", subscribers.ListAllSubscribersHandler(db))
	protected.Get("/email-subscribers/active", subscribers.ListActiveSubscribersHandler(db))
	protected.Post("/email-subscribers/broadcast/:timeslot", subscribers.BroadcastHandler(db, mailer))
	protected.Post("/email-subscribers/:email/test", subscribers.SendTestEmailHandler(db, mailer))
	protected.Patch("/email-subscribers/:email/toggle", subscribers.ToggleSubscriberHandler(db))
	protected.Delete("/email-subscribers/:email", subscribers.DeleteSubscriberHandler(db))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

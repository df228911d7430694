package transactions

import (
	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateTransactionRequest struct {
	Type           models.TransactionType `json:"type"`
	StorageBinRFID string                 `json:"storage_bin_rfid"`
	Reason         string                 `json:"reason"`
}

type UpdateTransactionRequest struct {
	Type   models.TransactionType `json:"type"`
	Reason string                 `json:"reason"`
}

type BulkUpdateRequest struct {
	RFIDs  []string               `json:"rfids"`
	Type   models.TransactionType `json:"type"`
	Reason string                 `json:"reason"`
}

type VerifyRFIDsRequest struct {
	RFIDs []string `json:"rfids"`
}

type VerifyRFIDsResponse struct {
	ExistingRFIDs []string `json:"existing_rfids"`
	MissingRFIDs  []string `json:"missing_rfids"`
}

// TransactionResponse is a transaction plus the RFIDs of the items currently
// sitting in its bin.
type TransactionResponse struct {
	models.Transaction
	ItemRFIDs []string `json:"item_rfids"`
}

func withItemRFIDs(db *gorm.DB, tx models.Transaction) (TransactionResponse, error) {
	rfids, err := ItemRFIDsForBin(db, tx.StorageBinRFID)
	if err != nil {
		return TransactionResponse{}, err
	}
	if rfids == nil {
		rfids = []string{}
	}
	return TransactionResponse{Transaction: tx, ItemRFIDs: rfids}, nil
}

// POST /api/v1/transactions
func CreateTransactionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		tx, err := CreateTransaction(db, body.StorageBinRFID, body.Type, body.Reason)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}

// GET /api/v1/transactions
func ListTransactionsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)

		txs, err := ListTransactions(db, skip, limit)
		if err != nil {
			return apperr.AsFiber(err)
		}

		response := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			r, err := withItemRFIDs(db, tx)
			if err != nil {
				return apperr.AsFiber(err)
			}
			response = append(response, r)
		}
		return c.JSON(response)
	}
}

// GET /api/v1/transactions/:rfid
func GetTransactionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := GetTransactionForBin(db, c.Params("rfid"))
		if err != nil {
			return apperr.AsFiber(err)
		}

		r, err := withItemRFIDs(db, *tx)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(r)
	}
}

// PUT /api/v1/transactions/:rfid
func UpdateTransactionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		tx, err := UpdateTransaction(db, c.Params("rfid"), body.Type, body.Reason)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(tx)
	}
}

// DELETE /api/v1/transactions/:rfid
func DeleteTransactionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := DeleteTransaction(db, c.Params("rfid")); err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": "Transaction deleted successfully"})
	}
}

// PUT /api/v1/transactions/update-by-rfid-bulk
func BulkUpdateHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		result, err := BulkUpdateTransactionsAndItems(db, body.RFIDs, body.Type, body.Reason)
		if err != nil {
			return apperr.AsFiber(err)
		}

		return c.JSON(fiber.Map{
			"message":              "Bulk RFID update completed successfully",
			"transaction_type":     result.Type,
			"rfids_received":       result.RFIDsReceived,
			"transactions_updated": result.TransactionsUpdated,
			"items_updated":        result.ItemsUpdated,
		})
	}
}

// POST /api/v1/transactions/inward/verify-rfids
func VerifyInwardRFIDsHandler(db *gorm.DB) fiber.Handler {
	return verifyRFIDsHandler(db, models.TrackInward)
}

// POST /api/v1/transactions/outward/verify-rfids
func VerifyOutwardRFIDsHandler(db *gorm.DB) fiber.Handler {
	return verifyRFIDsHandler(db, models.TrackOutward)
}

func verifyRFIDsHandler(db *gorm.DB, expected models.ItemTrackStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body VerifyRFIDsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		existing, missing, err := VerifyRFIDs(db, body.RFIDs, expected)
		if err != nil {
			return apperr.AsFiber(err)
		}
		if existing == nil {
			existing = []string{}
		}
		if missing == nil {
			missing = []string{}
		}
		return c.JSON(VerifyRFIDsResponse{ExistingRFIDs: existing, MissingRFIDs: missing})
	}
}

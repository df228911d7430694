package requests

import (
	"errors"
	"time"
	_ "time/tzdata" // warehouse zone must resolve even without a system tz database

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

// Warehouse reference zone. Naive request dates are wall-clock times here.
var Kolkata = mustLoadKolkata()

func mustLoadKolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseRequestDate accepts RFC3339 or a timezone-naive timestamp. Naive input
// is interpreted as warehouse local time; the result is always UTC.
func ParseRequestDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, Kolkata); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation("request_date must be RFC3339 or 'YYYY-MM-DDTHH:MM:SS'")
}

func CreateRequest(db *gorm.DB, reqFrom, reqTo, description string, requestDate time.Time) (*models.Request, error) {
	if requestDate.IsZero() {
		return nil, apperr.Validation("request_date is required")
	}

	request := models.Request{
		ReqFrom:     reqFrom,
		ReqTo:       reqTo,
		Description: description,
		RequestDate: requestDate.UTC(),
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func ListRequests(db *gorm.DB) ([]models.Request, error) {
	var reqs []models.Request
	if err := db.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func GetRequestByID(db *gorm.DB, id uint) (*models.Request, error) {
	var req models.Request
	if err := db.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Request not found")
		}
		return nil, err
	}
	return &req, nil
}

func DeleteRequest(db *gorm.DB, id uint) error {
	req, err := GetRequestByID(db, id)
	if err != nil {
		return err
	}
	return db.Delete(req).Error
}

// TodayWindow returns the current warehouse-local calendar day as a UTC
// half-open interval.
func TodayWindow(now time.Time) (start, end time.Time) {
	local := now.In(Kolkata)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Kolkata).UTC()
	end = start.Add(24 * time.Hour)
	return start, end
}

// TodayRequests lists the requests scheduled for today (warehouse local day).
func TodayRequests(db *gorm.DB, now time.Time) ([]models.Request, error) {
	start, end := TodayWindow(now)

	var reqs []models.Request
	err := db.Where("request_date >= ? AND request_date < ?", start, end).Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

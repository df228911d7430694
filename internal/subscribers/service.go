package subscribers

import (
	"errors"
	"log"
	"time"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/notify"
	"warehouse-backend/internal/requests"

	"gorm.io/gorm"
)

type BroadcastResult struct {
	Sent             int    `json:"sent"`
	Failed           int    `json:"failed"`
	TotalSubscribers int    `json:"total_subscribers"`
	Timeslot         string `json:"timeslot"`
}

func GetByEmail(db *gorm.DB, email string) (*models.EmailSubscriber, error) {
	var sub models.EmailSubscriber
	if err := db.First(&sub, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Email subscriber not found")
		}
		return nil, err
	}
	return &sub, nil
}

// AddSubscriber subscribes an email, or updates the active flag when the
// email is already known.
func AddSubscriber(db *gorm.DB, email string, isActive bool) (*models.EmailSubscriber, error) {
	if email == "" {
		return nil, apperr.Validation("email is required")
	}

	existing, err := GetByEmail(db, email)
	if err == nil {
		existing.IsActive = isActive
		if err := db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	sub := models.EmailSubscriber{Email: email, IsActive: isActive}
	if err := db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func ListSubscribers(db *gorm.DB, activeOnly bool) ([]models.EmailSubscriber, error) {
	q := db.Model(&models.EmailSubscriber{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var subs []models.EmailSubscriber
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func SetSubscriberActive(db *gorm.DB, email string, active bool) (*models.EmailSubscriber, error) {
	sub, err := GetByEmail(db, email)
	if err != nil {
		return nil, err
	}

	sub.IsActive = active
	if err := db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func DeleteSubscriber(db *gorm.DB, email string) error {
	sub, err := GetByEmail(db, email)
	if err != nil {
		return err
	}
	return db.Delete(sub).Error
}

// Broadcast sends the daily summary for a timeslot to every active
// subscriber. A failed delivery is counted and logged but never aborts
// delivery to the remaining subscribers.
func Broadcast(db *gorm.DB, mailer notify.Mailer, timeslot string, now time.Time) (*BroadcastResult, error) {
	if timeslot != "morning" && timeslot != "evening" {
		return nil, apperr.Validation("Timeslot must be 'morning' or 'evening'")
	}

	reqs, err := requests.TodayRequests(db, now)
	if err != nil {
		return nil, err
	}

	subs, err := ListSubscribers(db, true)
	if err != nil {
		return nil, err
	}

	result := &BroadcastResult{TotalSubscribers: len(subs), Timeslot: timeslot}
	if len(subs) == 0 {
		log.Printf("No active subscribers for %s summary", timeslot)
		return result, nil
	}

	subject, body := notify.DailySummary(timeslot, now, reqs)

	for _, sub := range subs {
		if err := mailer.Send(sub.Email, subject, body); err != nil {
			log.Printf("Failed to send daily %s summary to %s: %v", timeslot, sub.Email, err)
			result.Failed++
			continue
		}

		sentAt := time.Now().UTC()
		if err := db.Model(&models.EmailSubscriber{}).Where("id = ?", sub.ID).
			Update("last_sent_date", sentAt).Error; err != nil {
			log.Printf("Could not update last_sent_date for %s: %v", sub.Email, err)
		}
		result.Sent++
	}

	log.Printf("Daily %s summary: sent to %d/%d subscribers", timeslot, result.Sent, len(subs))
	return result, nil
}

package subscribers

import (
	"errors"
	"testing"
	"time"

	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/requests"
)

// fakeMailer records sends and fails for addresses in failFor.
type fakeMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestAddSubscriberUpsert(t *testing.T) {
	db := database.NewTestDB(t)

	sub, err := AddSubscriber(db, "ops@example.com", true)
	if err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if !sub.IsActive {
		t.Error("expected subscriber active")
	}

	// Subscribing the same email again flips the flag instead of failing.
	again, err := AddSubscriber(db, "ops@example.com", false)
	if err != nil {
		t.Fatalf("AddSubscriber (second): %v", err)
	}
	if again.ID != sub.ID {
		t.Errorf("expected upsert on same row, got new id %d", again.ID)
	}
	if again.IsActive {
		t.Error("expected subscriber deactivated")
	}

	all, err := ListSubscribers(db, false)
	if err != nil {
		t.Fatalf("ListSubscribers: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 subscriber, got %d", len(all))
	}
}

func TestAddSubscriberRequiresEmail(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := AddSubscriber(db, "", true)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected Validation for empty email, got %v", err)
	}
}

func TestListSubscribersActiveOnly(t *testing.T) {
	db := database.NewTestDB(t)

	if _, err := AddSubscriber(db, "a@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if _, err := AddSubscriber(db, "b@example.com", false); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}

	active, err := ListSubscribers(db, true)
	if err != nil {
		t.Fatalf("ListSubscribers: %v", err)
	}
	if len(active) != 1 || active[0].Email != "a@example.com" {
		t.Errorf("expected only a@example.com active, got %v", active)
	}
}

func TestSetSubscriberActive(t *testing.T) {
	db := database.NewTestDB(t)

	if _, err := AddSubscriber(db, "a@example.com", false); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	sub, err := SetSubscriberActive(db, "a@example.com", true)
	if err != nil {
		t.Fatalf("SetSubscriberActive: %v", err)
	}
	if !sub.IsActive {
		t.Error("expected subscriber reactivated")
	}

	if _, err := SetSubscriberActive(db, "nobody@example.com", true); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDeleteSubscriber(t *testing.T) {
	db := database.NewTestDB(t)

	if _, err := AddSubscriber(db, "a@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if err := DeleteSubscriber(db, "a@example.com"); err != nil {
		t.Fatalf("DeleteSubscriber: %v", err)
	}
	if _, err := GetByEmail(db, "a@example.com"); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestBroadcast(t *testing.T) {
	db := database.NewTestDB(t)
	now := time.Date(2026, 8, 31, 4, 0, 0, 0, time.UTC) // 09:30 local

	reqDate, _ := requests.ParseRequestDate("2026-08-31T11:00:00")
	if _, err := requests.CreateRequest(db, "Dock A", "Floor 2", "pallet pickup", reqDate); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	if _, err := AddSubscriber(db, "a@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if _, err := AddSubscriber(db, "b@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if _, err := AddSubscriber(db, "inactive@example.com", false); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}

	mailer := &fakeMailer{}
	result, err := Broadcast(db, mailer, "morning", now)
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if result.Sent != 2 || result.Failed != 0 || result.TotalSubscribers != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(mailer.sent) != 2 {
		t.Errorf("expected 2 deliveries, got %v", mailer.sent)
	}

	// Successful delivery stamps last_sent_date.
	sub, err := GetByEmail(db, "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if sub.LastSentDate == nil {
		t.Error("expected last_sent_date set after delivery")
	}

	inactive, err := GetByEmail(db, "inactive@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if inactive.LastSentDate != nil {
		t.Error("inactive subscriber must not be mailed")
	}
}

func TestBroadcastIsolatesFailures(t *testing.T) {
	db := database.NewTestDB(t)
	now := time.Date(2026, 8, 31, 11, 30, 0, 0, time.UTC) // 17:00 local

	if _, err := AddSubscriber(db, "bad@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if _, err := AddSubscriber(db, "good@example.com", true); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}

	mailer := &fakeMailer{failFor: map[string]bool{"bad@example.com": true}}
	result, err := Broadcast(db, mailer, "evening", now)
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if result.Sent != 1 || result.Failed != 1 {
		t.Errorf("expected 1 sent / 1 failed, got %+v", result)
	}

	good, err := GetByEmail(db, "good@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if good.LastSentDate == nil {
		t.Error("expected delivery to continue past the failure")
	}

	bad, err := GetByEmail(db, "bad@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if bad.LastSentDate != nil {
		t.Error("failed delivery must not stamp last_sent_date")
	}
}

func TestBroadcastInvalidTimeslot(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := Broadcast(db, &fakeMailer{}, "noon", time.Now())
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected Validation for bad timeslot, got %v", err)
	}
}

func TestBroadcastNoSubscribers(t *testing.T) {
	db := database.NewTestDB(t)

	result, err := Broadcast(db, &fakeMailer{}, "morning", time.Now())
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if result.Sent != 0 || result.TotalSubscribers != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

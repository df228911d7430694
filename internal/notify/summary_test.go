package notify

import (
	"strings"
	"testing"
	"time"

	"warehouse-backend/internal/models"
)

func TestDailySummaryMorning(t *testing.T) {
	now := time.Date(2026, 8, 31, 4, 0, 0, 0, time.UTC) // 09:30 local

	reqs := []models.Request{
		{ReqFrom: "Dock A", ReqTo: "Floor 2", Description: "pallet pickup",
			RequestDate: time.Date(2026, 8, 31, 5, 30, 0, 0, time.UTC)},
	}
	reqs[0].ID = 42

	subject, body := DailySummary("morning", now, reqs)
	if subject != "Good Morning - Daily Request Summary" {
		t.Errorf("unexpected subject %q", subject)
	}
	for _, want := range []string{
		"GOOD MORNING REQUEST SUMMARY",
		"Summary Time: 9:30 AM",
		"Date: 2026-08-31",
		"TODAY'S REQUESTS (1 total)",
		"Request ID: 42",
		"From: Dock A",
		"Scheduled: 2026-08-31 11:00",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestDailySummaryEveningEmpty(t *testing.T) {
	subject, body := DailySummary("evening", time.Now(), nil)
	if subject != "Good Evening - Daily Request Summary" {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "No active requests today.") {
		t.Errorf("expected empty-day notice, got:\n%s", body)
	}
	if !strings.Contains(body, "Summary Time: 5:00 PM") {
		t.Errorf("expected evening time note, got:\n%s", body)
	}
}

func TestDailySummaryBlankDescription(t *testing.T) {
	reqs := []models.Request{{ReqFrom: "Dock B", ReqTo: "Dispatch", RequestDate: time.Now()}}
	_, body := DailySummary("morning", time.Now(), reqs)
	if !strings.Contains(body, "Description: No description") {
		t.Errorf("expected placeholder description, got:\n%s", body)
	}
}

package notify

import (
	"fmt"
	"strings"
	"time"

	"warehouse-backend/internal/models"
	"warehouse-backend/internal/requests"
)

// DailySummary renders the plain-text broadcast for a timeslot ("morning" or
// "evening"). Dates are shown in warehouse local time.
func DailySummary(timeslot string, now time.Time, reqs []models.Request) (subject, body string) {
	greeting := "Good Evening"
	timeNote := "5:00 PM"
	if timeslot == "morning" {
		greeting = "Good Morning"
		timeNote = "9:30 AM"
	}

	subject = fmt.Sprintf("%s - Daily Request Summary", greeting)

	var b strings.Builder
	fmt.Fprintf(&b, "=================================\n")
	fmt.Fprintf(&b, "%s REQUEST SUMMARY\n", strings.ToUpper(greeting))
	fmt.Fprintf(&b, "=================================\n\n")
	fmt.Fprintf(&b, "Summary Time: %s\n", timeNote)
	fmt.Fprintf(&b, "Date: %s\n\n", now.In(requests.Kolkata).Format("2006-01-02"))
	fmt.Fprintf(&b, "=================================\n")
	fmt.Fprintf(&b, "TODAY'S REQUESTS (%d total)\n", len(reqs))
	fmt.Fprintf(&b, "=================================\n\n")

	if len(reqs) == 0 {
		b.WriteString("No active requests today.\n")
		return subject, b.String()
	}

	for _, req := range reqs {
		description := req.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(&b, "Request ID: %d\n", req.ID)
		fmt.Fprintf(&b, "From: %s\n", req.ReqFrom)
		fmt.Fprintf(&b, "To: %s\n", req.ReqTo)
		fmt.Fprintf(&b, "Description: %s\n", description)
		fmt.Fprintf(&b, "Scheduled: %s\n", req.RequestDate.In(requests.Kolkata).Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))
	}

	return subject, b.String()
}

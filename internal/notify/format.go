package notify

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
)

// StatusDisplay is the emoji and label shown for a registration status
type StatusDisplay struct {
	Emoji string
	Text  string
}

func RegistrationStatusDisplay(status model.RegistrationStatus) StatusDisplay {
	displays := map[model.RegistrationStatus]StatusDisplay{
		model.RegistrationStatusPending:  {"⏳", "Pending"},
		model.RegistrationStatusApproved: {"✅", "Approved"},
		model.RegistrationStatusRejected: {"❌", "Rejected"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}

// Pluralize picks singular or plural by count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// DecisionMessage is sent to the student once the tutor decides on a registration
func DecisionMessage(reg *model.CourseRegistration, tutorName, courseName string) string {
	display := RegistrationStatusDisplay(reg.Status)

	verb := "rejected"
	if reg.IsApproved() {
		verb = "approved"
	}

	text := fmt.Sprintf("%s Registration %s\n\n%s %s your registration for \"%s\".",
		display.Emoji, display.Text, tutorName, verb, courseName)

	if reg.TutorResponse != "" {
		text += "\n\n💬 " + reg.TutorResponse
	}

	return text
}

// DigestMessage is sent to a tutor that has count pending registrations
func DigestMessage(count int, now time.Time) string {
	return fmt.Sprintf("📩 You have %d pending registration %s waiting for a decision (as of %s).",
		count, Pluralize(count, "request", "requests"), FormatDateTime(now))
}

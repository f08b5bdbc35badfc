package organizer

import (
	"eventbot/pkg/domain"
	"fmt"
	"time"
)

const (
	// DateLayout is the day format admins type when composing an event.
	DateLayout = "02.01.2006"
	// TimeLayout is the start time format offered by the time keyboard.
	TimeLayout = "15:04"

	// reminderWindow is how long a reminder tier stays due after its lead
	// time passes. The sweep runs on an interval, so a tier is considered due
	// for a whole window rather than a single instant.
	reminderWindow = 2 * time.Hour

	// completionGrace is how long after the start time an event is kept
	// active before the sweep closes it.
	completionGrace = time.Hour
)

// reminderLeads maps each tier to how long before the event start it fires.
var reminderLeads = map[domain.ReminderTier]time.Duration{
	domain.ReminderTierWeek:  7 * 24 * time.Hour,
	domain.ReminderTier3Days: 3 * 24 * time.Hour,
	domain.ReminderTierDay:   24 * time.Hour,
	domain.ReminderTierHours: 7 * time.Hour,
	domain.ReminderTierHour:  4 * time.Hour,
}

// ParseSchedule combines a typed date (DD.MM.YYYY) and a keyboard time (HH:MM)
// into the event start time in the local timezone.
func ParseSchedule(date, startTime string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse schedule: %w", err)
	}

	return t, nil
}

// StartTimeSlots returns the start times offered on the time keyboard, every
// half hour from 08:00 through 22:00.
func StartTimeSlots() []string {
	slots := make([]string, 0, 29)
	for h := 8; h <= 22; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		if h < 22 {
			slots = append(slots, fmt.Sprintf("%02d:30", h))
		}
	}

	return slots
}

// DueTiers returns the reminder tiers that should go out for the event right
// now: tiers whose lead time has passed within the reminder window and that
// were not sent yet. Tiers whose window was missed entirely (e.g. the bot was
// down) are skipped rather than sent late.
func DueTiers(event domain.Event, now time.Time) []domain.ReminderTier {
	until := event.Date.Sub(now)
	if until <= 0 {
		return nil
	}

	var due []domain.ReminderTier
	for _, tier := range domain.ReminderTiers {
		if event.ReminderSent(tier) {
			continue
		}

		lead := reminderLeads[tier]
		if until <= lead && until > lead-reminderWindow {
			due = append(due, tier)
		}
	}

	return due
}

// ShouldComplete reports whether the event's start time has passed long enough
// ago for the sweep to close it.
func ShouldComplete(event domain.Event, now time.Time) bool {
	return event.Status == domain.EventStatusActive &&
		now.Sub(event.Date) >= completionGrace
}

// TimeUntilLabel renders the time left before the event for a reminder tier,
// e.g. "in 7 days" or "in 4 hours".
func TimeUntilLabel(tier domain.ReminderTier) string {
	switch tier {
	case domain.ReminderTierWeek:
		return "in 7 days"
	case domain.ReminderTier3Days:
		return "in 3 days"
	case domain.ReminderTierDay:
		return "in 24 hours"
	case domain.ReminderTierHours:
		return "in 7 hours"
	case domain.ReminderTierHour:
		return "in 4 hours"
	default:
		return "soon"
	}
}

package organizer_test

import (
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	cases := []struct {
		name string
		date string
		time string
		ok   bool
	}{
		{name: "valid schedule", date: "24.12.2026", time: "18:30", ok: true},
		{name: "single digit day rejected", date: "5.1.2026", time: "18:30", ok: false},
		{name: "wrong separator", date: "24-12-2026", time: "18:30", ok: false},
		{name: "invalid time", date: "24.12.2026", time: "25:00", ok: false},
		{name: "empty date", date: "", time: "18:30", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := organizer.ParseSchedule(tc.date, tc.time)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, 2026, got.Year())
			require.Equal(t, time.December, got.Month())
			require.Equal(t, 24, got.Day())
			require.Equal(t, 18, got.Hour())
			require.Equal(t, 30, got.Minute())
		})
	}
}

func TestStartTimeSlots(t *testing.T) {
	slots := organizer.StartTimeSlots()
	require.Len(t, slots, 29)
	require.Equal(t, "08:00", slots[0])
	require.Equal(t, "08:30", slots[1])
	require.Equal(t, "21:30", slots[len(slots)-2])
	require.Equal(t, "22:00", slots[len(slots)-1])
}

func TestDueTiers(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	event := func(until time.Duration, sent ...domain.ReminderTier) domain.Event {
		e := domain.Event{
			Date:          now.Add(until),
			Status:        domain.EventStatusActive,
			RemindersSent: map[domain.ReminderTier]bool{},
		}
		for _, tier := range sent {
			e.RemindersSent[tier] = true
		}

		return e
	}

	t.Run("tier due inside window", func(t *testing.T) {
		due := organizer.DueTiers(event(7*24*time.Hour-time.Hour), now)
		require.Equal(t, []domain.ReminderTier{domain.ReminderTierWeek}, due)
	})

	t.Run("tier already sent", func(t *testing.T) {
		due := organizer.DueTiers(event(7*24*time.Hour-time.Hour, domain.ReminderTierWeek), now)
		require.Empty(t, due)
	})

	t.Run("window missed", func(t *testing.T) {
		// 3 hours past the week lead, outside the two hour window
		due := organizer.DueTiers(event(7*24*time.Hour-3*time.Hour), now)
		require.Empty(t, due)
	})

	t.Run("exactly at lead time", func(t *testing.T) {
		due := organizer.DueTiers(event(24*time.Hour), now)
		require.Equal(t, []domain.ReminderTier{domain.ReminderTierDay}, due)
	})

	t.Run("multiple tiers never due together", func(t *testing.T) {
		// leads are further apart than the window, so at most one tier fires
		for _, until := range []time.Duration{
			7 * 24 * time.Hour,
			3 * 24 * time.Hour,
			24 * time.Hour,
			7 * time.Hour,
			4 * time.Hour,
		} {
			due := organizer.DueTiers(event(until-time.Minute), now)
			require.Len(t, due, 1)
		}
	})

	t.Run("started events get nothing", func(t *testing.T) {
		due := organizer.DueTiers(event(-time.Minute), now)
		require.Empty(t, due)
	})
}

func TestShouldComplete(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		date   time.Time
		status domain.EventStatus
		want   bool
	}{
		{name: "still upcoming", date: now.Add(time.Hour), status: domain.EventStatusActive, want: false},
		{name: "just started", date: now.Add(-30 * time.Minute), status: domain.EventStatusActive, want: false},
		{name: "one hour in", date: now.Add(-time.Hour), status: domain.EventStatusActive, want: true},
		{name: "long over", date: now.Add(-48 * time.Hour), status: domain.EventStatusActive, want: true},
		{name: "already completed", date: now.Add(-48 * time.Hour), status: domain.EventStatusCompleted, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := organizer.ShouldComplete(domain.Event{Date: tc.date, Status: tc.status}, now)
			require.Equal(t, tc.want, got)
		})
	}
}

package worker

import (
	"context"
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/metrics"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReminderWorker is the River worker behind the periodic reminder sweep. On
// every run it walks all active events, sends any reminder tier that became
// due since the last run, and closes events whose start time has passed.
type ReminderWorker struct {
	river.WorkerDefaults[organizer.ReminderSweepArgs]

	organizer   organizer.Organizer
	sender      Sender
	concurrency int
}

// NewReminderWorker constructs a ReminderWorker with the given fan-out
// concurrency.
func NewReminderWorker(org organizer.Organizer, sender Sender, concurrency int) *ReminderWorker {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &ReminderWorker{
		organizer:   org,
		sender:      sender,
		concurrency: concurrency,
	}
}

// Work executes one sweep. Failures on a single event are logged and the
// sweep moves on; the next run picks up whatever was missed, since tier flags
// are only set after a successful fan-out.
func (w *ReminderWorker) Work(ctx context.Context, job *river.Job[organizer.ReminderSweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	events, err := w.organizer.ActiveEvents(ctx)
	if err != nil {
		return fmt.Errorf("could not list active events: %w", err)
	}

	now := time.Now()
	for _, event := range events {
		if err := w.sweepEvent(ctx, event, now); err != nil {
			logger.Error(ctx, "could not sweep event",
				zap.Int64("eventID", int64(event.ID)), zap.Error(err))
		}
	}

	return nil
}

func (w *ReminderWorker) sweepEvent(ctx context.Context, event domain.Event, now time.Time) error {
	for _, tier := range organizer.DueTiers(event, now) {
		if err := w.remind(ctx, event, tier); err != nil {
			return err
		}
	}

	if organizer.ShouldComplete(event, now) {
		if err := w.complete(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

// remind fans the tier's reminder out to every known user: registrants get
// the plain reminder, everyone else gets it with a sign-up invitation
// attached. The tier is marked sent after the fan-out, so a crash mid-send
// re-sends the tier on the next sweep rather than dropping it.
func (w *ReminderWorker) remind(ctx context.Context, event domain.Event, tier domain.ReminderTier) error {
	registrantIDs, err := w.organizer.RegisteredUserIDs(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("could not list registrants: %w", err)
	}
	registered := make(map[domain.UserID]bool, len(registrantIDs))
	for _, id := range registrantIDs {
		registered[id] = true
	}

	recipients, err := w.organizer.AllUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not list users: %w", err)
	}

	text := reminderText(event, tier)
	invite := text + "\n\nWould you like to register?"

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, userID := range recipients {
		g.Go(func() error {
			var err error
			if registered[userID] {
				err = w.sender.SendText(gctx, userID, text)
			} else {
				err = w.sender.SendSignupPrompt(gctx, userID, invite, event.ID)
			}
			if err != nil {
				logger.Warn(gctx, "could not deliver reminder to user",
					zap.Int64("userID", int64(userID)), zap.Error(err))

				return nil
			}
			metrics.ReminderMessages.WithLabelValues(string(tier)).Inc()

			return nil
		})
	}
	_ = g.Wait()

	if err := w.organizer.MarkReminderSent(ctx, event.ID, tier); err != nil {
		return fmt.Errorf("could not mark reminder sent: %w", err)
	}

	logger.Info(ctx, "reminder tier delivered",
		zap.Int64("eventID", int64(event.ID)),
		zap.String("tier", string(tier)),
		zap.Int("recipients", len(recipients)))

	return nil
}

// complete closes a started event and tells the admins about it.
func (w *ReminderWorker) complete(ctx context.Context, event domain.Event) error {
	if err := w.organizer.CompleteEvent(ctx, event.ID); err != nil {
		return fmt.Errorf("could not complete event: %w", err)
	}
	metrics.EventsCompleted.Inc()

	admins, err := w.organizer.AdminIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not list admins: %w", err)
	}

	w.fanOut(ctx, admins, completionText(event))

	logger.Info(ctx, "event completed", zap.Int64("eventID", int64(event.ID)))

	return nil
}

func (w *ReminderWorker) fanOut(ctx context.Context, recipients []domain.UserID, text string) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, userID := range recipients {
		g.Go(func() error {
			if err := w.sender.SendText(gctx, userID, text); err != nil {
				logger.Warn(gctx, "could not deliver notice to user",
					zap.Int64("userID", int64(userID)), zap.Error(err))
			}

			return nil
		})
	}
	_ = g.Wait()
}

func reminderText(event domain.Event, tier domain.ReminderTier) string {
	return fmt.Sprintf("Reminder: %q starts %s, on %s.",
		event.Name,
		organizer.TimeUntilLabel(tier),
		event.Date.Format(organizer.DateLayout+" "+organizer.TimeLayout))
}

func completionText(event domain.Event) string {
	return fmt.Sprintf("Event %q has started and was closed for new registrations.", event.Name)
}

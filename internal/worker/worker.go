// Package worker runs the background side of the bot on top of River:
// broadcast delivery and the periodic reminder sweep.
package worker

import (
	"context"
	"eventbot/internal/config"
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Sender delivers messages to Telegram users. It is implemented by the bot
// transport layer; workers stay unaware of the Telegram client.
type Sender interface {
	// SendText delivers a plain text message.
	SendText(ctx context.Context, id domain.UserID, text string) error
	// SendMedia delivers a media message referenced by its Telegram file ID.
	// The caption is ignored for media kinds that cannot carry one.
	SendMedia(ctx context.Context, id domain.UserID, kind domain.MediaKind, fileID, caption string) error
	// SendSignupPrompt delivers a text message carrying a sign-up button for
	// the given event.
	SendSignupPrompt(ctx context.Context, id domain.UserID, text string, eventID domain.EventID) error
}

// Options configure fan-out concurrency and the reminder sweep schedule.
type Options struct {
	// SendConcurrency bounds how many Telegram messages are in flight at once
	// during broadcast and reminder fan-out.
	SendConcurrency int
	// ReminderSweepInterval is how often the reminder sweep runs.
	ReminderSweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SendConcurrency:       cfg.Bot.SendConcurrency,
		ReminderSweepInterval: cfg.Bot.ReminderSweepInterval,
	}
}

// Start registers the workers, schedules the periodic reminder sweep and
// starts the River client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	org organizer.Organizer,
	sender Sender,
	opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBroadcastWorker(org, sender, opts.SendConcurrency))
	river.AddWorker(workers, NewReminderWorker(org, sender, opts.SendConcurrency))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 100}, // TODO: make configurable
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.ReminderSweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return organizer.ReminderSweepArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

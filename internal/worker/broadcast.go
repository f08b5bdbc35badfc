package worker

import (
	"context"
	"errors"
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/metrics"
	"eventbot/pkg/serrors"
	"fmt"
	"sync/atomic"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BroadcastWorker is a River worker that delivers a queued broadcast to every
// known user. Delivery is fanned out with bounded concurrency; individual
// failures (blocked bots, deleted accounts) are logged and skipped so one bad
// recipient cannot fail the whole broadcast.
type BroadcastWorker struct {
	river.WorkerDefaults[organizer.BroadcastJobArgs]

	// organizer provides the broadcast payload and the recipient list.
	organizer organizer.Organizer
	// sender performs the actual Telegram delivery.
	sender Sender
	// concurrency bounds how many sends run in parallel.
	concurrency int
}

// NewBroadcastWorker constructs a BroadcastWorker with the given fan-out
// concurrency.
func NewBroadcastWorker(org organizer.Organizer, sender Sender, concurrency int) *BroadcastWorker {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &BroadcastWorker{
		organizer:   org,
		sender:      sender,
		concurrency: concurrency,
	}
}

// Work delivers a single broadcast. Broadcasts that were already delivered
// (e.g. a retry after a crash between fan-out and the status update) are
// re-sent in full; the job is the unit of delivery, not the individual
// message. A missing broadcast row cancels the job.
func (w *BroadcastWorker) Work(ctx context.Context, job *river.Job[organizer.BroadcastJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("broadcastID", job.Args.BroadcastID))

	id, err := domain.ParseBroadcastID(job.Args.BroadcastID)
	if err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	broadcast, err := w.organizer.Broadcast(ctx, id)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not load broadcast: %w", err)
	}
	if broadcast.Status == domain.BroadcastStatusSent {
		logger.Info(ctx, "broadcast already delivered, skipping")

		return nil
	}

	recipients, err := w.organizer.AllUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not list recipients: %w", err)
	}

	var sent atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, userID := range recipients {
		g.Go(func() error {
			if err := w.deliver(gctx, *broadcast, userID); err != nil {
				metrics.BroadcastMessages.WithLabelValues("failed").Inc()
				logger.Warn(gctx, "could not deliver broadcast to user",
					zap.Int64("userID", int64(userID)), zap.Error(err))

				return nil
			}

			metrics.BroadcastMessages.WithLabelValues("sent").Inc()
			sent.Add(1)

			return nil
		})
	}
	_ = g.Wait()

	if err := w.organizer.FinishBroadcast(ctx, id, int(sent.Load())); err != nil {
		return fmt.Errorf("could not finish broadcast: %w", err)
	}

	logger.Info(ctx, "broadcast delivered",
		zap.Int64("sent", sent.Load()),
		zap.Int("recipients", len(recipients)))

	return nil
}

func (w *BroadcastWorker) deliver(ctx context.Context, b domain.Broadcast, userID domain.UserID) error {
	if b.Kind == domain.MediaKindText {
		return w.sender.SendText(ctx, userID, b.Text) //nolint: wrapcheck
	}

	return w.sender.SendMedia(ctx, userID, b.Kind, b.MediaID, b.Text) //nolint: wrapcheck
}

package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"eventbot/internal/organizer"
	mockorganizer "eventbot/internal/organizer/mock"
	"eventbot/internal/worker"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// fakeSender records deliveries and can be told to fail for specific users.
type fakeSender struct {
	mu      sync.Mutex
	texts   map[domain.UserID][]string
	media   map[domain.UserID][]string
	prompts map[domain.UserID][]signupPrompt
	failFor map[domain.UserID]error
}

type signupPrompt struct {
	text    string
	eventID domain.EventID
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		texts:   make(map[domain.UserID][]string),
		media:   make(map[domain.UserID][]string),
		prompts: make(map[domain.UserID][]signupPrompt),
		failFor: make(map[domain.UserID]error),
	}
}

func (f *fakeSender) SendText(_ context.Context, id domain.UserID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[id]; err != nil {
		return err
	}
	f.texts[id] = append(f.texts[id], text)

	return nil
}

func (f *fakeSender) SendMedia(_ context.Context,
	id domain.UserID,
	_ domain.MediaKind,
	fileID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[id]; err != nil {
		return err
	}
	f.media[id] = append(f.media[id], fileID)

	return nil
}

func (f *fakeSender) SendSignupPrompt(_ context.Context, id domain.UserID, text string, eventID domain.EventID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[id]; err != nil {
		return err
	}
	f.prompts[id] = append(f.prompts[id], signupPrompt{text: text, eventID: eventID})

	return nil
}

func makeBroadcastJob(id int64, broadcastID string) *river.Job[organizer.BroadcastJobArgs] {
	return &river.Job[organizer.BroadcastJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   organizer.BroadcastJobArgs{BroadcastID: broadcastID},
	}
}

func TestBroadcastWorker_Work_Text(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := mockorganizer.NewMockOrganizer(ctrl)
	sender := newFakeSender()
	w := worker.NewBroadcastWorker(org, sender, 4)

	id := domain.BroadcastID(uuid.New())
	org.EXPECT().Broadcast(gomock.Any(), id).Return(&domain.Broadcast{
		ID:     id,
		Kind:   domain.MediaKindText,
		Text:   "hello",
		Status: domain.BroadcastStatusPending,
	}, nil)
	org.EXPECT().AllUserIDs(gomock.Any()).Return([]domain.UserID{1, 2, 3}, nil)
	org.EXPECT().FinishBroadcast(gomock.Any(), id, 3).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeBroadcastJob(1, id.String())))
	require.Equal(t, []string{"hello"}, sender.texts[1])
	require.Equal(t, []string{"hello"}, sender.texts[2])
	require.Equal(t, []string{"hello"}, sender.texts[3])
}

func TestBroadcastWorker_Work_FailuresAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := mockorganizer.NewMockOrganizer(ctrl)
	sender := newFakeSender()
	sender.failFor[2] = serrors.With(serrors.ErrInternal, "bot was blocked by the user")
	w := worker.NewBroadcastWorker(org, sender, 4)

	id := domain.BroadcastID(uuid.New())
	org.EXPECT().Broadcast(gomock.Any(), id).Return(&domain.Broadcast{
		ID:      id,
		Kind:    domain.MediaKindPhoto,
		MediaID: "photo-1",
		Status:  domain.BroadcastStatusPending,
	}, nil)
	org.EXPECT().AllUserIDs(gomock.Any()).Return([]domain.UserID{1, 2, 3}, nil)
	// only the two successful deliveries are counted
	org.EXPECT().FinishBroadcast(gomock.Any(), id, 2).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeBroadcastJob(2, id.String())))
	require.Equal(t, []string{"photo-1"}, sender.media[1])
	require.Empty(t, sender.media[2])
}

func TestBroadcastWorker_Work_AlreadySent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := mockorganizer.NewMockOrganizer(ctrl)
	sender := newFakeSender()
	w := worker.NewBroadcastWorker(org, sender, 4)

	id := domain.BroadcastID(uuid.New())
	org.EXPECT().Broadcast(gomock.Any(), id).Return(&domain.Broadcast{
		ID:     id,
		Kind:   domain.MediaKindText,
		Text:   "hello",
		Status: domain.BroadcastStatusSent,
		SentAt: time.Now(),
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeBroadcastJob(3, id.String())))
	require.Empty(t, sender.texts)
}

func TestBroadcastWorker_Work_MissingBroadcastCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := mockorganizer.NewMockOrganizer(ctrl)
	w := worker.NewBroadcastWorker(org, newFakeSender(), 4)

	id := domain.BroadcastID(uuid.New())
	org.EXPECT().Broadcast(gomock.Any(), id).
		Return(nil, serrors.With(serrors.ErrNotFound, "broadcast not found"))

	err := w.Work(context.Background(), makeBroadcastJob(4, id.String()))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestBroadcastWorker_Work_BadIDCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := mockorganizer.NewMockOrganizer(ctrl)
	w := worker.NewBroadcastWorker(org, newFakeSender(), 4)

	err := w.Work(context.Background(), makeBroadcastJob(5, "not-a-uuid"))
	require.Error(t, err)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

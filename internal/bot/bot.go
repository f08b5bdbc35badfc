// Package bot is the Telegram transport layer. It translates messages and
// callback queries into organizer calls and renders the replies, tracking
// multi-step conversations in per-chat sessions.
package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"eventbot/internal/config"
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/serrors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply keyboard button labels.
const (
	buttonCommands = "Commands"
	buttonEvents   = "Events"
)

const somethingWentWrong = "Something went wrong. Please try again later."

// Bot wraps the Telegram client together with the conversation state. It also
// implements the message sending interface the background workers use for
// broadcast and reminder fan-out.
type Bot struct {
	tb       *tele.Bot
	org      organizer.Organizer
	sessions *sessions

	// maxQuestions bounds questionnaire length during event composition.
	maxQuestions int

	// ctx is the application context handlers run under. Telegram handlers
	// carry no context of their own.
	ctx context.Context
}

// New builds the Telegram bot and registers all handlers. The bot does not
// poll until Start is called.
func New(ctx context.Context, cfg *config.Config, org organizer.Organizer) (*Bot, error) {
	b := &Bot{
		org:          org,
		sessions:     newSessions(),
		maxQuestions: cfg.Bot.MaxQuestions,
		ctx:          ctx,
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:     cfg.Telegram.Token,
		Poller:    &tele.LongPoller{Timeout: cfg.Telegram.PollTimeout},
		ParseMode: tele.ModeHTML,
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("userID", c.Sender().ID))
			}
			logger.Error(ctx, "telegram handler failed", fields...)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot: %w", err)
	}
	b.tb = tb

	b.route()

	return b, nil
}

func (b *Bot) route() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/give_my_id", b.handleGiveMyID)
	b.tb.Handle("/cancel", b.handleCancelFlow)
	b.tb.Handle("/done", b.handleDone)

	for _, cmd := range adminCommands {
		b.tb.Handle("/"+cmd, b.gateAdminCommand(cmd))
	}

	b.tb.Handle(tele.OnText, b.handleText)
	b.tb.Handle(tele.OnCallback, b.handleCallback)

	b.tb.Handle(tele.OnPhoto, b.handleMedia)
	b.tb.Handle(tele.OnVoice, b.handleMedia)
	b.tb.Handle(tele.OnVideo, b.handleMedia)
	b.tb.Handle(tele.OnVideoNote, b.handleMedia)
	b.tb.Handle(tele.OnAnimation, b.handleMedia)
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	logger.Info(b.ctx, "starting telegram bot")
	b.tb.Start()
}

// Stop stops the long poller.
func (b *Bot) Stop() {
	b.tb.Stop()
}

// sendErr normalizes a delivery failure. Telegram flood control surfaces as a
// rate-limit error, so workers can tell throttling apart from hard failures
// such as a user having blocked the bot.
func sendErr(err error, id domain.UserID, what string) error {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return serrors.Wrap(serrors.ErrRateLimited, err,
			"telegram flood control for %d, retry after %ds", id, flood.RetryAfter)
	}

	var tgErr *tele.Error
	if errors.As(err, &tgErr) && tgErr.Code == http.StatusTooManyRequests {
		return serrors.Wrap(serrors.ErrRateLimited, err, "telegram flood control for %d", id)
	}

	return fmt.Errorf("could not send %s to %d: %w", what, id, err)
}

// SendText delivers a plain text message to a user.
func (b *Bot) SendText(ctx context.Context, id domain.UserID, text string) error {
	if _, err := b.tb.Send(tele.ChatID(id), text); err != nil {
		return sendErr(err, id, "message")
	}

	return nil
}

// SendMedia delivers a media message referenced by its Telegram file ID. The
// caption is dropped for video notes, which cannot carry one.
func (b *Bot) SendMedia(ctx context.Context, id domain.UserID, kind domain.MediaKind, fileID, caption string) error {
	var payload any
	switch kind {
	case domain.MediaKindPhoto:
		payload = &tele.Photo{File: tele.File{FileID: fileID}, Caption: caption}
	case domain.MediaKindVoice:
		payload = &tele.Voice{File: tele.File{FileID: fileID}, Caption: caption}
	case domain.MediaKindVideo:
		payload = &tele.Video{File: tele.File{FileID: fileID}, Caption: caption}
	case domain.MediaKindVideoNote:
		payload = &tele.VideoNote{File: tele.File{FileID: fileID}}
	default:
		return serrors.With(serrors.ErrBadRequest, "unsupported media kind %q", kind)
	}

	if _, err := b.tb.Send(tele.ChatID(id), payload); err != nil {
		return sendErr(err, id, string(kind))
	}

	return nil
}

// SendSignupPrompt delivers a text message with a sign-up button for the
// event attached.
func (b *Bot) SendSignupPrompt(ctx context.Context, id domain.UserID, text string, eventID domain.EventID) error {
	if _, err := b.tb.Send(tele.ChatID(id), text, signupKeyboard(eventID)); err != nil {
		return sendErr(err, id, "signup prompt")
	}

	return nil
}

// handlerCtx returns the context and session for the current update, with the
// user ID attached to the logger.
func (b *Bot) handlerCtx(c tele.Context) (context.Context, *session, domain.UserID) {
	id := domain.UserID(c.Sender().ID)
	ctx := logger.WithFields(b.ctx, zap.Int64("userID", int64(id)))

	return ctx, b.sessions.Get(id), id
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/serrors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// fail tells the chat something broke and hands the error to the bot error
// handler for logging.
func (b *Bot) fail(c tele.Context, err error) error {
	_ = c.Send(somethingWentWrong)

	return err
}

// userMessage renders expected flow errors for the chat. Internal errors fall
// back to the given text.
func userMessage(err error, fallback string) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return fallback
}

func eventCard(event *domain.Event) string {
	return fmt.Sprintf(
		"📌 <b>%s</b>\n\n📅 <b>When:</b> %s\n\n📝 <b>About:</b> <i>%s</i>\n\n<b>Would you like to sign up?</b>",
		event.Name,
		event.Date.Format(organizer.DateLayout+" at "+organizer.TimeLayout),
		event.Description,
	)
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx, _, id := b.handlerCtx(c)
	b.sessions.Reset(id)

	sender := c.Sender()
	user, err := b.org.EnsureUser(ctx, domain.User{
		ID:        id,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	})
	if err != nil {
		return b.fail(c, err)
	}

	greeting := fmt.Sprintf("👋 Hi, <b>%s</b>!\n\n", sender.FirstName)

	if user.IsAdmin {
		commands, err := b.org.Setting(ctx, domain.SettingAdminCommandsTxt)
		if err != nil {
			return b.fail(c, err)
		}

		return c.Send(greeting+"You are an administrator.\n\n"+commands, adminReplyKeyboard())
	}

	if videoID, err := b.org.Setting(ctx, domain.SettingWelcomeVideoID); err == nil && videoID != "" {
		if err := c.Send(&tele.Video{File: tele.File{FileID: videoID}}); err != nil {
			logger.Warn(ctx, "could not send greeting video", zap.Error(err))
		}
	}

	startMessage, err := b.org.Setting(ctx, domain.SettingStartMessage)
	if err != nil {
		return b.fail(c, err)
	}
	if err := c.Send(greeting+startMessage, eventsReplyKeyboard()); err != nil {
		return err
	}

	welcome, err := b.org.Setting(ctx, domain.SettingWelcomeMessage)
	if err != nil {
		return b.fail(c, err)
	}

	return c.Send(welcome, digitsKeyboard())
}

func (b *Bot) handleGiveMyID(c tele.Context) error {
	return c.Send(fmt.Sprintf("Your ID: %d", c.Sender().ID))
}

// handleCancelFlow aborts whatever conversation flow is in progress.
func (b *Bot) handleCancelFlow(c tele.Context) error {
	_, _, id := b.handlerCtx(c)
	if !b.sessions.Active(id) {
		return c.Send("⚠️ There is nothing to cancel right now.")
	}

	b.sessions.Reset(id)

	return c.Send("✅ Action cancelled.")
}

// handleText routes free-form text: first the reply keyboard buttons, then
// whatever the current conversation step expects.
func (b *Bot) handleText(c tele.Context) error {
	ctx, sess, id := b.handlerCtx(c)
	text := strings.TrimSpace(c.Text())

	switch text {
	case buttonEvents:
		return b.offerActiveEvents(ctx, c)
	case buttonCommands:
		isAdmin, err := b.org.IsAdmin(ctx, id)
		if err != nil {
			return b.fail(c, err)
		}
		if !isAdmin {
			return c.Send("🚫 You do not have admin rights.")
		}

		return c.Send("Pick a command:", commandsKeyboard())
	}

	switch sess.step {
	case stepAnswerQuestion:
		return b.recordAnswer(ctx, c, sess, id, text)
	case stepAdminPassword:
		return b.checkAdminPassword(ctx, c, sess, id, text)
	case stepEventName, stepEventDescription, stepEventDate, stepEventTime, stepEventQuestion:
		return b.continueEventDraft(ctx, c, sess, text)
	case stepAppendQuestion:
		return b.collectQuestion(c, sess, text)
	case stepQuestionText:
		return b.saveQuestionText(ctx, c, sess, id, text)
	case stepBroadcastMessage:
		return b.captureBroadcast(c, sess)
	case stepAddAdminID, stepAddAdminPassword:
		return b.continueAddAdmin(ctx, c, sess, text)
	case stepOldPassword, stepNewPassword:
		return b.continueChangePassword(ctx, c, sess, id, text)
	case stepSettingValue:
		return b.saveSettingValue(ctx, c, sess, id, text)
	default:
		return nil
	}
}

// handleCallback dispatches inline keyboard presses by their action prefix.
func (b *Bot) handleCallback(c tele.Context) error {
	ctx, sess, id := b.handlerCtx(c)
	action, arg := splitCallback(c.Callback().Data)

	switch action {
	case cbDigit:
		return b.handleDigit(ctx, c, id)
	case cbRegister:
		return b.showEventCard(ctx, c, arg)
	case cbConfirmYes:
		return b.confirmRegistration(ctx, c, sess, id, arg)
	case cbConfirmNo:
		return b.declineRegistration(ctx, c)
	case cbTime:
		return b.pickEventTime(ctx, c, sess, arg)
	case cbCommand:
		return b.gateAdminCallback(ctx, c, sess, id, arg)
	case cbEvent:
		return b.pickEvent(ctx, c, sess, id, arg)
	case cbQuestion:
		return b.pickQuestion(ctx, c, sess, arg)
	case cbCancelConfirm:
		return b.confirmEventCancel(ctx, c, id, arg)
	case cbCancelReject:
		b.sessions.Reset(id)
		_ = c.Respond()

		return c.Edit("Event cancellation dismissed.")
	case cbBroadcastConfirm:
		return b.confirmBroadcast(ctx, c, sess, id)
	case cbBroadcastCancel:
		b.sessions.Reset(id)
		_ = c.Respond(&tele.CallbackResponse{Text: "❌ Cancelling the broadcast..."})

		return c.Send("Broadcast cancelled.")
	case cbEditSetting:
		return b.beginEditSetting(ctx, c, sess, id, arg)
	default:
		return c.Respond(&tele.CallbackResponse{Text: "Unknown action."})
	}
}

// handleDigit thanks the user for the quick poll reply and moves on to the
// event list.
func (b *Bot) handleDigit(ctx context.Context, c tele.Context, id domain.UserID) error {
	logger.Info(ctx, "quick poll answered", zap.String("digit", c.Callback().Data))

	if err := c.Respond(&tele.CallbackResponse{
		Text:      fmt.Sprintf("Thanks for sharing, %s!", c.Sender().FirstName),
		ShowAlert: true,
	}); err != nil {
		return err
	}
	_ = c.Delete()

	return b.offerActiveEvents(ctx, c)
}

func (b *Bot) offerActiveEvents(ctx context.Context, c tele.Context) error {
	events, err := b.org.ActiveEvents(ctx)
	if err != nil {
		return b.fail(c, err)
	}
	if len(events) == 0 {
		return c.Send("There are no active events right now.")
	}

	return c.Send("Events open for registration:", registerKeyboard(events))
}

// showEventCard renders the event description with the sign-up confirmation
// keyboard.
func (b *Bot) showEventCard(ctx context.Context, c tele.Context, arg string) error {
	eventID, err := parseEventID(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
	}

	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	_ = c.Respond()

	return c.Edit(eventCard(event), registrationConfirmKeyboard(event.ID))
}

// declineRegistration brings the event list back.
func (b *Bot) declineRegistration(ctx context.Context, c tele.Context) error {
	events, err := b.org.ActiveEvents(ctx)
	if err != nil {
		return b.fail(c, err)
	}
	if len(events) == 0 {
		_ = c.Respond(&tele.CallbackResponse{Text: "No active events."})

		return c.Edit("There are no active events right now.")
	}

	_ = c.Respond(&tele.CallbackResponse{Text: "Pick another event."})

	return c.Edit("Events open for registration:", registerKeyboard(events))
}

// confirmRegistration either registers the user right away or starts the
// questionnaire when the event has questions.
func (b *Bot) confirmRegistration(ctx context.Context, c tele.Context, sess *session, id domain.UserID, arg string) error {
	eventID, err := parseEventID(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
	}

	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	registered, err := b.org.IsRegistered(ctx, id, eventID)
	if err != nil {
		return b.fail(c, err)
	}
	if registered {
		_ = c.Respond()

		return c.Edit(alreadyRegisteredText(event))
	}

	questions, err := b.org.Questions(ctx, eventID)
	if err != nil {
		return b.fail(c, err)
	}

	if len(questions) == 0 {
		if err := b.org.Register(ctx, id, eventID, nil); err != nil {
			if errors.Is(err, serrors.ErrConflict) {
				_ = c.Respond()

				return c.Edit(alreadyRegisteredText(event))
			}

			return b.fail(c, err)
		}

		_ = c.Respond(&tele.CallbackResponse{Text: "You are signed up!"})

		return c.Edit(fmt.Sprintf(
			"✅ You are signed up for:\n\n«%s»\n\n📅 Date: %s",
			event.Name, event.Date.Format(organizer.DateLayout+" at "+organizer.TimeLayout),
		))
	}

	sess.step = stepAnswerQuestion
	sess.eventID = eventID
	sess.questions = questions
	sess.answers = nil
	sess.next = 0

	_ = c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf("The questionnaire has %d questions", len(questions)),
	})
	if err := c.Edit("Please answer a few questions:"); err != nil {
		return err
	}

	return c.Send(questions[0].Text)
}

func alreadyRegisteredText(event *domain.Event) string {
	return fmt.Sprintf(
		"✅ You are already signed up for:\n\n«%s»\n\n📅 Date: %s",
		event.Name, event.Date.Format(organizer.DateLayout+" at "+organizer.TimeLayout),
	)
}

// recordAnswer stores the reply to the current questionnaire question and
// either asks the next one or finalizes the registration.
func (b *Bot) recordAnswer(ctx context.Context, c tele.Context, sess *session, id domain.UserID, text string) error {
	sess.answers = append(sess.answers, text)
	sess.next++

	if sess.next < len(sess.questions) {
		return c.Send(sess.questions[sess.next].Text)
	}

	answers := make([]domain.Answer, 0, len(sess.answers))
	for i, answer := range sess.answers {
		answers = append(answers, domain.Answer{
			QuestionID: sess.questions[i].ID,
			Text:       answer,
		})
	}

	eventID := sess.eventID
	b.sessions.Reset(id)

	if err := b.org.Register(ctx, id, eventID, answers); err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return c.Send("✅ You are already signed up for this event.")
		}
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Send("❌ This event is no longer available.")
		}

		return b.fail(c, err)
	}

	event, err := b.org.EventByID(ctx, eventID)
	if err == nil && event.WelcomeVideoID != "" {
		if err := c.Send("Watch the intro video:"); err != nil {
			return err
		}
		if err := c.Send(&tele.Video{
			File:    tele.File{FileID: event.WelcomeVideoID},
			Caption: "Thanks for signing up!",
		}); err != nil {
			logger.Warn(ctx, "could not send welcome video", zap.Error(err))
		}
	} else {
		if err := c.Send("Thanks for signing up!"); err != nil {
			return err
		}
	}

	return c.Send("📌 Registration complete!")
}

func parseEventID(arg string) (domain.EventID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse event id: %w", err)
	}

	return domain.EventID(id), nil
}

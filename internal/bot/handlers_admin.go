package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"
	"eventbot/pkg/serrors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// adminCommands are the commands behind the password gate, in the order the
// commands keyboard shows them.
var adminCommands = []string{
	"broadcast",
	"add_event",
	"cancel_event",
	"edit_questions",
	"set_welcome_video",
	"export_answers",
	"view_registrations",
	"add_admin",
	"change_password",
	"edit_settings",
}

func isAdminCommand(cmd string) bool {
	for _, known := range adminCommands {
		if cmd == known {
			return true
		}
	}

	return false
}

// gateAdminCommand wraps an admin command typed as /command. The command is
// stashed in the session and runs once the admin re-enters their password.
func (b *Bot) gateAdminCommand(cmd string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx, sess, id := b.handlerCtx(c)

		isAdmin, err := b.org.IsAdmin(ctx, id)
		if err != nil {
			return b.fail(c, err)
		}
		if !isAdmin {
			return c.Send("🚫 You do not have admin rights.")
		}

		sess.step = stepAdminPassword
		sess.pendingCommand = cmd

		return c.Send("🔑 Enter the admin password:")
	}
}

// gateAdminCallback is the command_* twin of gateAdminCommand for presses on
// the commands keyboard.
func (b *Bot) gateAdminCallback(ctx context.Context, c tele.Context, sess *session, id domain.UserID, cmd string) error {
	if !isAdminCommand(cmd) {
		return c.Respond(&tele.CallbackResponse{Text: "🚫 Unknown command."})
	}

	isAdmin, err := b.org.IsAdmin(ctx, id)
	if err != nil {
		return b.fail(c, err)
	}
	if !isAdmin {
		return c.Respond(&tele.CallbackResponse{Text: "🚫 Access denied.", ShowAlert: true})
	}

	sess.step = stepAdminPassword
	sess.pendingCommand = cmd

	if err := c.Respond(&tele.CallbackResponse{Text: "🔑 Admin password required.", ShowAlert: true}); err != nil {
		return err
	}

	return c.Send("🔑 Enter the admin password:")
}

// checkAdminPassword verifies the password typed behind the gate and starts
// the stashed command.
func (b *Bot) checkAdminPassword(ctx context.Context, c tele.Context, sess *session, id domain.UserID, password string) error {
	if err := b.org.AuthenticateAdmin(ctx, id, password); err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			return c.Send("❌ Wrong password! Try again:")
		}

		return b.fail(c, err)
	}

	// Do not leave the password on screen.
	_ = c.Delete()

	cmd := sess.pendingCommand
	b.sessions.Reset(id)

	return b.startAdminCommand(ctx, c, b.sessions.Get(id), cmd)
}

// startAdminCommand begins the conversation flow of an authenticated admin
// command.
func (b *Bot) startAdminCommand(ctx context.Context, c tele.Context, sess *session, cmd string) error {
	switch cmd {
	case "broadcast":
		sess.step = stepBroadcastMessage

		return c.Send("Send the broadcast content:\n - text,\n - a photo,\n - a voice message,\n - a video note\nor a video to deliver to every user.")
	case "add_event":
		sess.step = stepEventName
		sess.draft = organizer.EventDraft{}

		return c.Send("Enter the event name:")
	case "cancel_event":
		return b.offerEventPick(ctx, c, sess, pickCancelEvent, "Pick an event to cancel:")
	case "edit_questions":
		return b.offerEventPick(ctx, c, sess, pickEditQuestions, "Pick an event:")
	case "set_welcome_video":
		return b.offerEventPick(ctx, c, sess, pickWelcomeVideo, "Pick an event:")
	case "view_registrations":
		return b.offerEventPick(ctx, c, sess, pickViewRegistrations, "Pick an event:")
	case "export_answers":
		events, err := b.org.EventsWithAnswers(ctx)
		if err != nil {
			return b.fail(c, err)
		}
		if len(events) == 0 {
			return c.Send("There are no events with questionnaire answers yet.")
		}
		sess.pick = pickExportAnswers

		return c.Send("Pick an event:", eventsKeyboard(events))
	case "add_admin":
		sess.step = stepAddAdminID

		return c.Send("Enter the user ID to promote to admin:")
	case "change_password":
		sess.step = stepOldPassword

		return c.Send("Enter the current password:")
	case "edit_settings":
		return c.Send("Pick a setting to edit:", settingsKeyboard())
	default:
		return c.Send("🚫 Unknown command.")
	}
}

func (b *Bot) offerEventPick(ctx context.Context, c tele.Context, sess *session, purpose pickPurpose, prompt string) error {
	events, err := b.org.ActiveEvents(ctx)
	if err != nil {
		return b.fail(c, err)
	}
	if len(events) == 0 {
		return c.Send("No active events.")
	}

	sess.pick = purpose

	return c.Send(prompt, eventsKeyboard(events))
}

// pickEvent continues whichever admin flow offered the event list.
func (b *Bot) pickEvent(ctx context.Context, c tele.Context, sess *session, id domain.UserID, arg string) error {
	eventID, err := parseEventID(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
	}

	purpose := sess.pick
	sess.pick = pickNone

	switch purpose {
	case pickCancelEvent:
		return b.askCancelConfirmation(ctx, c, eventID)
	case pickViewRegistrations:
		return b.showRegistrations(ctx, c, id, eventID)
	case pickExportAnswers:
		return b.exportAnswers(ctx, c, eventID)
	case pickWelcomeVideo:
		return b.askWelcomeVideo(ctx, c, sess, eventID)
	case pickEditQuestions:
		return b.offerQuestionPick(ctx, c, sess, eventID)
	default:
		return c.Respond(&tele.CallbackResponse{Text: "Unknown action."})
	}
}

// ---- event composition ----

func (b *Bot) continueEventDraft(ctx context.Context, c tele.Context, sess *session, text string) error {
	switch sess.step {
	case stepEventName:
		sess.draft.Name = text
		sess.step = stepEventDescription

		return c.Send("Enter the event description:")
	case stepEventDescription:
		sess.draft.Description = text
		sess.step = stepEventDate

		return c.Send("Enter the date (DD.MM.YYYY):")
	case stepEventDate:
		if _, err := time.Parse(organizer.DateLayout, text); err != nil {
			return c.Send("Please enter the date as DD.MM.YYYY.")
		}
		sess.draft.Date = text
		sess.step = stepEventTime

		return c.Send("Pick a start time:", timeKeyboard())
	case stepEventTime:
		// Manual entry as an alternative to the time keyboard.
		if _, err := time.Parse(organizer.TimeLayout, text); err != nil {
			return c.Send("Please enter the time as HH:MM.")
		}

		return b.setEventTime(ctx, c, sess, text)
	case stepEventQuestion:
		return b.collectQuestion(c, sess, text)
	default:
		return nil
	}
}

// pickEventTime handles a press on the time keyboard.
func (b *Bot) pickEventTime(ctx context.Context, c tele.Context, sess *session, slot string) error {
	if sess.step != stepEventTime {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown action."})
	}
	if _, err := time.Parse(organizer.TimeLayout, slot); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid time. Type it as HH:MM."})
	}

	_ = c.Respond()
	_ = c.Delete()

	return b.setEventTime(ctx, c, sess, slot)
}

func (b *Bot) setEventTime(ctx context.Context, c tele.Context, sess *session, slot string) error {
	sess.draft.Time = slot
	sess.step = stepEventQuestion

	logger.Info(ctx, "event schedule chosen",
		zap.String("date", sess.draft.Date), zap.String("time", slot))

	return c.Send(fmt.Sprintf(
		"Scheduled for %s %s.\nNow send the first questionnaire question (or /done to finish):",
		sess.draft.Date, slot,
	))
}

// collectQuestion appends one questionnaire question during event composition
// or while adding questions to an existing event.
func (b *Bot) collectQuestion(c tele.Context, sess *session, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.Send("❗️ A question cannot be empty. Try again.")
	}
	if len(sess.draft.Questions) >= b.maxQuestions {
		return c.Send(fmt.Sprintf(
			"🔴 The questionnaire is limited to %d questions. Send /done to finish.",
			b.maxQuestions,
		))
	}

	sess.draft.Questions = append(sess.draft.Questions, text)

	return c.Send(fmt.Sprintf(
		"✅ Question added (%d/%d). Send the next one or /done.",
		len(sess.draft.Questions), b.maxQuestions,
	))
}

// handleDone finishes the flows that collect questions one message at a time.
func (b *Bot) handleDone(c tele.Context) error {
	ctx, sess, id := b.handlerCtx(c)

	switch sess.step {
	case stepEventQuestion:
		return b.finishEventCreation(ctx, c, sess, id)
	case stepAppendQuestion:
		return b.finishAddingQuestions(ctx, c, sess, id)
	default:
		return nil
	}
}

func (b *Bot) finishEventCreation(ctx context.Context, c tele.Context, sess *session, id domain.UserID) error {
	draft := sess.draft
	b.sessions.Reset(id)

	event, err := b.org.CreateEvent(ctx, draft)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return c.Send("❌ " + userMessage(err, "The event could not be saved."))
		}

		return b.fail(c, err)
	}

	if err := c.Send("The event and its questionnaire were saved! ✅"); err != nil {
		return err
	}

	b.announceEvent(ctx, event)

	return nil
}

// announceEvent tells every known user about a freshly created event.
// Individual delivery failures are logged and skipped.
func (b *Bot) announceEvent(ctx context.Context, event *domain.Event) {
	users, err := b.org.AllUserIDs(ctx)
	if err != nil {
		logger.Error(ctx, "could not list users for event announcement", zap.Error(err))

		return
	}

	events, err := b.org.ActiveEvents(ctx)
	if err != nil {
		logger.Error(ctx, "could not list events for event announcement", zap.Error(err))

		return
	}

	text := fmt.Sprintf(
		"⚠️ <b>New event:</b> %s\n\n<i>%s</i>\n\n📅 <b>Date:</b> %s\n\n👇🏼 Sign up to take part! 👇🏼",
		event.Name,
		event.Description,
		event.Date.Format(organizer.DateLayout+" "+organizer.TimeLayout),
	)

	for _, userID := range users {
		if _, err := b.tb.Send(tele.ChatID(userID), text, registerKeyboard(events)); err != nil {
			logger.Error(ctx, "could not announce event",
				zap.Int64("recipientID", int64(userID)), zap.Error(err))
		}
	}
}

// ---- event cancellation ----

func (b *Bot) askCancelConfirmation(ctx context.Context, c tele.Context, eventID domain.EventID) error {
	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	_ = c.Respond()

	return c.Edit(
		fmt.Sprintf("Are you sure you want to cancel <b>%s</b>?", event.Name),
		cancelConfirmKeyboard(event.ID),
	)
}

func (b *Bot) confirmEventCancel(ctx context.Context, c tele.Context, id domain.UserID, arg string) error {
	eventID, err := parseEventID(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
	}

	b.sessions.Reset(id)

	cancelled, err := b.org.CancelEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	_ = c.Respond()
	if err := c.Edit("The event was cancelled!"); err != nil {
		return err
	}

	date := cancelled.Event.Date.Format(organizer.DateLayout)
	registrantText := fmt.Sprintf(
		"<b>Event:</b> %s\n\n<b>Date:</b> %s\n\n⚠️ <b>Cancelled by the administrator!</b>",
		cancelled.Event.Name, date,
	)
	for _, userID := range cancelled.Registrants {
		if err := b.SendText(ctx, userID, registrantText); err != nil {
			logger.Error(ctx, "could not notify registrant about cancellation",
				zap.Int64("recipientID", int64(userID)), zap.Error(err))
		}
	}

	adminText := fmt.Sprintf("Event «%s» on %s was cancelled.", cancelled.Event.Name, date)
	for _, adminID := range cancelled.Admins {
		if adminID == id {
			continue
		}
		if err := b.SendText(ctx, adminID, adminText); err != nil {
			logger.Error(ctx, "could not notify admin about cancellation",
				zap.Int64("recipientID", int64(adminID)), zap.Error(err))
		}
	}

	return nil
}

// ---- registrations and export ----

func (b *Bot) showRegistrations(ctx context.Context, c tele.Context, id domain.UserID, eventID domain.EventID) error {
	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	attendees, err := b.org.Attendees(ctx, eventID)
	if err != nil {
		return b.fail(c, err)
	}

	b.sessions.Reset(id)
	_ = c.Respond()

	header := fmt.Sprintf(
		"📅 <b>Event:</b> %s\n\n🗓 <b>Date:</b> %s\n\n",
		event.Name, event.Date.Format(organizer.DateLayout+" "+organizer.TimeLayout),
	)

	if len(attendees) == 0 {
		return c.Edit(header + "No one has signed up for this event yet.")
	}

	lines := make([]string, 0, len(attendees))
	for _, a := range attendees {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("👤 %s %s", a.FirstName, a.LastName)))
	}

	return c.Edit(header + "<b>Registered users:</b>\n" + strings.Join(lines, "\n"))
}

// ---- questionnaire editing ----

func (b *Bot) offerQuestionPick(ctx context.Context, c tele.Context, sess *session, eventID domain.EventID) error {
	questions, err := b.org.Questions(ctx, eventID)
	if err != nil {
		return b.fail(c, err)
	}

	sess.eventID = eventID

	if len(questions) == 0 {
		_ = c.Respond()
		if err := c.Edit("❗ This event has no questions yet. Let's add some!"); err != nil {
			return err
		}

		sess.step = stepAppendQuestion
		sess.draft.Questions = nil

		return c.Send(fmt.Sprintf(
			"📝 Send the questions one message each.\nThe questionnaire is limited to %d questions.\nSend /done when you are finished.",
			b.maxQuestions,
		))
	}

	_ = c.Respond()

	return c.Edit("Pick a question to edit:", questionsKeyboard(questions))
}

func (b *Bot) finishAddingQuestions(ctx context.Context, c tele.Context, sess *session, id domain.UserID) error {
	eventID := sess.eventID
	questions := sess.draft.Questions
	b.sessions.Reset(id)

	if len(questions) == 0 {
		return c.Send("❌ You did not add any questions.")
	}

	if err := b.org.AddQuestions(ctx, eventID, questions); err != nil {
		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			return c.Send("❌ " + userMessage(err, "The questions could not be saved."))
		}

		return b.fail(c, err)
	}

	return c.Send(fmt.Sprintf("✅ Added %d questions.", len(questions)))
}

func (b *Bot) pickQuestion(ctx context.Context, c tele.Context, sess *session, arg string) error {
	rawID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Question not found.", ShowAlert: true})
	}
	questionID := domain.QuestionID(rawID)

	question, err := b.org.Question(ctx, questionID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Question not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	sess.questionID = questionID
	sess.step = stepQuestionText

	_ = c.Respond()

	return c.Edit(fmt.Sprintf(
		"❔ Current question text:\n\n<i>%s</i>\n\n📝 Send the new text:", question.Text,
	))
}

func (b *Bot) saveQuestionText(ctx context.Context, c tele.Context, sess *session, id domain.UserID, text string) error {
	questionID := sess.questionID
	b.sessions.Reset(id)

	if err := b.org.ReplaceQuestion(ctx, questionID, text); err != nil {
		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			return c.Send("❌ " + userMessage(err, "The question could not be updated."))
		}

		return b.fail(c, err)
	}

	return c.Send("✅ Question updated!")
}

// ---- broadcasts ----

// captureBroadcast turns the admin's message into a broadcast draft and asks
// for confirmation. Sending another message replaces the draft.
func (b *Bot) captureBroadcast(c tele.Context, sess *session) error {
	m := c.Message()

	var draft domain.Broadcast
	switch {
	case m.Photo != nil:
		draft = domain.Broadcast{Kind: domain.MediaKindPhoto, MediaID: m.Photo.FileID, Text: m.Caption}
	case m.Voice != nil:
		draft = domain.Broadcast{Kind: domain.MediaKindVoice, MediaID: m.Voice.FileID, Text: m.Caption}
	case m.VideoNote != nil:
		// Video notes cannot carry captions.
		draft = domain.Broadcast{Kind: domain.MediaKindVideoNote, MediaID: m.VideoNote.FileID}
	case m.Video != nil:
		draft = domain.Broadcast{Kind: domain.MediaKindVideo, MediaID: m.Video.FileID, Text: m.Caption}
	case m.Text != "":
		draft = domain.Broadcast{Kind: domain.MediaKindText, Text: m.Text}
	default:
		return c.Send("❌ This message type is not supported.\nSend text, a photo, a voice message, a video note or a video.")
	}

	sess.broadcast = draft

	return c.Send("Confirm the broadcast:", broadcastConfirmKeyboard())
}

func (b *Bot) confirmBroadcast(ctx context.Context, c tele.Context, sess *session, id domain.UserID) error {
	if sess.step != stepBroadcastMessage || sess.broadcast.Kind == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Nothing to send."})
	}

	draft := sess.broadcast
	b.sessions.Reset(id)

	broadcast, err := b.org.EnqueueBroadcast(ctx, draft)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return c.Send("❌ " + userMessage(err, "The broadcast could not be queued."))
		}

		return b.fail(c, err)
	}

	logger.Info(ctx, "broadcast queued",
		zap.String("broadcastID", broadcast.ID.String()),
		zap.String("kind", string(broadcast.Kind)))

	_ = c.Respond(&tele.CallbackResponse{Text: "✅ Confirmed, the broadcast was queued..."})

	return c.Send("The broadcast was queued and will be delivered to all users shortly.")
}

// ---- admin management ----

func (b *Bot) continueAddAdmin(ctx context.Context, c tele.Context, sess *session, text string) error {
	switch sess.step {
	case stepAddAdminID:
		rawID, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return c.Send("Invalid ID format.")
		}

		sess.adminID = domain.UserID(rawID)
		sess.step = stepAddAdminPassword

		return c.Send("Enter the password for the new admin:")
	case stepAddAdminPassword:
		adminID := sess.adminID
		b.sessions.Reset(domain.UserID(c.Sender().ID))

		if err := b.org.AddAdmin(ctx, adminID, text); err != nil {
			if errors.Is(err, serrors.ErrBadRequest) {
				return c.Send("❌ " + userMessage(err, "The admin could not be added."))
			}

			return b.fail(c, err)
		}

		return c.Send("Admin added! ✅")
	default:
		return nil
	}
}

func (b *Bot) continueChangePassword(ctx context.Context, c tele.Context, sess *session, id domain.UserID, text string) error {
	switch sess.step {
	case stepOldPassword:
		if err := b.org.AuthenticateAdmin(ctx, id, text); err != nil {
			b.sessions.Reset(id)
			if errors.Is(err, serrors.ErrUnauthorized) {
				return c.Send("Wrong password!")
			}

			return b.fail(c, err)
		}

		sess.step = stepNewPassword

		return c.Send("Enter the new password:")
	case stepNewPassword:
		b.sessions.Reset(id)

		if err := b.org.ChangePassword(ctx, id, text); err != nil {
			if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrUnauthorized) {
				return c.Send("❌ " + userMessage(err, "The password could not be changed."))
			}

			return b.fail(c, err)
		}

		return c.Send("Password changed! ✅")
	default:
		return nil
	}
}

// ---- settings and welcome video ----

var editableSettings = map[string]bool{
	domain.SettingWelcomeVideoID:   true,
	domain.SettingStartMessage:     true,
	domain.SettingWelcomeMessage:   true,
	domain.SettingAdminCommandsTxt: true,
}

func (b *Bot) beginEditSetting(ctx context.Context, c tele.Context, sess *session, id domain.UserID, key string) error {
	if !editableSettings[key] {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown setting.", ShowAlert: true})
	}

	isAdmin, err := b.org.IsAdmin(ctx, id)
	if err != nil {
		return b.fail(c, err)
	}
	if !isAdmin {
		_ = c.Delete()

		return c.Respond(&tele.CallbackResponse{Text: "🚫 Access denied.", ShowAlert: true})
	}

	value, err := b.org.Setting(ctx, key)
	if err != nil && !errors.Is(err, serrors.ErrNotFound) {
		return b.fail(c, err)
	}

	sess.settingKey = key

	if key == domain.SettingWelcomeVideoID {
		sess.step = stepSettingVideo
		_ = c.Respond()
		_ = c.Delete()

		if value != "" {
			return c.Send(&tele.Video{
				File:    tele.File{FileID: value},
				Caption: "⚙️ Current greeting video\n\n🖊 Upload a new video or send /cancel:",
			})
		}

		return c.Send("ℹ️ There is no greeting video yet.\n\n🖊 Upload one or send /cancel:")
	}

	sess.step = stepSettingValue
	_ = c.Respond()

	return c.Edit(fmt.Sprintf(
		"⚙️ Current value of '%s':\n\n%s\n\n🖊 Send the new value or /cancel:",
		key, value,
	))
}

func (b *Bot) saveSettingValue(ctx context.Context, c tele.Context, sess *session, id domain.UserID, text string) error {
	key := sess.settingKey
	b.sessions.Reset(id)

	if err := b.org.UpdateSetting(ctx, key, text); err != nil {
		return b.fail(c, err)
	}

	return c.Send(fmt.Sprintf("✅ Setting '%s' updated!", key))
}

func (b *Bot) askWelcomeVideo(ctx context.Context, c tele.Context, sess *session, eventID domain.EventID) error {
	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	sess.eventID = eventID
	sess.step = stepWelcomeVideo

	_ = c.Respond()
	_ = c.Delete()

	if event.WelcomeVideoID != "" {
		return c.Send(&tele.Video{
			File: tele.File{FileID: event.WelcomeVideoID},
			Caption: fmt.Sprintf(
				"📹 Current intro video for <b>«%s»</b>\n\n⬇️ Send a new video to replace it or /cancel. ⬇️",
				event.Name,
			),
		})
	}

	return c.Send("ℹ️ This event has no intro video yet.\n\n⬇️ Send a new welcome video or /cancel. ⬇️")
}

// handleMedia routes uploaded media into the flow that is waiting for it.
func (b *Bot) handleMedia(c tele.Context) error {
	ctx, sess, id := b.handlerCtx(c)

	switch sess.step {
	case stepBroadcastMessage:
		return b.captureBroadcast(c, sess)
	case stepWelcomeVideo:
		return b.saveWelcomeVideo(ctx, c, sess, id)
	case stepSettingVideo:
		return b.saveSettingVideo(ctx, c, sess, id)
	default:
		return nil
	}
}

// saveWelcomeVideo accepts a video, GIF or video note for an event.
func (b *Bot) saveWelcomeVideo(ctx context.Context, c tele.Context, sess *session, id domain.UserID) error {
	m := c.Message()

	var fileID string
	switch {
	case m.Video != nil:
		fileID = m.Video.FileID
	case m.Animation != nil:
		fileID = m.Animation.FileID
	case m.VideoNote != nil:
		fileID = m.VideoNote.FileID
	default:
		return c.Send("Send a video, a GIF or a video note.")
	}

	eventID := sess.eventID
	b.sessions.Reset(id)

	if err := b.org.SetWelcomeVideo(ctx, eventID, fileID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Send("⚠️ The event no longer exists.")
		}

		return b.fail(c, err)
	}

	return c.Send("✅ Media updated!")
}

// saveSettingVideo accepts the greeting video shown on /start.
func (b *Bot) saveSettingVideo(ctx context.Context, c tele.Context, sess *session, id domain.UserID) error {
	m := c.Message()
	if m.Video == nil {
		return c.Send("Please upload a video file or send /cancel.")
	}

	key := sess.settingKey
	b.sessions.Reset(id)

	if err := b.org.UpdateSetting(ctx, key, m.Video.FileID); err != nil {
		return b.fail(c, err)
	}

	return c.Send("✅ Greeting video updated!")
}

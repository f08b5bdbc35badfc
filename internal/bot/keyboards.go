package bot

import (
	"fmt"
	"strings"

	"eventbot/internal/organizer"
	"eventbot/pkg/domain"

	tele "gopkg.in/telebot.v3"
)

// Callback data is a short action name optionally followed by an underscore
// separated argument, e.g. "register_12" or "time_18:30". The schemes below
// are matched longest-prefix first so "confirm_yes" wins over a hypothetical
// "confirm" action.
const (
	cbRegister         = "register"
	cbEvent            = "event"
	cbQuestion         = "question"
	cbDigit            = "digit"
	cbTime             = "time"
	cbCommand          = "command"
	cbEditSetting      = "edit_setting"
	cbConfirmYes       = "confirm_yes"
	cbConfirmNo        = "confirm_no"
	cbCancelConfirm    = "cancel_confirm"
	cbCancelReject     = "cancel_reject"
	cbBroadcastConfirm = "broadcast_confirm"
	cbBroadcastCancel  = "broadcast_cancel"
)

// callbackActions lists every known action, longest first.
var callbackActions = []string{
	cbBroadcastConfirm,
	cbBroadcastCancel,
	cbCancelConfirm,
	cbCancelReject,
	cbConfirmYes,
	cbConfirmNo,
	cbEditSetting,
	cbRegister,
	cbQuestion,
	cbCommand,
	cbEvent,
	cbDigit,
	cbTime,
}

// splitCallback breaks callback data into its action and argument. Unknown
// data yields an empty action.
func splitCallback(data string) (action, arg string) {
	data = strings.TrimSpace(data)
	for _, a := range callbackActions {
		if data == a {
			return a, ""
		}

		if strings.HasPrefix(data, a+"_") {
			return a, data[len(a)+1:]
		}
	}

	return "", ""
}

type inlineButton struct {
	Text string
	Data string
}

// inlineKeyboard lays the buttons out perRow per row.
func inlineKeyboard(buttons []inlineButton, perRow int) *tele.ReplyMarkup {
	rows := make([][]tele.InlineButton, 0, (len(buttons)+perRow-1)/perRow)
	var row []tele.InlineButton
	for _, b := range buttons {
		row = append(row, tele.InlineButton{Text: b.Text, Data: b.Data})
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// adminReplyKeyboard is the persistent keyboard shown to admins.
func adminReplyKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		ResizeKeyboard: true,
		ReplyKeyboard:  [][]tele.ReplyButton{{{Text: buttonCommands}}},
	}
}

// eventsReplyKeyboard is the one-shot keyboard offering the event list to
// regular users.
func eventsReplyKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
		ReplyKeyboard:   [][]tele.ReplyButton{{{Text: buttonEvents}}},
	}
}

// digitsKeyboard offers the 1..3 quick-poll buttons shown after the greeting.
func digitsKeyboard() *tele.ReplyMarkup {
	buttons := make([]inlineButton, 0, 3)
	for i := 1; i <= 3; i++ {
		buttons = append(buttons, inlineButton{
			Text: fmt.Sprintf("%d", i),
			Data: fmt.Sprintf("%s_%d", cbDigit, i),
		})
	}

	return inlineKeyboard(buttons, 3)
}

// registerKeyboard lists events for users to sign up for.
func registerKeyboard(events []domain.Event) *tele.ReplyMarkup {
	buttons := make([]inlineButton, 0, len(events))
	for _, e := range events {
		buttons = append(buttons, inlineButton{
			Text: e.Name,
			Data: fmt.Sprintf("%s_%d", cbRegister, e.ID),
		})
	}

	return inlineKeyboard(buttons, 1)
}

// signupKeyboard carries the single sign-up button attached to reminders sent
// to users who have not registered yet.
func signupKeyboard(eventID domain.EventID) *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{{
		Text: "Register",
		Data: fmt.Sprintf("%s_%d", cbRegister, eventID),
	}}, 1)
}

// eventsKeyboard lists events for admin flows to pick from.
func eventsKeyboard(events []domain.Event) *tele.ReplyMarkup {
	buttons := make([]inlineButton, 0, len(events))
	for _, e := range events {
		buttons = append(buttons, inlineButton{
			Text: e.Name,
			Data: fmt.Sprintf("%s_%d", cbEvent, e.ID),
		})
	}

	return inlineKeyboard(buttons, 1)
}

// questionsKeyboard lists an event's questionnaire for editing.
func questionsKeyboard(questions []domain.Question) *tele.ReplyMarkup {
	buttons := make([]inlineButton, 0, len(questions))
	for _, q := range questions {
		buttons = append(buttons, inlineButton{
			Text: q.Text,
			Data: fmt.Sprintf("%s_%d", cbQuestion, q.ID),
		})
	}

	return inlineKeyboard(buttons, 1)
}

// registrationConfirmKeyboard asks the user to confirm signing up.
func registrationConfirmKeyboard(id domain.EventID) *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{
		{Text: "✅ Yes", Data: fmt.Sprintf("%s_%d", cbConfirmYes, id)},
		{Text: "❌ No", Data: cbConfirmNo},
	}, 2)
}

// cancelConfirmKeyboard asks the admin to confirm cancelling an event.
func cancelConfirmKeyboard(id domain.EventID) *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{
		{Text: "✅ Confirm", Data: fmt.Sprintf("%s_%d", cbCancelConfirm, id)},
		{Text: "❌ Keep it", Data: cbCancelReject},
	}, 2)
}

// broadcastConfirmKeyboard asks the admin to confirm a broadcast.
func broadcastConfirmKeyboard() *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{
		{Text: "✅ Send to everyone", Data: cbBroadcastConfirm},
		{Text: "❌ Cancel", Data: cbBroadcastCancel},
	}, 2)
}

// timeKeyboard offers the half-hourly start time slots.
func timeKeyboard() *tele.ReplyMarkup {
	slots := organizer.StartTimeSlots()
	buttons := make([]inlineButton, 0, len(slots))
	for _, slot := range slots {
		buttons = append(buttons, inlineButton{
			Text: slot,
			Data: fmt.Sprintf("%s_%s", cbTime, slot),
		})
	}

	return inlineKeyboard(buttons, 4)
}

// commandsKeyboard lists the admin commands as buttons.
func commandsKeyboard() *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{
		{Text: "📢 Queue a broadcast", Data: cbCommand + "_broadcast"},
		{Text: "📅 Add an event", Data: cbCommand + "_add_event"},
		{Text: "🚫 Cancel an event", Data: cbCommand + "_cancel_event"},
		{Text: "✏️ Edit questions", Data: cbCommand + "_edit_questions"},
		{Text: "🎬 Set welcome video", Data: cbCommand + "_set_welcome_video"},
		{Text: "📤 Export answers", Data: cbCommand + "_export_answers"},
		{Text: "📜 View registrations", Data: cbCommand + "_view_registrations"},
		{Text: "🥋 Add an admin", Data: cbCommand + "_add_admin"},
		{Text: "🔐 Change password", Data: cbCommand + "_change_password"},
		{Text: "⚙️ Edit settings", Data: cbCommand + "_edit_settings"},
	}, 1)
}

// settingsKeyboard lists the editable system settings.
func settingsKeyboard() *tele.ReplyMarkup {
	return inlineKeyboard([]inlineButton{
		{Text: "📽 Greeting video", Data: cbEditSetting + "_" + domain.SettingWelcomeVideoID},
		{Text: "📃 Start message", Data: cbEditSetting + "_" + domain.SettingStartMessage},
		{Text: "💬 Welcome message", Data: cbEditSetting + "_" + domain.SettingWelcomeMessage},
		{Text: "🛠 Admin commands text", Data: cbEditSetting + "_" + domain.SettingAdminCommandsTxt},
	}, 1)
}

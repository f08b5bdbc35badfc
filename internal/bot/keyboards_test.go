package bot

import (
	"testing"

	"eventbot/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestSplitCallback(t *testing.T) {
	testCases := []struct {
		data   string
		action string
		arg    string
	}{
		{data: "register_12", action: cbRegister, arg: "12"},
		{data: "event_3", action: cbEvent, arg: "3"},
		{data: "question_44", action: cbQuestion, arg: "44"},
		{data: "digit_2", action: cbDigit, arg: "2"},
		{data: "time_18:30", action: cbTime, arg: "18:30"},
		{data: "command_add_event", action: cbCommand, arg: "add_event"},
		{data: "edit_setting_START_MESSAGE", action: cbEditSetting, arg: "START_MESSAGE"},
		{data: "confirm_yes_7", action: cbConfirmYes, arg: "7"},
		{data: "confirm_no", action: cbConfirmNo, arg: ""},
		{data: "cancel_confirm_9", action: cbCancelConfirm, arg: "9"},
		{data: "cancel_reject", action: cbCancelReject, arg: ""},
		{data: "broadcast_confirm", action: cbBroadcastConfirm, arg: ""},
		{data: "broadcast_cancel", action: cbBroadcastCancel, arg: ""},
		{data: "  register_5 ", action: cbRegister, arg: "5"},
		{data: "bogus", action: "", arg: ""},
		{data: "", action: "", arg: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.data, func(t *testing.T) {
			action, arg := splitCallback(tc.data)
			require.Equal(t, tc.action, action)
			require.Equal(t, tc.arg, arg)
		})
	}
}

func TestRegisterKeyboard(t *testing.T) {
	events := []domain.Event{
		{ID: 1, Name: "Team breakfast"},
		{ID: 2, Name: "Go meetup"},
	}

	kb := registerKeyboard(events)
	require.Len(t, kb.InlineKeyboard, 2)
	require.Equal(t, "Team breakfast", kb.InlineKeyboard[0][0].Text)
	require.Equal(t, "register_1", kb.InlineKeyboard[0][0].Data)
	require.Equal(t, "register_2", kb.InlineKeyboard[1][0].Data)
}

func TestTimeKeyboardLayout(t *testing.T) {
	kb := timeKeyboard()

	// 29 slots laid out 4 per row.
	require.Len(t, kb.InlineKeyboard, 8)
	for _, row := range kb.InlineKeyboard[:7] {
		require.Len(t, row, 4)
	}
	require.Len(t, kb.InlineKeyboard[7], 1)

	require.Equal(t, "time_08:00", kb.InlineKeyboard[0][0].Data)
	require.Equal(t, "time_22:00", kb.InlineKeyboard[7][0].Data)
}

func TestCommandsKeyboardCoversAdminCommands(t *testing.T) {
	kb := commandsKeyboard()
	require.Len(t, kb.InlineKeyboard, len(adminCommands))

	seen := make(map[string]bool)
	for _, row := range kb.InlineKeyboard {
		require.Len(t, row, 1)
		action, arg := splitCallback(row[0].Data)
		require.Equal(t, cbCommand, action)
		require.True(t, isAdminCommand(arg), "unknown command %q", arg)
		seen[arg] = true
	}
	require.Len(t, seen, len(adminCommands))
}

func TestSettingsKeyboard(t *testing.T) {
	kb := settingsKeyboard()
	require.Len(t, kb.InlineKeyboard, len(editableSettings))

	for _, row := range kb.InlineKeyboard {
		action, arg := splitCallback(row[0].Data)
		require.Equal(t, cbEditSetting, action)
		require.True(t, editableSettings[arg], "unknown setting %q", arg)
	}
}

func TestConfirmationKeyboards(t *testing.T) {
	reg := registrationConfirmKeyboard(5)
	require.Equal(t, "confirm_yes_5", reg.InlineKeyboard[0][0].Data)
	require.Equal(t, "confirm_no", reg.InlineKeyboard[0][1].Data)

	cancel := cancelConfirmKeyboard(9)
	require.Equal(t, "cancel_confirm_9", cancel.InlineKeyboard[0][0].Data)
	require.Equal(t, "cancel_reject", cancel.InlineKeyboard[0][1].Data)

	broadcast := broadcastConfirmKeyboard()
	require.Equal(t, "broadcast_confirm", broadcast.InlineKeyboard[0][0].Data)
	require.Equal(t, "broadcast_cancel", broadcast.InlineKeyboard[0][1].Data)
}

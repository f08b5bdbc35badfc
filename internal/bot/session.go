package bot

import (
	"sync"

	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
)

// step identifies what the bot expects from the chat next. It drives the
// per-chat conversation state machine: free-form text and media messages are
// interpreted according to the current step.
type step int

const (
	stepNone step = iota

	// Registration questionnaire.
	stepAnswerQuestion

	// Password gate in front of admin commands.
	stepAdminPassword

	// Event composition.
	stepEventName
	stepEventDescription
	stepEventDate
	stepEventTime
	stepEventQuestion

	// Questionnaire editing.
	stepAppendQuestion
	stepQuestionText

	// Broadcast composition.
	stepBroadcastMessage

	// Admin management.
	stepAddAdminID
	stepAddAdminPassword
	stepOldPassword
	stepNewPassword

	// Settings and welcome video uploads.
	stepSettingValue
	stepSettingVideo
	stepWelcomeVideo
)

// pickPurpose records why the bot offered the event list, so the shared
// event selection callback knows which admin flow to continue.
type pickPurpose int

const (
	pickNone pickPurpose = iota
	pickCancelEvent
	pickViewRegistrations
	pickExportAnswers
	pickWelcomeVideo
	pickEditQuestions
)

// session is the conversation state of a single chat. A fresh session starts
// at stepNone; flows fill in the fields they need and reset the session when
// they finish or get cancelled.
type session struct {
	step step
	pick pickPurpose

	// pendingCommand is the admin command waiting behind the password gate.
	pendingCommand string

	// draft accumulates the event being composed, including its questionnaire.
	draft organizer.EventDraft

	// eventID and questionID are the selections of the current admin flow.
	eventID    domain.EventID
	questionID domain.QuestionID

	// questions and answers carry the registration questionnaire progress.
	// answers[i] replies to questions[i]; next indexes the question to ask.
	questions []domain.Question
	answers   []string
	next      int

	// broadcast is the message composed for the broadcast flow.
	broadcast domain.Broadcast

	// settingKey is the system setting being edited.
	settingKey string

	// adminID is the user being promoted by the add-admin flow.
	adminID domain.UserID
}

// sessions keeps per-chat conversation state in memory. State is lost on
// restart, which matches how the conversational flows behave: an interrupted
// flow simply has to be started again.
type sessions struct {
	mu sync.Mutex
	m  map[domain.UserID]*session
}

func newSessions() *sessions {
	return &sessions{m: make(map[domain.UserID]*session)}
}

// Get returns the session of the given chat, creating an empty one on first
// use.
func (s *sessions) Get(id domain.UserID) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		sess = &session{}
		s.m[id] = sess
	}

	return sess
}

// Reset drops the session of the given chat, aborting whatever flow was in
// progress.
func (s *sessions) Reset(id domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, id)
}

// Active reports whether the chat is in the middle of a flow.
func (s *sessions) Active(id domain.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]

	return ok && (sess.step != stepNone || sess.pick != pickNone)
}

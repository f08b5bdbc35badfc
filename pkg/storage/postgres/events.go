package postgres

import (
	"context"
	"eventbot/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	eventsTable    = "events"
	questionsTable = "questions"
)

// StoreEvent inserts a new event and returns the stored row including
// generated fields.
func (p *PgSQL) StoreEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	var pgEvent PgEvent
	pgEvent.FromDomain(event)

	var row PgEvent
	if _, err := p.Builder.Insert(eventsTable).
		Rows(pgEvent).
		Returning(&PgEvent{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store event into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// EventByID returns an event by ID, or nil when not found.
func (p *PgSQL) EventByID(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	var row PgEvent
	found, err := p.Builder.From(eventsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch event by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ActiveEvents returns all active events ordered by start time.
func (p *PgSQL) ActiveEvents(ctx context.Context) ([]domain.Event, error) {
	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Where(goqu.I("status").Eq(string(domain.EventStatusActive))).
		Order(goqu.I("event_date").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active events from pg: %w", err)
	}

	return pgEventsToDomain(rows), nil
}

// EventsWithAnswers returns active events that have at least one question and
// at least one recorded answer.
func (p *PgSQL) EventsWithAnswers(ctx context.Context) ([]domain.Event, error) {
	hasQuestions := p.Builder.From(questionsTable).
		Select(goqu.L("1")).
		Where(goqu.I("questions.event_id").Eq(goqu.I("events.id")))
	hasAnswers := p.Builder.From(answersTable).
		Select(goqu.L("1")).
		Where(goqu.I("answers.event_id").Eq(goqu.I("events.id")))

	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Where(
			goqu.I("status").Eq(string(domain.EventStatusActive)),
			goqu.L("EXISTS ?", hasQuestions),
			goqu.L("EXISTS ?", hasAnswers),
		).
		Order(goqu.I("event_date").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch events with answers from pg: %w", err)
	}

	return pgEventsToDomain(rows), nil
}

// DeleteEvent removes an event. Questions, registrations and answers cascade
// through foreign keys. Returns false when the event does not exist.
func (p *PgSQL) DeleteEvent(ctx context.Context, id domain.EventID) (bool, error) {
	res, err := p.Builder.Delete(eventsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete event in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// SetWelcomeVideo stores the Telegram file ID of the event's welcome video.
// Returns false when the event does not exist.
func (p *PgSQL) SetWelcomeVideo(ctx context.Context, id domain.EventID, fileID string) (bool, error) {
	res, err := p.Builder.Update(eventsTable).
		Set(goqu.Record{
			"welcome_video_id": fileID,
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not set welcome video in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// MarkReminderSent flips the sent flag of the given reminder tier.
func (p *PgSQL) MarkReminderSent(ctx context.Context, id domain.EventID, tier domain.ReminderTier) error {
	column, ok := reminderColumns[tier]
	if !ok {
		return fmt.Errorf("unknown reminder tier: %q", tier)
	}

	_, err := p.Builder.Update(eventsTable).
		Set(goqu.Record{
			column: true,
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark reminder sent in pg: %w", err)
	}

	return nil
}

// CompleteEvent transitions an event from active to completed.
func (p *PgSQL) CompleteEvent(ctx context.Context, id domain.EventID) error {
	_, err := p.Builder.Update(eventsTable).
		Set(goqu.Record{
			"status": string(domain.EventStatusCompleted),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("status").Eq(string(domain.EventStatusActive)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not complete event in pg: %w", err)
	}

	return nil
}

// StoreQuestions inserts questionnaire questions and returns the stored rows.
func (p *PgSQL) StoreQuestions(ctx context.Context, questions ...domain.Question) ([]domain.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	pgQuestions := make([]PgQuestion, len(questions))
	for i, q := range questions {
		pgQuestions[i].FromDomain(q)
	}

	var rows []PgQuestion
	if err := p.Builder.Insert(questionsTable).
		Rows(pgQuestions).
		Returning(&PgQuestion{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store questions into pg: %w", err)
	}

	out := make([]domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// QuestionsByEvent returns the event's questions ordered by position.
func (p *PgSQL) QuestionsByEvent(ctx context.Context, eventID domain.EventID) ([]domain.Question, error) {
	var rows []PgQuestion
	if err := p.Builder.From(questionsTable).
		Where(goqu.I("event_id").Eq(int64(eventID))).
		Order(goqu.I("position").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch questions from pg: %w", err)
	}

	out := make([]domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// QuestionByID returns a question by ID, or nil when not found.
func (p *PgSQL) QuestionByID(ctx context.Context, id domain.QuestionID) (*domain.Question, error) {
	var row PgQuestion
	found, err := p.Builder.From(questionsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch question by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateQuestion replaces the text of a question. Returns false when the
// question does not exist.
func (p *PgSQL) UpdateQuestion(ctx context.Context, id domain.QuestionID, text string) (bool, error) {
	res, err := p.Builder.Update(questionsTable).
		Set(goqu.Record{
			"question_text": text,
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update question in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

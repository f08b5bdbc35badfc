package postgres

import (
	"context"
	"errors"
	"eventbot/pkg/domain"
	"eventbot/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	registrationsTable = "registrations"
	answersTable       = "answers"

	uniqueViolationCode = "23505"
)

// StoreRegistration inserts a registration. Returns storage.ErrDuplicate when
// the user is already registered for the event.
func (p *PgSQL) StoreRegistration(ctx context.Context, reg domain.Registration) error {
	_, err := p.Builder.Insert(registrationsTable).
		Rows(PgRegistration{
			UserID:  int64(reg.UserID),
			EventID: int64(reg.EventID),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return storage.ErrDuplicate
		}

		return fmt.Errorf("could not store registration into pg: %w", err)
	}

	return nil
}

// RegistrationExists reports whether the user is registered for the event.
func (p *PgSQL) RegistrationExists(ctx context.Context, userID domain.UserID, eventID domain.EventID) (bool, error) {
	var count int64
	if _, err := p.Builder.From(registrationsTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("event_id").Eq(int64(eventID)),
		).
		Executor().ScanValContext(ctx, &count); err != nil {
		return false, fmt.Errorf("could not check registration in pg: %w", err)
	}

	return count > 0, nil
}

// Attendees returns display info for every user registered for the event,
// ordered by registration time.
func (p *PgSQL) Attendees(ctx context.Context, eventID domain.EventID) ([]domain.Attendee, error) {
	var rows []struct {
		UserID    int64  `db:"user_id"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
	}
	if err := p.Builder.From(registrationsTable).
		Join(goqu.T(usersTable), goqu.On(
			goqu.I("registrations.user_id").Eq(goqu.I("users.user_id")),
		)).
		Select(
			goqu.I("users.user_id").As("user_id"),
			goqu.COALESCE(goqu.I("users.first_name"), "").As("first_name"),
			goqu.COALESCE(goqu.I("users.last_name"), "").As("last_name"),
		).
		Where(goqu.I("registrations.event_id").Eq(int64(eventID))).
		Order(goqu.I("registrations.registration_date").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch attendees from pg: %w", err)
	}

	out := make([]domain.Attendee, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Attendee{
			UserID:    domain.UserID(r.UserID),
			FirstName: r.FirstName,
			LastName:  r.LastName,
		})
	}

	return out, nil
}

// RegisteredUserIDs returns the IDs of users registered for the event.
func (p *PgSQL) RegisteredUserIDs(ctx context.Context, eventID domain.EventID) ([]domain.UserID, error) {
	var ids []int64
	if err := p.Builder.From(registrationsTable).
		Select(goqu.I("user_id")).
		Where(goqu.I("event_id").Eq(int64(eventID))).
		Order(goqu.I("user_id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch registered user ids from pg: %w", err)
	}

	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserID(id))
	}

	return out, nil
}

// StoreAnswers inserts questionnaire answers.
func (p *PgSQL) StoreAnswers(ctx context.Context, answers ...domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	pgAnswers := make([]PgAnswer, len(answers))
	for i, a := range answers {
		pgAnswers[i] = PgAnswer{
			UserID:     int64(a.UserID),
			EventID:    int64(a.EventID),
			QuestionID: int64(a.QuestionID),
			Text:       a.Text,
		}
	}

	if _, err := p.Builder.Insert(answersTable).
		Rows(pgAnswers).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store answers into pg: %w", err)
	}

	return nil
}

// AnswersByEvent returns all answers for the event joined with question text,
// ordered by user and question position.
func (p *PgSQL) AnswersByEvent(ctx context.Context, eventID domain.EventID) ([]domain.QuestionAnswer, error) {
	var rows []struct {
		UserID   int64  `db:"user_id"`
		Question string `db:"question_text"`
		Answer   string `db:"answer_text"`
	}
	if err := p.Builder.From(answersTable).
		Join(goqu.T(questionsTable), goqu.On(
			goqu.I("answers.question_id").Eq(goqu.I("questions.id")),
		)).
		Select(
			goqu.I("answers.user_id").As("user_id"),
			goqu.I("questions.question_text").As("question_text"),
			goqu.I("answers.answer_text").As("answer_text"),
		).
		Where(goqu.I("answers.event_id").Eq(int64(eventID))).
		Order(goqu.I("answers.user_id").Asc(), goqu.I("questions.position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch answers from pg: %w", err)
	}

	out := make([]domain.QuestionAnswer, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.QuestionAnswer{
			UserID:   domain.UserID(r.UserID),
			Question: r.Question,
			Answer:   r.Answer,
		})
	}

	return out, nil
}

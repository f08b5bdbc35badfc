package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"eventbot/pkg/domain"
	"eventbot/pkg/serrors"

	"github.com/xuri/excelize/v2"
	tele "gopkg.in/telebot.v3"
)

const answersSheet = "Answers"

// answersWorkbook pivots questionnaire answers into an Excel sheet: one row
// per user, one column per question. Questions keep their first-appearance
// order, which follows the questionnaire position. Users a question was never
// asked of get an empty cell.
func answersWorkbook(answers []domain.QuestionAnswer) ([]byte, error) {
	questions := make([]string, 0)
	questionCol := make(map[string]int)
	users := make([]domain.UserID, 0)
	userRow := make(map[domain.UserID]int)
	cells := make(map[domain.UserID]map[string]string)

	for _, a := range answers {
		if _, ok := questionCol[a.Question]; !ok {
			questionCol[a.Question] = len(questions)
			questions = append(questions, a.Question)
		}
		if _, ok := userRow[a.UserID]; !ok {
			userRow[a.UserID] = len(users)
			users = append(users, a.UserID)
			cells[a.UserID] = make(map[string]string)
		}
		cells[a.UserID][a.Question] = a.Answer
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(answersSheet)
	if err != nil {
		return nil, fmt.Errorf("could not create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("could not drop default sheet: %w", err)
	}

	if err := setCell(f, 1, 1, "User ID"); err != nil {
		return nil, err
	}
	for col, question := range questions {
		if err := setCell(f, col+2, 1, question); err != nil {
			return nil, err
		}
	}

	for _, userID := range users {
		row := userRow[userID] + 2
		if err := setCell(f, 1, row, int64(userID)); err != nil {
			return nil, err
		}
		for _, question := range questions {
			answer, ok := cells[userID][question]
			if !ok {
				continue
			}
			if err := setCell(f, questionCol[question]+2, row, answer); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("could not serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("could not build cell name: %w", err)
	}
	if err := f.SetCellValue(answersSheet, cell, value); err != nil {
		return fmt.Errorf("could not set cell %s: %w", cell, err)
	}

	return nil
}

// exportAnswers sends the event's questionnaire answers as an Excel document.
func (b *Bot) exportAnswers(ctx context.Context, c tele.Context, eventID domain.EventID) error {
	event, err := b.org.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Event not found.", ShowAlert: true})
		}

		return b.fail(c, err)
	}

	answers, err := b.org.AnswersForEvent(ctx, eventID)
	if err != nil {
		return b.fail(c, err)
	}
	if len(answers) == 0 {
		_ = c.Respond()

		return c.Edit("There are no questionnaire answers for this event yet.")
	}

	workbook, err := answersWorkbook(answers)
	if err != nil {
		return b.fail(c, err)
	}

	_ = c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf("🗃 Exporting the questionnaires for «%s»...", event.Name),
	})
	if err := c.Edit("🗃 Questionnaire export:"); err != nil {
		return err
	}

	return c.Send(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(workbook)),
		FileName: fmt.Sprintf("answers_%s_%s.xlsx", event.Date.Format("2006-01-02"), event.Name),
		Caption:  "📄 Questionnaires (Excel)",
	})
}

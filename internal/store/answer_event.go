package store

import (
	"context"
	"fmt"

	"github.com/sgslabs/sgsdiag/ent"
	"github.com/sgslabs/sgsdiag/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetRawScore(data.RawScore).
		SetEffectiveScore(data.EffectiveScore).
		SetReverse(data.Reverse).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEventData, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}

	answers := make([]AnswerEventData, 0, len(events))
	for _, e := range events {
		answers = append(answers, AnswerEventData{
			SessionID:      e.SessionID,
			QuestionID:     e.QuestionID,
			Category:       e.Category,
			RawScore:       e.RawScore,
			EffectiveScore: e.EffectiveScore,
			Reverse:        e.Reverse,
		})
	}
	return answers, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/sgslabs/sgsdiag/ent"
	"github.com/sgslabs/sgsdiag/ent/assessmentevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetApplicantName(data.ApplicantName).
		SetApplicantGrade(data.ApplicantGrade).
		SetApplicantCode(data.ApplicantCode).
		SetPai(data.PAI).
		SetAnswerCount(data.AnswerCount)

	if len(data.CategoryScores) > 0 {
		builder = builder.SetCategoryScores(data.CategoryScores)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) CompletedAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	q := r.client.AssessmentEvent.Query().
		Where(assessmentevent.Action("completed")).
		Order(ent.Desc(assessmentevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(assessmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(assessmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(assessmentevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed assessments: %w", err)
	}

	records := make([]AssessmentRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AssessmentRecord{
			SessionID:      e.SessionID,
			Timestamp:      e.Timestamp,
			ApplicantName:  e.ApplicantName,
			ApplicantGrade: e.ApplicantGrade,
			ApplicantCode:  e.ApplicantCode,
			PAI:            e.Pai,
			CategoryScores: e.CategoryScores,
		})
	}
	return records, nil
}

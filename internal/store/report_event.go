package store

import (
	"context"
	"fmt"

	"github.com/sgslabs/sgsdiag/ent"
	"github.com/sgslabs/sgsdiag/ent/reportevent"
)

func (r *eventRepo) AppendReport(ctx context.Context, data ReportEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReportEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetGenerator(data.Generator).
		SetSuccess(data.Success).
		SetPai(data.PAI).
		SetReportText(data.ReportText).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save report event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReportForSession(ctx context.Context, sessionID string) (*ReportRecord, error) {
	e, err := r.client.ReportEvent.Query().
		Where(
			reportevent.SessionID(sessionID),
			reportevent.Success(true),
		).
		Order(ent.Desc(reportevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session report: %w", err)
	}

	return &ReportRecord{
		SessionID:  e.SessionID,
		Timestamp:  e.Timestamp,
		Generator:  e.Generator,
		Success:    e.Success,
		PAI:        e.Pai,
		ReportText: e.ReportText,
	}, nil
}

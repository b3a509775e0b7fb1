package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportEvent records a report generation attempt and its outcome.
type ReportEvent struct {
	ent.Schema
}

func (ReportEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReportEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.String("generator").
			NotEmpty().
			Comment("llm or remote"),
		field.Bool("success").
			Comment("Whether generation produced a report"),
		field.Int("pai").
			Default(0).
			Comment("Composite PAI the report was generated for"),
		field.Text("report_text").
			Default("").
			Comment("Full narrative text (on success only)"),
		field.String("error_message").
			Default("").
			Comment("Failure detail (on failure only)"),
	}
}

func (ReportEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("success"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records diagnostic session lifecycle events.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("started, submitted, completed, report_failed, or reset"),
		field.String("applicant_name").
			Default("").
			Comment("Applicant name from the application form"),
		field.String("applicant_grade").
			Default("").
			Comment("School grade"),
		field.String("applicant_code").
			Default("").
			Comment("Unique tracking code (SGS-<name>-<digits>)"),
		field.Int("pai").
			Default(0).
			Comment("Composite PAI (on submitted/completed only)"),
		field.JSON("category_scores", map[string]float64{}).
			Optional().
			Comment("Per-category 0-100 scores (on submitted/completed only)"),
		field.Int("answer_count").
			Default(0).
			Comment("Answers recorded when the event fired"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("applicant_code"),
	}
}

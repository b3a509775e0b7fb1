package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single Likert answer within a diagnostic session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Battery question answered"),
		field.String("category").
			NotEmpty().
			Comment("Competency axis of the question"),
		field.Int("raw_score").
			Comment("Likert answer as given, 0-4"),
		field.Int("effective_score").
			Comment("Score after reverse-key inversion, 0-4"),
		field.Bool("reverse").
			Default(false).
			Comment("Whether the question is reverse-keyed"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("category"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Story is an AI-generated reading passage at a JLPT proficiency tier,
// with an attached vocabulary list.
type Story struct {
	ent.Schema
}

// VocabEntryData is the serialized form of one vocabulary item.
type VocabEntryData struct {
	Word       string `json:"word"`
	Reading    string `json:"reading"`
	Definition string `json:"definition"`
}

func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("Owning profile"),
		field.String("level").
			Comment("JLPT tier: N5, N4, N3, N2, N1"),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty().
			Comment("The passage text, Japanese"),
		field.JSON("vocabulary", []VocabEntryData{}).
			Comment("Ordered vocabulary list for the passage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("stories").
			Field("profile_id").
			Unique().
			Required(),
	}
}

func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("profile_id", "created_at"),
	}
}

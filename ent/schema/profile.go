package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a learner identity. Every other entity is scoped to
// exactly one profile.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, unique across profiles"),
		field.String("bio").
			Default("").
			Comment("Free-form self description"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("decks", Deck.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("stories", Story.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single front/back study item. Its effective owner is the
// parent deck's profile, re-derived on every mutation.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.Int("deck_id").
			Comment("Parent deck"),
		field.String("front").
			NotEmpty().
			Comment("Prompt side, e.g. the Japanese word"),
		field.String("back").
			NotEmpty().
			Comment("Answer side, e.g. reading and meaning"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deck", Deck.Type).
			Ref("cards").
			Field("deck_id").
			Unique().
			Required(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id"),
	}
}

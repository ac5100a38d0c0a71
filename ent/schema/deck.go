package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deck is a user-owned flashcard collection. Deleting a deck cascades
// to its cards.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("Owning profile"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Deck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("decks").
			Field("profile_id").
			Unique().
			Required(),
		edge.To("cards", Card.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (Deck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation is a saved exchange of user/assistant turns. The message
// list is stored as a JSON column and replaced wholesale on every save.
type Conversation struct {
	ent.Schema
}

// MessageData is the serialized form of a single conversation turn.
type MessageData struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("Owning profile; every query filters on this"),
		field.String("kind").
			Default("free").
			Comment("Scenario ID, or \"free\" for free talk"),
		field.JSON("messages", []MessageData{}).
			Comment("Ordered user/assistant turns"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("conversations").
			Field("profile_id").
			Unique().
			Required(),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("profile_id", "updated_at"),
	}
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/conversation"
	"github.com/ayumu/kotoba/ent/schema"
)

// Message roles. These match the wire roles of the generative providers
// before any provider-specific mapping.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	Role    string
	Content string
}

// Conversation is a saved ordered exchange of turns, tagged with a
// scenario kind or "free".
type Conversation struct {
	ID        int
	ProfileID int
	Kind      string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConversationRepo manages saved conversations. All operations are
// scoped to a profile ID; rows belonging to other profiles behave as if
// they do not exist.
type ConversationRepo interface {
	// Upsert saves a conversation. When id is zero a new row is created
	// and its generated ID returned, so the caller can target subsequent
	// saves at the same row. When id is set, the row's message list is
	// replaced in place. An id not owned by profileID fails with
	// ErrNotOwned.
	Upsert(ctx context.Context, profileID, id int, kind string, msgs []Message) (int, error)

	// Get returns one conversation, or ErrNotOwned.
	Get(ctx context.Context, profileID, id int) (*Conversation, error)

	// List returns conversations newest-first. limit <= 0 means all.
	List(ctx context.Context, profileID, limit int) ([]*Conversation, error)

	// Delete removes one conversation, or fails with ErrNotOwned.
	Delete(ctx context.Context, profileID, id int) error
}

type conversationRepo struct {
	client *ent.Client
}

func (r *conversationRepo) Upsert(ctx context.Context, profileID, id int, kind string, msgs []Message) (int, error) {
	data := messagesToData(msgs)

	if id == 0 {
		c, err := r.client.Conversation.Create().
			SetProfileID(profileID).
			SetKind(kind).
			SetMessages(data).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create conversation: %w", err)
		}
		return c.ID, nil
	}

	n, err := r.client.Conversation.Update().
		Where(
			conversation.IDEQ(id),
			conversation.ProfileIDEQ(profileID),
		).
		SetKind(kind).
		SetMessages(data).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update conversation: %w", err)
	}
	if n == 0 {
		return 0, ErrNotOwned
	}
	return id, nil
}

func (r *conversationRepo) Get(ctx context.Context, profileID, id int) (*Conversation, error) {
	c, err := r.client.Conversation.Query().
		Where(
			conversation.IDEQ(id),
			conversation.ProfileIDEQ(profileID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return entConversation(c), nil
}

func (r *conversationRepo) List(ctx context.Context, profileID, limit int) ([]*Conversation, error) {
	q := r.client.Conversation.Query().
		Where(conversation.ProfileIDEQ(profileID)).
		Order(ent.Desc(conversation.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	out := make([]*Conversation, len(rows))
	for i, c := range rows {
		out[i] = entConversation(c)
	}
	return out, nil
}

func (r *conversationRepo) Delete(ctx context.Context, profileID, id int) error {
	n, err := r.client.Conversation.Delete().
		Where(
			conversation.IDEQ(id),
			conversation.ProfileIDEQ(profileID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	if n == 0 {
		return ErrNotOwned
	}
	return nil
}

func messagesToData(msgs []Message) []schema.MessageData {
	data := make([]schema.MessageData, len(msgs))
	for i, m := range msgs {
		data[i] = schema.MessageData{Role: m.Role, Content: m.Content}
	}
	return data
}

func entConversation(c *ent.Conversation) *Conversation {
	msgs := make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		msgs[i] = Message{Role: m.Role, Content: m.Content}
	}
	return &Conversation{
		ID:        c.ID,
		ProfileID: c.ProfileID,
		Kind:      c.Kind,
		Messages:  msgs,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/card"
	"github.com/ayumu/kotoba/ent/deck"
)

// Card is a single front/back study item. Its effective owner is the
// parent deck's profile.
type Card struct {
	ID        int
	DeckID    int
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardRepo manages flashcards. Every mutation re-derives the parent
// deck's owner through assertDeckOwned before touching the row.
type CardRepo interface {
	Create(ctx context.Context, profileID, deckID int, front, back string) (*Card, error)

	// List returns the deck's cards in creation order, or ErrNotOwned.
	List(ctx context.Context, profileID, deckID int) ([]*Card, error)

	// Update replaces front and back, or fails with ErrNotOwned.
	Update(ctx context.Context, profileID, cardID int, front, back string) (*Card, error)

	// Delete removes one card, or fails with ErrNotOwned.
	Delete(ctx context.Context, profileID, cardID int) error
}

type cardRepo struct {
	client *ent.Client
}

// assertDeckOwned verifies that deckID exists and belongs to profileID.
// It is the single ownership gate for every card mutation path.
func assertDeckOwned(ctx context.Context, client *ent.Client, profileID, deckID int) error {
	exists, err := client.Deck.Query().
		Where(
			deck.IDEQ(deckID),
			deck.ProfileIDEQ(profileID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check deck ownership: %w", err)
	}
	if !exists {
		return ErrNotOwned
	}
	return nil
}

// deckIDForCard resolves the parent deck of a card, or ErrNotOwned if
// the card does not exist.
func deckIDForCard(ctx context.Context, client *ent.Client, cardID int) (int, error) {
	c, err := client.Card.Query().
		Where(card.IDEQ(cardID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotOwned
		}
		return 0, fmt.Errorf("resolve card deck: %w", err)
	}
	return c.DeckID, nil
}

func (r *cardRepo) Create(ctx context.Context, profileID, deckID int, front, back string) (*Card, error) {
	if err := assertDeckOwned(ctx, r.client, profileID, deckID); err != nil {
		return nil, err
	}

	c, err := r.client.Card.Create().
		SetDeckID(deckID).
		SetFront(front).
		SetBack(back).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return entCard(c), nil
}

func (r *cardRepo) List(ctx context.Context, profileID, deckID int) ([]*Card, error) {
	if err := assertDeckOwned(ctx, r.client, profileID, deckID); err != nil {
		return nil, err
	}

	rows, err := r.client.Card.Query().
		Where(card.DeckIDEQ(deckID)).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	out := make([]*Card, len(rows))
	for i, c := range rows {
		out[i] = entCard(c)
	}
	return out, nil
}

func (r *cardRepo) Update(ctx context.Context, profileID, cardID int, front, back string) (*Card, error) {
	deckID, err := deckIDForCard(ctx, r.client, cardID)
	if err != nil {
		return nil, err
	}
	if err := assertDeckOwned(ctx, r.client, profileID, deckID); err != nil {
		return nil, err
	}

	c, err := r.client.Card.UpdateOneID(cardID).
		SetFront(front).
		SetBack(back).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return entCard(c), nil
}

func (r *cardRepo) Delete(ctx context.Context, profileID, cardID int) error {
	deckID, err := deckIDForCard(ctx, r.client, cardID)
	if err != nil {
		return err
	}
	if err := assertDeckOwned(ctx, r.client, profileID, deckID); err != nil {
		return err
	}

	if err := r.client.Card.DeleteOneID(cardID).Exec(ctx); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func entCard(c *ent.Card) *Card {
	return &Card{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

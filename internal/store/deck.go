package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/deck"
)

// Deck is a user-owned flashcard collection.
type Deck struct {
	ID          int
	ProfileID   int
	Name        string
	Description string
	CardCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckRepo manages flashcard decks, scoped to a profile ID.
type DeckRepo interface {
	Create(ctx context.Context, profileID int, name, description string) (*Deck, error)

	// Get returns one deck, or ErrNotOwned.
	Get(ctx context.Context, profileID, id int) (*Deck, error)

	// List returns the profile's decks, newest first, with card counts.
	List(ctx context.Context, profileID int) ([]*Deck, error)

	// Update replaces name and description, or fails with ErrNotOwned.
	Update(ctx context.Context, profileID, id int, name, description string) (*Deck, error)

	// Delete removes the deck and its cards, or fails with ErrNotOwned.
	Delete(ctx context.Context, profileID, id int) error
}

type deckRepo struct {
	client *ent.Client
}

func (r *deckRepo) Create(ctx context.Context, profileID int, name, description string) (*Deck, error) {
	d, err := r.client.Deck.Create().
		SetProfileID(profileID).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return entDeck(d, 0), nil
}

func (r *deckRepo) Get(ctx context.Context, profileID, id int) (*Deck, error) {
	d, err := r.client.Deck.Query().
		Where(
			deck.IDEQ(id),
			deck.ProfileIDEQ(profileID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}

	count, err := d.QueryCards().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	return entDeck(d, count), nil
}

func (r *deckRepo) List(ctx context.Context, profileID int) ([]*Deck, error) {
	rows, err := r.client.Deck.Query().
		Where(deck.ProfileIDEQ(profileID)).
		Order(ent.Desc(deck.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	out := make([]*Deck, len(rows))
	for i, d := range rows {
		count, err := d.QueryCards().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count cards: %w", err)
		}
		out[i] = entDeck(d, count)
	}
	return out, nil
}

func (r *deckRepo) Update(ctx context.Context, profileID, id int, name, description string) (*Deck, error) {
	n, err := r.client.Deck.Update().
		Where(
			deck.IDEQ(id),
			deck.ProfileIDEQ(profileID),
		).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}
	if n == 0 {
		return nil, ErrNotOwned
	}
	return r.Get(ctx, profileID, id)
}

func (r *deckRepo) Delete(ctx context.Context, profileID, id int) error {
	n, err := r.client.Deck.Delete().
		Where(
			deck.IDEQ(id),
			deck.ProfileIDEQ(profileID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	if n == 0 {
		return ErrNotOwned
	}
	return nil
}

func entDeck(d *ent.Deck, cardCount int) *Deck {
	return &Deck{
		ID:          d.ID,
		ProfileID:   d.ProfileID,
		Name:        d.Name,
		Description: d.Description,
		CardCount:   cardCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

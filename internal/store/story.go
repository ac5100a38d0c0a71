package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/schema"
	"github.com/ayumu/kotoba/ent/story"
)

// VocabEntry is one vocabulary item attached to a story.
type VocabEntry struct {
	Word       string
	Reading    string
	Definition string
}

// Story is an AI-generated reading passage at a proficiency tier.
type Story struct {
	ID         int
	ProfileID  int
	Level      string
	Title      string
	Content    string
	Vocabulary []VocabEntry
	CreatedAt  time.Time
}

// StoryRepo manages saved stories, scoped to a profile ID.
type StoryRepo interface {
	Create(ctx context.Context, profileID int, s *Story) (*Story, error)

	// Get returns one story, or ErrNotOwned.
	Get(ctx context.Context, profileID, id int) (*Story, error)

	// List returns the profile's stories, newest first.
	List(ctx context.Context, profileID int) ([]*Story, error)

	// Delete removes one story, or fails with ErrNotOwned.
	Delete(ctx context.Context, profileID, id int) error
}

type storyRepo struct {
	client *ent.Client
}

func (r *storyRepo) Create(ctx context.Context, profileID int, s *Story) (*Story, error) {
	vocab := make([]schema.VocabEntryData, len(s.Vocabulary))
	for i, v := range s.Vocabulary {
		vocab[i] = schema.VocabEntryData{
			Word:       v.Word,
			Reading:    v.Reading,
			Definition: v.Definition,
		}
	}

	row, err := r.client.Story.Create().
		SetProfileID(profileID).
		SetLevel(s.Level).
		SetTitle(s.Title).
		SetContent(s.Content).
		SetVocabulary(vocab).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return entStory(row), nil
}

func (r *storyRepo) Get(ctx context.Context, profileID, id int) (*Story, error) {
	row, err := r.client.Story.Query().
		Where(
			story.IDEQ(id),
			story.ProfileIDEQ(profileID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("get story: %w", err)
	}
	return entStory(row), nil
}

func (r *storyRepo) List(ctx context.Context, profileID int) ([]*Story, error) {
	rows, err := r.client.Story.Query().
		Where(story.ProfileIDEQ(profileID)).
		Order(ent.Desc(story.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	out := make([]*Story, len(rows))
	for i, row := range rows {
		out[i] = entStory(row)
	}
	return out, nil
}

func (r *storyRepo) Delete(ctx context.Context, profileID, id int) error {
	n, err := r.client.Story.Delete().
		Where(
			story.IDEQ(id),
			story.ProfileIDEQ(profileID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if n == 0 {
		return ErrNotOwned
	}
	return nil
}

func entStory(row *ent.Story) *Story {
	vocab := make([]VocabEntry, len(row.Vocabulary))
	for i, v := range row.Vocabulary {
		vocab[i] = VocabEntry{
			Word:       v.Word,
			Reading:    v.Reading,
			Definition: v.Definition,
		}
	}
	return &Story{
		ID:         row.ID,
		ProfileID:  row.ProfileID,
		Level:      row.Level,
		Title:      row.Title,
		Content:    row.Content,
		Vocabulary: vocab,
		CreatedAt:  row.CreatedAt,
	}
}

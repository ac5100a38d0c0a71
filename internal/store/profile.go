package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/profile"
)

// Profile is a learner identity.
type Profile struct {
	ID        int
	Name      string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	// Ensure returns the profile with the given name, creating it if it
	// does not exist yet. Absence is not an error.
	Ensure(ctx context.Context, name string) (*Profile, error)

	// Get returns the profile by ID, or ErrNotFound.
	Get(ctx context.Context, id int) (*Profile, error)

	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]*Profile, error)

	// Update replaces the profile's name and bio.
	Update(ctx context.Context, id int, name, bio string) (*Profile, error)

	// Delete removes the profile and everything it owns.
	Delete(ctx context.Context, id int) error
}

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Ensure(ctx context.Context, name string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.NameEQ(name)).
		Only(ctx)
	if err == nil {
		return entProfile(p), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p, err = r.client.Profile.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return entProfile(p), nil
}

func (r *profileRepo) Get(ctx context.Context, id int) (*Profile, error) {
	p, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return entProfile(p), nil
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]*Profile, len(rows))
	for i, p := range rows {
		out[i] = entProfile(p)
	}
	return out, nil
}

func (r *profileRepo) Update(ctx context.Context, id int, name, bio string) (*Profile, error) {
	p, err := r.client.Profile.UpdateOneID(id).
		SetName(name).
		SetBio(bio).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return entProfile(p), nil
}

func (r *profileRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Profile.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func entProfile(p *ent.Profile) *Profile {
	return &Profile{
		ID:        p.ID,
		Name:      p.Name,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ayumu/kotoba/ent/predicate"
	"github.com/ayumu/kotoba/ent/profile"
	"github.com/ayumu/kotoba/ent/schema"
	"github.com/ayumu/kotoba/ent/story"
)

// StoryUpdate is the builder for updating Story entities.
type StoryUpdate struct {
	config
	hooks    []Hook
	mutation *StoryMutation
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdate) Where(ps ...predicate.Story) *StoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *StoryUpdate) SetProfileID(v int) *StoryUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableProfileID(v *int) *StoryUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StoryUpdate) SetLevel(v string) *StoryUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableLevel(v *string) *StoryUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdate) SetTitle(v string) *StoryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableTitle(v *string) *StoryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StoryUpdate) SetContent(v string) *StoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableContent(v *string) *StoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *StoryUpdate) SetVocabulary(v []schema.VocabEntryData) *StoryUpdate {
	_u.mutation.SetVocabulary(v)
	return _u
}

// AppendVocabulary appends value to the "vocabulary" field.
func (_u *StoryUpdate) AppendVocabulary(v []schema.VocabEntryData) *StoryUpdate {
	_u.mutation.AppendVocabulary(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *StoryUpdate) SetProfile(v *Profile) *StoryUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdate) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *StoryUpdate) ClearProfile() *StoryUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := story.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Story.content": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Story.profile"`)
	}
	return nil
}

func (_u *StoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(story.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(story.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(story.FieldVocabulary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabulary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, story.FieldVocabulary, value)
		})
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   story.ProfileTable,
			Columns: []string{story.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   story.ProfileTable,
			Columns: []string{story.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryUpdateOne is the builder for updating a single Story entity.
type StoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *StoryUpdateOne) SetProfileID(v int) *StoryUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableProfileID(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StoryUpdateOne) SetLevel(v string) *StoryUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableLevel(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdateOne) SetTitle(v string) *StoryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableTitle(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StoryUpdateOne) SetContent(v string) *StoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableContent(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *StoryUpdateOne) SetVocabulary(v []schema.VocabEntryData) *StoryUpdateOne {
	_u.mutation.SetVocabulary(v)
	return _u
}

// AppendVocabulary appends value to the "vocabulary" field.
func (_u *StoryUpdateOne) AppendVocabulary(v []schema.VocabEntryData) *StoryUpdateOne {
	_u.mutation.AppendVocabulary(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *StoryUpdateOne) SetProfile(v *Profile) *StoryUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdateOne) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *StoryUpdateOne) ClearProfile() *StoryUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdateOne) Where(ps ...predicate.Story) *StoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryUpdateOne) Select(field string, fields ...string) *StoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Story entity.
func (_u *StoryUpdateOne) Save(ctx context.Context) (*Story, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdateOne) SaveX(ctx context.Context) *Story {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := story.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Story.content": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Story.profile"`)
	}
	return nil
}

func (_u *StoryUpdateOne) sqlSave(ctx context.Context) (_node *Story, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Story.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, story.FieldID)
		for _, f := range fields {
			if !story.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != story.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(story.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(story.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(story.FieldVocabulary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabulary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, story.FieldVocabulary, value)
		})
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   story.ProfileTable,
			Columns: []string{story.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   story.ProfileTable,
			Columns: []string{story.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Story{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

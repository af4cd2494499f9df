// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gurukul/ent/predicate"
	"github.com/abhisek/gurukul/ent/renderjob"
)

// RenderJobUpdate is the builder for updating RenderJob entities.
type RenderJobUpdate struct {
	config
	hooks    []Hook
	mutation *RenderJobMutation
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdate) Where(ps ...predicate.RenderJob) *RenderJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RenderJobUpdate) SetPrompt(v string) *RenderJobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillablePrompt(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *RenderJobUpdate) SetQuality(v renderjob.Quality) *RenderJobUpdate {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableQuality(v *renderjob.Quality) *RenderJobUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdate) SetStatus(v renderjob.Status) *RenderJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStatus(v *renderjob.Status) *RenderJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSceneParams sets the "scene_params" field.
func (_u *RenderJobUpdate) SetSceneParams(v map[string]interface{}) *RenderJobUpdate {
	_u.mutation.SetSceneParams(v)
	return _u
}

// ClearSceneParams clears the value of the "scene_params" field.
func (_u *RenderJobUpdate) ClearSceneParams() *RenderJobUpdate {
	_u.mutation.ClearSceneParams()
	return _u
}

// SetResultURL sets the "result_url" field.
func (_u *RenderJobUpdate) SetResultURL(v string) *RenderJobUpdate {
	_u.mutation.SetResultURL(v)
	return _u
}

// SetNillableResultURL sets the "result_url" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableResultURL(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetResultURL(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *RenderJobUpdate) SetErrorDetail(v string) *RenderJobUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableErrorDetail(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RenderJobUpdate) SetUpdatedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdate) Mutation() *RenderJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RenderJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RenderJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RenderJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := renderjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdate) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := renderjob.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "RenderJob.quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RenderJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(renderjob.FieldQuality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SceneParams(); ok {
		_spec.SetField(renderjob.FieldSceneParams, field.TypeJSON, value)
	}
	if _u.mutation.SceneParamsCleared() {
		_spec.ClearField(renderjob.FieldSceneParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultURL(); ok {
		_spec.SetField(renderjob.FieldResultURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(renderjob.FieldErrorDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RenderJobUpdateOne is the builder for updating a single RenderJob entity.
type RenderJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RenderJobMutation
}

// SetPrompt sets the "prompt" field.
func (_u *RenderJobUpdateOne) SetPrompt(v string) *RenderJobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillablePrompt(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *RenderJobUpdateOne) SetQuality(v renderjob.Quality) *RenderJobUpdateOne {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableQuality(v *renderjob.Quality) *RenderJobUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdateOne) SetStatus(v renderjob.Status) *RenderJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStatus(v *renderjob.Status) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSceneParams sets the "scene_params" field.
func (_u *RenderJobUpdateOne) SetSceneParams(v map[string]interface{}) *RenderJobUpdateOne {
	_u.mutation.SetSceneParams(v)
	return _u
}

// ClearSceneParams clears the value of the "scene_params" field.
func (_u *RenderJobUpdateOne) ClearSceneParams() *RenderJobUpdateOne {
	_u.mutation.ClearSceneParams()
	return _u
}

// SetResultURL sets the "result_url" field.
func (_u *RenderJobUpdateOne) SetResultURL(v string) *RenderJobUpdateOne {
	_u.mutation.SetResultURL(v)
	return _u
}

// SetNillableResultURL sets the "result_url" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableResultURL(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetResultURL(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *RenderJobUpdateOne) SetErrorDetail(v string) *RenderJobUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableErrorDetail(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RenderJobUpdateOne) SetUpdatedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdateOne) Mutation() *RenderJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdateOne) Where(ps ...predicate.RenderJob) *RenderJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RenderJobUpdateOne) Select(field string, fields ...string) *RenderJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RenderJob entity.
func (_u *RenderJobUpdateOne) Save(ctx context.Context) (*RenderJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdateOne) SaveX(ctx context.Context) *RenderJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RenderJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RenderJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := renderjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdateOne) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := renderjob.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "RenderJob.quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RenderJobUpdateOne) sqlSave(ctx context.Context) (_node *RenderJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RenderJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, renderjob.FieldID)
		for _, f := range fields {
			if !renderjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != renderjob.FieldID {
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
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(renderjob.FieldQuality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SceneParams(); ok {
		_spec.SetField(renderjob.FieldSceneParams, field.TypeJSON, value)
	}
	if _u.mutation.SceneParamsCleared() {
		_spec.ClearField(renderjob.FieldSceneParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultURL(); ok {
		_spec.SetField(renderjob.FieldResultURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(renderjob.FieldErrorDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RenderJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

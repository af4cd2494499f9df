// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gurukul/ent/renderjob"
)

// RenderJobCreate is the builder for creating a RenderJob entity.
type RenderJobCreate struct {
	config
	mutation *RenderJobMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *RenderJobCreate) SetJobID(v string) *RenderJobCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *RenderJobCreate) SetPrompt(v string) *RenderJobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *RenderJobCreate) SetQuality(v renderjob.Quality) *RenderJobCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableQuality(v *renderjob.Quality) *RenderJobCreate {
	if v != nil {
		_c.SetQuality(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RenderJobCreate) SetStatus(v renderjob.Status) *RenderJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStatus(v *renderjob.Status) *RenderJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSceneParams sets the "scene_params" field.
func (_c *RenderJobCreate) SetSceneParams(v map[string]interface{}) *RenderJobCreate {
	_c.mutation.SetSceneParams(v)
	return _c
}

// SetResultURL sets the "result_url" field.
func (_c *RenderJobCreate) SetResultURL(v string) *RenderJobCreate {
	_c.mutation.SetResultURL(v)
	return _c
}

// SetNillableResultURL sets the "result_url" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableResultURL(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetResultURL(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *RenderJobCreate) SetErrorDetail(v string) *RenderJobCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableErrorDetail(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RenderJobCreate) SetCreatedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableCreatedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RenderJobCreate) SetUpdatedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableUpdatedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RenderJobMutation object of the builder.
func (_c *RenderJobCreate) Mutation() *RenderJobMutation {
	return _c.mutation
}

// Save creates the RenderJob in the database.
func (_c *RenderJobCreate) Save(ctx context.Context) (*RenderJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RenderJobCreate) SaveX(ctx context.Context) *RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RenderJobCreate) defaults() {
	if _, ok := _c.mutation.Quality(); !ok {
		v := renderjob.DefaultQuality
		_c.mutation.SetQuality(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := renderjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ResultURL(); !ok {
		v := renderjob.DefaultResultURL
		_c.mutation.SetResultURL(v)
	}
	if _, ok := _c.mutation.ErrorDetail(); !ok {
		v := renderjob.DefaultErrorDetail
		_c.mutation.SetErrorDetail(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := renderjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := renderjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RenderJobCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "RenderJob.job_id"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "RenderJob.prompt"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "RenderJob.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := renderjob.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "RenderJob.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RenderJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultURL(); !ok {
		return &ValidationError{Name: "result_url", err: errors.New(`ent: missing required field "RenderJob.result_url"`)}
	}
	if _, ok := _c.mutation.ErrorDetail(); !ok {
		return &ValidationError{Name: "error_detail", err: errors.New(`ent: missing required field "RenderJob.error_detail"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RenderJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RenderJob.updated_at"`)}
	}
	return nil
}

func (_c *RenderJobCreate) sqlSave(ctx context.Context) (*RenderJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RenderJobCreate) createSpec() (*RenderJob, *sqlgraph.CreateSpec) {
	var (
		_node = &RenderJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(renderjob.Table, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(renderjob.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(renderjob.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(renderjob.FieldQuality, field.TypeEnum, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SceneParams(); ok {
		_spec.SetField(renderjob.FieldSceneParams, field.TypeJSON, value)
		_node.SceneParams = value
	}
	if value, ok := _c.mutation.ResultURL(); ok {
		_spec.SetField(renderjob.FieldResultURL, field.TypeString, value)
		_node.ResultURL = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(renderjob.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(renderjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RenderJobCreateBulk is the builder for creating many RenderJob entities in bulk.
type RenderJobCreateBulk struct {
	config
	err      error
	builders []*RenderJobCreate
}

// Save creates the RenderJob entities in the database.
func (_c *RenderJobCreateBulk) Save(ctx context.Context) ([]*RenderJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RenderJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RenderJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RenderJobCreateBulk) SaveX(ctx context.Context) []*RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

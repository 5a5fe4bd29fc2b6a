// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
)

// CaseFormCreate is the builder for creating a CaseForm entity.
type CaseFormCreate struct {
	config
	mutation *CaseFormMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseFormCreate) SetCaseID(v uuid.UUID) *CaseFormCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *CaseFormCreate) SetFields(v map[string]string) *CaseFormCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CaseFormCreate) SetVersion(v int) *CaseFormCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CaseFormCreate) SetNillableVersion(v *int) *CaseFormCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseFormCreate) SetCreatedAt(v time.Time) *CaseFormCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseFormCreate) SetNillableCreatedAt(v *time.Time) *CaseFormCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseFormCreate) SetUpdatedAt(v time.Time) *CaseFormCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CaseFormCreate) SetNillableUpdatedAt(v *time.Time) *CaseFormCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseFormCreate) SetID(v uuid.UUID) *CaseFormCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaseFormCreate) SetNillableID(v *uuid.UUID) *CaseFormCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CaseFormMutation object of the builder.
func (_c *CaseFormCreate) Mutation() *CaseFormMutation {
	return _c.mutation
}

// Save creates the CaseForm in the database.
func (_c *CaseFormCreate) Save(ctx context.Context) (*CaseForm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseFormCreate) SaveX(ctx context.Context) *CaseForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseFormCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseFormCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseFormCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := caseform.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := caseform.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := caseform.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := caseform.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseFormCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseForm.case_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CaseForm.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := caseform.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CaseForm.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseForm.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CaseForm.updated_at"`)}
	}
	return nil
}

func (_c *CaseFormCreate) sqlSave(ctx context.Context) (*CaseForm, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseFormCreate) createSpec() (*CaseForm, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseForm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseform.Table, sqlgraph.NewFieldSpec(caseform.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(caseform.FieldCaseID, field.TypeUUID, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(caseform.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(caseform.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caseform.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(caseform.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CaseFormCreateBulk is the builder for creating many CaseForm entities in bulk.
type CaseFormCreateBulk struct {
	config
	err      error
	builders []*CaseFormCreate
}

// Save creates the CaseForm entities in the database.
func (_c *CaseFormCreateBulk) Save(ctx context.Context) ([]*CaseForm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseForm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseFormMutation)
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
func (_c *CaseFormCreateBulk) SaveX(ctx context.Context) []*CaseForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseFormCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseFormCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

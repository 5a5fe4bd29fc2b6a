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
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
)

// CaseFormUpdate is the builder for updating CaseForm entities.
type CaseFormUpdate struct {
	config
	hooks    []Hook
	mutation *CaseFormMutation
}

// Where appends a list predicates to the CaseFormUpdate builder.
func (_u *CaseFormUpdate) Where(ps ...predicate.CaseForm) *CaseFormUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseFormUpdate) SetCaseID(v uuid.UUID) *CaseFormUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseFormUpdate) SetNillableCaseID(v *uuid.UUID) *CaseFormUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *CaseFormUpdate) SetFields(v map[string]string) *CaseFormUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *CaseFormUpdate) ClearFields() *CaseFormUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseFormUpdate) SetVersion(v int) *CaseFormUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseFormUpdate) SetNillableVersion(v *int) *CaseFormUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseFormUpdate) AddVersion(v int) *CaseFormUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseFormUpdate) SetUpdatedAt(v time.Time) *CaseFormUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseFormMutation object of the builder.
func (_u *CaseFormUpdate) Mutation() *CaseFormMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseFormUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseFormUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseFormUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseFormUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseFormUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caseform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseFormUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := caseform.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CaseForm.version": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseFormUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseform.Table, caseform.Columns, sqlgraph.NewFieldSpec(caseform.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(caseform.FieldCaseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(caseform.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(caseform.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(caseform.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(caseform.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caseform.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseFormUpdateOne is the builder for updating a single CaseForm entity.
type CaseFormUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseFormMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseFormUpdateOne) SetCaseID(v uuid.UUID) *CaseFormUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseFormUpdateOne) SetNillableCaseID(v *uuid.UUID) *CaseFormUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *CaseFormUpdateOne) SetFields(v map[string]string) *CaseFormUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *CaseFormUpdateOne) ClearFields() *CaseFormUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseFormUpdateOne) SetVersion(v int) *CaseFormUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseFormUpdateOne) SetNillableVersion(v *int) *CaseFormUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseFormUpdateOne) AddVersion(v int) *CaseFormUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseFormUpdateOne) SetUpdatedAt(v time.Time) *CaseFormUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseFormMutation object of the builder.
func (_u *CaseFormUpdateOne) Mutation() *CaseFormMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseFormUpdate builder.
func (_u *CaseFormUpdateOne) Where(ps ...predicate.CaseForm) *CaseFormUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseFormUpdateOne) Select(field string, fields ...string) *CaseFormUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseForm entity.
func (_u *CaseFormUpdateOne) Save(ctx context.Context) (*CaseForm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseFormUpdateOne) SaveX(ctx context.Context) *CaseForm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseFormUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseFormUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseFormUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caseform.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseFormUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := caseform.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CaseForm.version": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseFormUpdateOne) sqlSave(ctx context.Context) (_node *CaseForm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseform.Table, caseform.Columns, sqlgraph.NewFieldSpec(caseform.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseForm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseform.FieldID)
		for _, f := range fields {
			if !caseform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseform.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(caseform.FieldCaseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(caseform.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(caseform.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(caseform.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(caseform.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caseform.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CaseForm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

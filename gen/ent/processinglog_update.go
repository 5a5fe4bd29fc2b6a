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
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
	"github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdate) SetDocumentID(v uuid.UUID) *ProcessingLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessingLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ProcessingLogUpdate) SetAttempt(v int) *ProcessingLogUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableAttempt(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ProcessingLogUpdate) AddAttempt(v int) *ProcessingLogUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ProcessingLogUpdate) SetPhase(v string) *ProcessingLogUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillablePhase(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProcessingLogUpdate) SetOutcome(v string) *ProcessingLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableOutcome(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdate) SetErrorMessage(v string) *ProcessingLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableErrorMessage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdate) ClearErrorMessage() *ProcessingLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingLogUpdate) SetFinishedAt(v time.Time) *ProcessingLogUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableFinishedAt(v *time.Time) *ProcessingLogUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingLogUpdate) ClearFinishedAt() *ProcessingLogUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) SetDocument(v *Document) *ProcessingLogUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) ClearDocument() *ProcessingLogUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdate) check() error {
	if v, ok := _u.mutation.Attempt(); ok {
		if err := processinglog.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := processinglog.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := processinglog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.outcome": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(processinglog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(processinglog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(processinglog.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(processinglog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processinglog.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processinglog.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdateOne) SetDocumentID(v uuid.UUID) *ProcessingLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ProcessingLogUpdateOne) SetAttempt(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableAttempt(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ProcessingLogUpdateOne) AddAttempt(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ProcessingLogUpdateOne) SetPhase(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillablePhase(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProcessingLogUpdateOne) SetOutcome(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableOutcome(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdateOne) SetErrorMessage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableErrorMessage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdateOne) ClearErrorMessage() *ProcessingLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingLogUpdateOne) SetFinishedAt(v time.Time) *ProcessingLogUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableFinishedAt(v *time.Time) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingLogUpdateOne) ClearFinishedAt() *ProcessingLogUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) SetDocument(v *Document) *ProcessingLogUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) ClearDocument() *ProcessingLogUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdateOne) check() error {
	if v, ok := _u.mutation.Attempt(); ok {
		if err := processinglog.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := processinglog.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := processinglog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.outcome": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
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
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(processinglog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(processinglog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(processinglog.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(processinglog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processinglog.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processinglog.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
)

// CaseFormDelete is the builder for deleting a CaseForm entity.
type CaseFormDelete struct {
	config
	hooks    []Hook
	mutation *CaseFormMutation
}

// Where appends a list predicates to the CaseFormDelete builder.
func (_d *CaseFormDelete) Where(ps ...predicate.CaseForm) *CaseFormDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaseFormDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseFormDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaseFormDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(caseform.Table, sqlgraph.NewFieldSpec(caseform.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CaseFormDeleteOne is the builder for deleting a single CaseForm entity.
type CaseFormDeleteOne struct {
	_d *CaseFormDelete
}

// Where appends a list predicates to the CaseFormDelete builder.
func (_d *CaseFormDeleteOne) Where(ps ...predicate.CaseForm) *CaseFormDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaseFormDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{caseform.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseFormDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

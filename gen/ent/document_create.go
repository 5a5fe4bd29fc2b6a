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
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *DocumentCreate) SetCaseID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *DocumentCreate) SetStoragePath(v string) *DocumentCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DocumentCreate) SetFileExt(v string) *DocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetOcrStatus sets the "ocr_status" field.
func (_c *DocumentCreate) SetOcrStatus(v string) *DocumentCreate {
	_c.mutation.SetOcrStatus(v)
	return _c
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrStatus(*v)
	}
	return _c
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_c *DocumentCreate) SetOcrRetryCount(v int) *DocumentCreate {
	_c.mutation.SetOcrRetryCount(v)
	return _c
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrRetryCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetOcrRetryCount(*v)
	}
	return _c
}

// SetOcrNextRetryAt sets the "ocr_next_retry_at" field.
func (_c *DocumentCreate) SetOcrNextRetryAt(v time.Time) *DocumentCreate {
	_c.mutation.SetOcrNextRetryAt(v)
	return _c
}

// SetNillableOcrNextRetryAt sets the "ocr_next_retry_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrNextRetryAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetOcrNextRetryAt(*v)
	}
	return _c
}

// SetOcrErrorMessage sets the "ocr_error_message" field.
func (_c *DocumentCreate) SetOcrErrorMessage(v string) *DocumentCreate {
	_c.mutation.SetOcrErrorMessage(v)
	return _c
}

// SetNillableOcrErrorMessage sets the "ocr_error_message" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrErrorMessage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrErrorMessage(*v)
	}
	return _c
}

// SetDataAppliedToForms sets the "data_applied_to_forms" field.
func (_c *DocumentCreate) SetDataAppliedToForms(v bool) *DocumentCreate {
	_c.mutation.SetDataAppliedToForms(v)
	return _c
}

// SetNillableDataAppliedToForms sets the "data_applied_to_forms" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDataAppliedToForms(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetDataAppliedToForms(*v)
	}
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *DocumentCreate) SetExtractedFields(v map[string]string) *DocumentCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *DocumentCreate) SetVersion(v int) *DocumentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableVersion(v *int) *DocumentCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DocumentCreate) SetDeletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDeletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the ProcessingLog entity by IDs.
func (_c *DocumentCreate) AddAttemptIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the ProcessingLog entity.
func (_c *DocumentCreate) AddAttempts(v ...*ProcessingLog) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.OcrStatus(); !ok {
		v := document.DefaultOcrStatus
		_c.mutation.SetOcrStatus(v)
	}
	if _, ok := _c.mutation.OcrRetryCount(); !ok {
		v := document.DefaultOcrRetryCount
		_c.mutation.SetOcrRetryCount(v)
	}
	if _, ok := _c.mutation.DataAppliedToForms(); !ok {
		v := document.DefaultDataAppliedToForms
		_c.mutation.SetDataAppliedToForms(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := document.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Document.case_id"`)}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Document.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Document.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrStatus(); !ok {
		return &ValidationError{Name: "ocr_status", err: errors.New(`ent: missing required field "Document.ocr_status"`)}
	}
	if v, ok := _c.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrRetryCount(); !ok {
		return &ValidationError{Name: "ocr_retry_count", err: errors.New(`ent: missing required field "Document.ocr_retry_count"`)}
	}
	if v, ok := _c.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataAppliedToForms(); !ok {
		return &ValidationError{Name: "data_applied_to_forms", err: errors.New(`ent: missing required field "Document.data_applied_to_forms"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Document.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := document.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Document.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(document.FieldCaseID, field.TypeUUID, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
		_node.OcrStatus = value
	}
	if value, ok := _c.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
		_node.OcrRetryCount = value
	}
	if value, ok := _c.mutation.OcrNextRetryAt(); ok {
		_spec.SetField(document.FieldOcrNextRetryAt, field.TypeTime, value)
		_node.OcrNextRetryAt = &value
	}
	if value, ok := _c.mutation.OcrErrorMessage(); ok {
		_spec.SetField(document.FieldOcrErrorMessage, field.TypeString, value)
		_node.OcrErrorMessage = &value
	}
	if value, ok := _c.mutation.DataAppliedToForms(); ok {
		_spec.SetField(document.FieldDataAppliedToForms, field.TypeBool, value)
		_node.DataAppliedToForms = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(document.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(document.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttemptsTable,
			Columns: []string{document.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

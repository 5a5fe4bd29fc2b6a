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

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *DocumentUpdate) SetCaseID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCaseID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdate) SetStoragePath(v string) *DocumentUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStoragePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdate) SetOcrStatus(v string) *DocumentUpdate {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_u *DocumentUpdate) SetOcrRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetOcrRetryCount()
	_u.mutation.SetOcrRetryCount(v)
	return _u
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetOcrRetryCount(*v)
	}
	return _u
}

// AddOcrRetryCount adds value to the "ocr_retry_count" field.
func (_u *DocumentUpdate) AddOcrRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddOcrRetryCount(v)
	return _u
}

// SetOcrNextRetryAt sets the "ocr_next_retry_at" field.
func (_u *DocumentUpdate) SetOcrNextRetryAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetOcrNextRetryAt(v)
	return _u
}

// SetNillableOcrNextRetryAt sets the "ocr_next_retry_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrNextRetryAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetOcrNextRetryAt(*v)
	}
	return _u
}

// ClearOcrNextRetryAt clears the value of the "ocr_next_retry_at" field.
func (_u *DocumentUpdate) ClearOcrNextRetryAt() *DocumentUpdate {
	_u.mutation.ClearOcrNextRetryAt()
	return _u
}

// SetOcrErrorMessage sets the "ocr_error_message" field.
func (_u *DocumentUpdate) SetOcrErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetOcrErrorMessage(v)
	return _u
}

// SetNillableOcrErrorMessage sets the "ocr_error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrErrorMessage(*v)
	}
	return _u
}

// ClearOcrErrorMessage clears the value of the "ocr_error_message" field.
func (_u *DocumentUpdate) ClearOcrErrorMessage() *DocumentUpdate {
	_u.mutation.ClearOcrErrorMessage()
	return _u
}

// SetDataAppliedToForms sets the "data_applied_to_forms" field.
func (_u *DocumentUpdate) SetDataAppliedToForms(v bool) *DocumentUpdate {
	_u.mutation.SetDataAppliedToForms(v)
	return _u
}

// SetNillableDataAppliedToForms sets the "data_applied_to_forms" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDataAppliedToForms(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetDataAppliedToForms(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentUpdate) SetExtractedFields(v map[string]string) *DocumentUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentUpdate) ClearExtractedFields() *DocumentUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetVersion sets the "version" field.
func (_u *DocumentUpdate) SetVersion(v int) *DocumentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVersion(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DocumentUpdate) AddVersion(v int) *DocumentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdate) SetDeletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDeletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdate) ClearDeletedAt() *DocumentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdate) AddAttemptIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) AddAttempts(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) ClearAttempts() *DocumentUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdate) RemoveAttemptIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to ProcessingLog entities.
func (_u *DocumentUpdate) RemoveAttempts(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := document.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Document.version": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(document.FieldCaseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrRetryCount(); ok {
		_spec.AddField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrNextRetryAt(); ok {
		_spec.SetField(document.FieldOcrNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.OcrNextRetryAtCleared() {
		_spec.ClearField(document.FieldOcrNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrErrorMessage(); ok {
		_spec.SetField(document.FieldOcrErrorMessage, field.TypeString, value)
	}
	if _u.mutation.OcrErrorMessageCleared() {
		_spec.ClearField(document.FieldOcrErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DataAppliedToForms(); ok {
		_spec.SetField(document.FieldDataAppliedToForms, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(document.FieldExtractedFields, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(document.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(document.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(document.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetCaseID sets the "case_id" field.
func (_u *DocumentUpdateOne) SetCaseID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCaseID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DocumentUpdateOne) SetStoragePath(v string) *DocumentUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStoragePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdateOne) SetOcrStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_u *DocumentUpdateOne) SetOcrRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetOcrRetryCount()
	_u.mutation.SetOcrRetryCount(v)
	return _u
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrRetryCount(*v)
	}
	return _u
}

// AddOcrRetryCount adds value to the "ocr_retry_count" field.
func (_u *DocumentUpdateOne) AddOcrRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddOcrRetryCount(v)
	return _u
}

// SetOcrNextRetryAt sets the "ocr_next_retry_at" field.
func (_u *DocumentUpdateOne) SetOcrNextRetryAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetOcrNextRetryAt(v)
	return _u
}

// SetNillableOcrNextRetryAt sets the "ocr_next_retry_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrNextRetryAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrNextRetryAt(*v)
	}
	return _u
}

// ClearOcrNextRetryAt clears the value of the "ocr_next_retry_at" field.
func (_u *DocumentUpdateOne) ClearOcrNextRetryAt() *DocumentUpdateOne {
	_u.mutation.ClearOcrNextRetryAt()
	return _u
}

// SetOcrErrorMessage sets the "ocr_error_message" field.
func (_u *DocumentUpdateOne) SetOcrErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrErrorMessage(v)
	return _u
}

// SetNillableOcrErrorMessage sets the "ocr_error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrErrorMessage(*v)
	}
	return _u
}

// ClearOcrErrorMessage clears the value of the "ocr_error_message" field.
func (_u *DocumentUpdateOne) ClearOcrErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearOcrErrorMessage()
	return _u
}

// SetDataAppliedToForms sets the "data_applied_to_forms" field.
func (_u *DocumentUpdateOne) SetDataAppliedToForms(v bool) *DocumentUpdateOne {
	_u.mutation.SetDataAppliedToForms(v)
	return _u
}

// SetNillableDataAppliedToForms sets the "data_applied_to_forms" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDataAppliedToForms(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetDataAppliedToForms(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentUpdateOne) SetExtractedFields(v map[string]string) *DocumentUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentUpdateOne) ClearExtractedFields() *DocumentUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetVersion sets the "version" field.
func (_u *DocumentUpdateOne) SetVersion(v int) *DocumentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVersion(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DocumentUpdateOne) AddVersion(v int) *DocumentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdateOne) SetDeletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDeletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdateOne) ClearDeletedAt() *DocumentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdateOne) AddAttemptIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) AddAttempts(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) ClearAttempts() *DocumentUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdateOne) RemoveAttemptIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to ProcessingLog entities.
func (_u *DocumentUpdateOne) RemoveAttempts(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := document.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Document.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := document.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Document.version": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
		_spec.SetField(document.FieldCaseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(document.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrRetryCount(); ok {
		_spec.AddField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrNextRetryAt(); ok {
		_spec.SetField(document.FieldOcrNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.OcrNextRetryAtCleared() {
		_spec.ClearField(document.FieldOcrNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrErrorMessage(); ok {
		_spec.SetField(document.FieldOcrErrorMessage, field.TypeString, value)
	}
	if _u.mutation.OcrErrorMessageCleared() {
		_spec.ClearField(document.FieldOcrErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DataAppliedToForms(); ok {
		_spec.SetField(document.FieldDataAppliedToForms, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(document.FieldExtractedFields, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(document.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(document.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(document.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

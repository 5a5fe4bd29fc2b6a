// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
	"github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaseForm      = "CaseForm"
	TypeDocument      = "Document"
	TypeProcessingLog = "ProcessingLog"
)

// CaseFormMutation represents an operation that mutates the CaseForm nodes in the graph.
type CaseFormMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	case_id       *uuid.UUID
	fields        *map[string]string
	version       *int
	addversion    *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CaseForm, error)
	predicates    []predicate.CaseForm
}

var _ ent.Mutation = (*CaseFormMutation)(nil)

// caseformOption allows management of the mutation configuration using functional options.
type caseformOption func(*CaseFormMutation)

// newCaseFormMutation creates new mutation for the CaseForm entity.
func newCaseFormMutation(c config, op Op, opts ...caseformOption) *CaseFormMutation {
	m := &CaseFormMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseForm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseFormID sets the ID field of the mutation.
func withCaseFormID(id uuid.UUID) caseformOption {
	return func(m *CaseFormMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseForm
		)
		m.oldValue = func(ctx context.Context) (*CaseForm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseForm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseForm sets the old CaseForm of the mutation.
func withCaseForm(node *CaseForm) caseformOption {
	return func(m *CaseFormMutation) {
		m.oldValue = func(context.Context) (*CaseForm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseFormMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseFormMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseForm entities.
func (m *CaseFormMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseFormMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseFormMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseForm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseFormMutation) SetCaseID(u uuid.UUID) {
	m.case_id = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseFormMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseForm entity.
// If the CaseForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseFormMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseFormMutation) ResetCaseID() {
	m.case_id = nil
}

// SetFields sets the "fields" field.
func (m *CaseFormMutation) SetFields(value map[string]string) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *CaseFormMutation) GetFields() (r map[string]string, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the CaseForm entity.
// If the CaseForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseFormMutation) OldFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ClearFields clears the value of the "fields" field.
func (m *CaseFormMutation) ClearFields() {
	m.fields = nil
	m.clearedFields[caseform.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *CaseFormMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[caseform.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *CaseFormMutation) ResetFields() {
	m.fields = nil
	delete(m.clearedFields, caseform.FieldFields)
}

// SetVersion sets the "version" field.
func (m *CaseFormMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CaseFormMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CaseForm entity.
// If the CaseForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseFormMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CaseFormMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CaseFormMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CaseFormMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseFormMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseFormMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseForm entity.
// If the CaseForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseFormMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseFormMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CaseFormMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CaseFormMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CaseForm entity.
// If the CaseForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseFormMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CaseFormMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CaseFormMutation builder.
func (m *CaseFormMutation) Where(ps ...predicate.CaseForm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseFormMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseFormMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseForm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseFormMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseFormMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseForm).
func (m *CaseFormMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseFormMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.case_id != nil {
		fields = append(fields, caseform.FieldCaseID)
	}
	if m.fields != nil {
		fields = append(fields, caseform.FieldFields)
	}
	if m.version != nil {
		fields = append(fields, caseform.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, caseform.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, caseform.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseFormMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseform.FieldCaseID:
		return m.CaseID()
	case caseform.FieldFields:
		return m.GetFields()
	case caseform.FieldVersion:
		return m.Version()
	case caseform.FieldCreatedAt:
		return m.CreatedAt()
	case caseform.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseFormMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseform.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseform.FieldFields:
		return m.OldFields(ctx)
	case caseform.FieldVersion:
		return m.OldVersion(ctx)
	case caseform.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case caseform.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseForm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseFormMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseform.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseform.FieldFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case caseform.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case caseform.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case caseform.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseForm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseFormMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, caseform.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseFormMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case caseform.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseFormMutation) AddField(name string, value ent.Value) error {
	switch name {
	case caseform.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CaseForm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseFormMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caseform.FieldFields) {
		fields = append(fields, caseform.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseFormMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseFormMutation) ClearField(name string) error {
	switch name {
	case caseform.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown CaseForm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseFormMutation) ResetField(name string) error {
	switch name {
	case caseform.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseform.FieldFields:
		m.ResetFields()
		return nil
	case caseform.FieldVersion:
		m.ResetVersion()
		return nil
	case caseform.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case caseform.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaseForm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseFormMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseFormMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseFormMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseFormMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseFormMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseFormMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseFormMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CaseForm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseFormMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CaseForm edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	case_id               *uuid.UUID
	storage_path          *string
	filename              *string
	file_ext              *string
	ocr_status            *string
	ocr_retry_count       *int
	addocr_retry_count    *int
	ocr_next_retry_at     *time.Time
	ocr_error_message     *string
	data_applied_to_forms *bool
	extracted_fields      *map[string]string
	version               *int
	addversion            *int
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	attempts              map[uuid.UUID]struct{}
	removedattempts       map[uuid.UUID]struct{}
	clearedattempts       bool
	done                  bool
	oldValue              func(context.Context) (*Document, error)
	predicates            []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *DocumentMutation) SetCaseID(u uuid.UUID) {
	m.case_id = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *DocumentMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *DocumentMutation) ResetCaseID() {
	m.case_id = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetOcrStatus sets the "ocr_status" field.
func (m *DocumentMutation) SetOcrStatus(s string) {
	m.ocr_status = &s
}

// OcrStatus returns the value of the "ocr_status" field in the mutation.
func (m *DocumentMutation) OcrStatus() (r string, exists bool) {
	v := m.ocr_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrStatus returns the old "ocr_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrStatus: %w", err)
	}
	return oldValue.OcrStatus, nil
}

// ResetOcrStatus resets all changes to the "ocr_status" field.
func (m *DocumentMutation) ResetOcrStatus() {
	m.ocr_status = nil
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (m *DocumentMutation) SetOcrRetryCount(i int) {
	m.ocr_retry_count = &i
	m.addocr_retry_count = nil
}

// OcrRetryCount returns the value of the "ocr_retry_count" field in the mutation.
func (m *DocumentMutation) OcrRetryCount() (r int, exists bool) {
	v := m.ocr_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRetryCount returns the old "ocr_retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRetryCount: %w", err)
	}
	return oldValue.OcrRetryCount, nil
}

// AddOcrRetryCount adds i to the "ocr_retry_count" field.
func (m *DocumentMutation) AddOcrRetryCount(i int) {
	if m.addocr_retry_count != nil {
		*m.addocr_retry_count += i
	} else {
		m.addocr_retry_count = &i
	}
}

// AddedOcrRetryCount returns the value that was added to the "ocr_retry_count" field in this mutation.
func (m *DocumentMutation) AddedOcrRetryCount() (r int, exists bool) {
	v := m.addocr_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOcrRetryCount resets all changes to the "ocr_retry_count" field.
func (m *DocumentMutation) ResetOcrRetryCount() {
	m.ocr_retry_count = nil
	m.addocr_retry_count = nil
}

// SetOcrNextRetryAt sets the "ocr_next_retry_at" field.
func (m *DocumentMutation) SetOcrNextRetryAt(t time.Time) {
	m.ocr_next_retry_at = &t
}

// OcrNextRetryAt returns the value of the "ocr_next_retry_at" field in the mutation.
func (m *DocumentMutation) OcrNextRetryAt() (r time.Time, exists bool) {
	v := m.ocr_next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrNextRetryAt returns the old "ocr_next_retry_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrNextRetryAt: %w", err)
	}
	return oldValue.OcrNextRetryAt, nil
}

// ClearOcrNextRetryAt clears the value of the "ocr_next_retry_at" field.
func (m *DocumentMutation) ClearOcrNextRetryAt() {
	m.ocr_next_retry_at = nil
	m.clearedFields[document.FieldOcrNextRetryAt] = struct{}{}
}

// OcrNextRetryAtCleared returns if the "ocr_next_retry_at" field was cleared in this mutation.
func (m *DocumentMutation) OcrNextRetryAtCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrNextRetryAt]
	return ok
}

// ResetOcrNextRetryAt resets all changes to the "ocr_next_retry_at" field.
func (m *DocumentMutation) ResetOcrNextRetryAt() {
	m.ocr_next_retry_at = nil
	delete(m.clearedFields, document.FieldOcrNextRetryAt)
}

// SetOcrErrorMessage sets the "ocr_error_message" field.
func (m *DocumentMutation) SetOcrErrorMessage(s string) {
	m.ocr_error_message = &s
}

// OcrErrorMessage returns the value of the "ocr_error_message" field in the mutation.
func (m *DocumentMutation) OcrErrorMessage() (r string, exists bool) {
	v := m.ocr_error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrErrorMessage returns the old "ocr_error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrErrorMessage: %w", err)
	}
	return oldValue.OcrErrorMessage, nil
}

// ClearOcrErrorMessage clears the value of the "ocr_error_message" field.
func (m *DocumentMutation) ClearOcrErrorMessage() {
	m.ocr_error_message = nil
	m.clearedFields[document.FieldOcrErrorMessage] = struct{}{}
}

// OcrErrorMessageCleared returns if the "ocr_error_message" field was cleared in this mutation.
func (m *DocumentMutation) OcrErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrErrorMessage]
	return ok
}

// ResetOcrErrorMessage resets all changes to the "ocr_error_message" field.
func (m *DocumentMutation) ResetOcrErrorMessage() {
	m.ocr_error_message = nil
	delete(m.clearedFields, document.FieldOcrErrorMessage)
}

// SetDataAppliedToForms sets the "data_applied_to_forms" field.
func (m *DocumentMutation) SetDataAppliedToForms(b bool) {
	m.data_applied_to_forms = &b
}

// DataAppliedToForms returns the value of the "data_applied_to_forms" field in the mutation.
func (m *DocumentMutation) DataAppliedToForms() (r bool, exists bool) {
	v := m.data_applied_to_forms
	if v == nil {
		return
	}
	return *v, true
}

// OldDataAppliedToForms returns the old "data_applied_to_forms" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDataAppliedToForms(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataAppliedToForms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataAppliedToForms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataAppliedToForms: %w", err)
	}
	return oldValue.DataAppliedToForms, nil
}

// ResetDataAppliedToForms resets all changes to the "data_applied_to_forms" field.
func (m *DocumentMutation) ResetDataAppliedToForms() {
	m.data_applied_to_forms = nil
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *DocumentMutation) SetExtractedFields(value map[string]string) {
	m.extracted_fields = &value
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *DocumentMutation) ExtractedFields() (r map[string]string, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *DocumentMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.clearedFields[document.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *DocumentMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	delete(m.clearedFields, document.FieldExtractedFields)
}

// SetVersion sets the "version" field.
func (m *DocumentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *DocumentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *DocumentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *DocumentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *DocumentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DocumentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DocumentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DocumentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[document.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DocumentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DocumentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, document.FieldDeletedAt)
}

// AddAttemptIDs adds the "attempts" edge to the ProcessingLog entity by ids.
func (m *DocumentMutation) AddAttemptIDs(ids ...uuid.UUID) {
	if m.attempts == nil {
		m.attempts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the ProcessingLog entity.
func (m *DocumentMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the ProcessingLog entity was cleared.
func (m *DocumentMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the ProcessingLog entity by IDs.
func (m *DocumentMutation) RemoveAttemptIDs(ids ...uuid.UUID) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the ProcessingLog entity.
func (m *DocumentMutation) RemovedAttemptsIDs() (ids []uuid.UUID) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *DocumentMutation) AttemptsIDs() (ids []uuid.UUID) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *DocumentMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.case_id != nil {
		fields = append(fields, document.FieldCaseID)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.ocr_status != nil {
		fields = append(fields, document.FieldOcrStatus)
	}
	if m.ocr_retry_count != nil {
		fields = append(fields, document.FieldOcrRetryCount)
	}
	if m.ocr_next_retry_at != nil {
		fields = append(fields, document.FieldOcrNextRetryAt)
	}
	if m.ocr_error_message != nil {
		fields = append(fields, document.FieldOcrErrorMessage)
	}
	if m.data_applied_to_forms != nil {
		fields = append(fields, document.FieldDataAppliedToForms)
	}
	if m.extracted_fields != nil {
		fields = append(fields, document.FieldExtractedFields)
	}
	if m.version != nil {
		fields = append(fields, document.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, document.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCaseID:
		return m.CaseID()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldOcrStatus:
		return m.OcrStatus()
	case document.FieldOcrRetryCount:
		return m.OcrRetryCount()
	case document.FieldOcrNextRetryAt:
		return m.OcrNextRetryAt()
	case document.FieldOcrErrorMessage:
		return m.OcrErrorMessage()
	case document.FieldDataAppliedToForms:
		return m.DataAppliedToForms()
	case document.FieldExtractedFields:
		return m.ExtractedFields()
	case document.FieldVersion:
		return m.Version()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCaseID:
		return m.OldCaseID(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldOcrStatus:
		return m.OldOcrStatus(ctx)
	case document.FieldOcrRetryCount:
		return m.OldOcrRetryCount(ctx)
	case document.FieldOcrNextRetryAt:
		return m.OldOcrNextRetryAt(ctx)
	case document.FieldOcrErrorMessage:
		return m.OldOcrErrorMessage(ctx)
	case document.FieldDataAppliedToForms:
		return m.OldDataAppliedToForms(ctx)
	case document.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case document.FieldVersion:
		return m.OldVersion(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldOcrStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrStatus(v)
		return nil
	case document.FieldOcrRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRetryCount(v)
		return nil
	case document.FieldOcrNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrNextRetryAt(v)
		return nil
	case document.FieldOcrErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrErrorMessage(v)
		return nil
	case document.FieldDataAppliedToForms:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataAppliedToForms(v)
		return nil
	case document.FieldExtractedFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addocr_retry_count != nil {
		fields = append(fields, document.FieldOcrRetryCount)
	}
	if m.addversion != nil {
		fields = append(fields, document.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOcrRetryCount:
		return m.AddedOcrRetryCount()
	case document.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldOcrRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrRetryCount(v)
		return nil
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldOcrNextRetryAt) {
		fields = append(fields, document.FieldOcrNextRetryAt)
	}
	if m.FieldCleared(document.FieldOcrErrorMessage) {
		fields = append(fields, document.FieldOcrErrorMessage)
	}
	if m.FieldCleared(document.FieldExtractedFields) {
		fields = append(fields, document.FieldExtractedFields)
	}
	if m.FieldCleared(document.FieldDeletedAt) {
		fields = append(fields, document.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldOcrNextRetryAt:
		m.ClearOcrNextRetryAt()
		return nil
	case document.FieldOcrErrorMessage:
		m.ClearOcrErrorMessage()
		return nil
	case document.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case document.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCaseID:
		m.ResetCaseID()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldOcrStatus:
		m.ResetOcrStatus()
		return nil
	case document.FieldOcrRetryCount:
		m.ResetOcrRetryCount()
		return nil
	case document.FieldOcrNextRetryAt:
		m.ResetOcrNextRetryAt()
		return nil
	case document.FieldOcrErrorMessage:
		m.ResetOcrErrorMessage()
		return nil
	case document.FieldDataAppliedToForms:
		m.ResetDataAppliedToForms()
		return nil
	case document.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case document.FieldVersion:
		m.ResetVersion()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, document.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, document.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, document.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	attempt         *int
	addattempt      *int
	phase           *string
	outcome         *string
	error_message   *string
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ProcessingLog, error)
	predicates      []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id uuid.UUID) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingLog entities.
func (m *ProcessingLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingLogMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingLogMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingLogMutation) ResetDocumentID() {
	m.document = nil
}

// SetAttempt sets the "attempt" field.
func (m *ProcessingLogMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *ProcessingLogMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *ProcessingLogMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *ProcessingLogMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *ProcessingLogMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetPhase sets the "phase" field.
func (m *ProcessingLogMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ProcessingLogMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *ProcessingLogMutation) ResetPhase() {
	m.phase = nil
}

// SetOutcome sets the "outcome" field.
func (m *ProcessingLogMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ProcessingLogMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ProcessingLogMutation) ResetOutcome() {
	m.outcome = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processinglog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processinglog.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ProcessingLogMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ProcessingLogMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ProcessingLogMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[processinglog.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ProcessingLogMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ProcessingLogMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, processinglog.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ProcessingLogMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processinglog.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ProcessingLogMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessingLogMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessingLogMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document != nil {
		fields = append(fields, processinglog.FieldDocumentID)
	}
	if m.attempt != nil {
		fields = append(fields, processinglog.FieldAttempt)
	}
	if m.phase != nil {
		fields = append(fields, processinglog.FieldPhase)
	}
	if m.outcome != nil {
		fields = append(fields, processinglog.FieldOutcome)
	}
	if m.error_message != nil {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, processinglog.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, processinglog.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.DocumentID()
	case processinglog.FieldAttempt:
		return m.Attempt()
	case processinglog.FieldPhase:
		return m.Phase()
	case processinglog.FieldOutcome:
		return m.Outcome()
	case processinglog.FieldErrorMessage:
		return m.ErrorMessage()
	case processinglog.FieldStartedAt:
		return m.StartedAt()
	case processinglog.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processinglog.FieldAttempt:
		return m.OldAttempt(ctx)
	case processinglog.FieldPhase:
		return m.OldPhase(ctx)
	case processinglog.FieldOutcome:
		return m.OldOutcome(ctx)
	case processinglog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processinglog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processinglog.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processinglog.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case processinglog.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case processinglog.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case processinglog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processinglog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processinglog.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, processinglog.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldErrorMessage) {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.FieldCleared(processinglog.FieldFinishedAt) {
		fields = append(fields, processinglog.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processinglog.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processinglog.FieldAttempt:
		m.ResetAttempt()
		return nil
	case processinglog.FieldPhase:
		m.ResetPhase()
		return nil
	case processinglog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case processinglog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processinglog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processinglog.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processinglog.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	switch name {
	case processinglog.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}

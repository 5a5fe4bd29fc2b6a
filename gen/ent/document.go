// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID uuid.UUID `json:"case_id,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// OcrStatus holds the value of the "ocr_status" field.
	OcrStatus string `json:"ocr_status,omitempty"`
	// OcrRetryCount holds the value of the "ocr_retry_count" field.
	OcrRetryCount int `json:"ocr_retry_count,omitempty"`
	// OcrNextRetryAt holds the value of the "ocr_next_retry_at" field.
	OcrNextRetryAt *time.Time `json:"ocr_next_retry_at,omitempty"`
	// OcrErrorMessage holds the value of the "ocr_error_message" field.
	OcrErrorMessage *string `json:"ocr_error_message,omitempty"`
	// DataAppliedToForms holds the value of the "data_applied_to_forms" field.
	DataAppliedToForms bool `json:"data_applied_to_forms,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields map[string]string `json:"extracted_fields,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Attempts holds the value of the attempts edge.
	Attempts []*ProcessingLog `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) AttemptsOrErr() ([]*ProcessingLog, error) {
	if e.loadedTypes[0] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldExtractedFields:
			values[i] = new([]byte)
		case document.FieldDataAppliedToForms:
			values[i] = new(sql.NullBool)
		case document.FieldOcrRetryCount, document.FieldVersion:
			values[i] = new(sql.NullInt64)
		case document.FieldStoragePath, document.FieldFilename, document.FieldFileExt, document.FieldOcrStatus, document.FieldOcrErrorMessage:
			values[i] = new(sql.NullString)
		case document.FieldOcrNextRetryAt, document.FieldCreatedAt, document.FieldUpdatedAt, document.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldCaseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldCaseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value != nil {
				_m.CaseID = *value
			}
		case document.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case document.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case document.FieldOcrStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_status", values[i])
			} else if value.Valid {
				_m.OcrStatus = value.String
			}
		case document.FieldOcrRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_retry_count", values[i])
			} else if value.Valid {
				_m.OcrRetryCount = int(value.Int64)
			}
		case document.FieldOcrNextRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_next_retry_at", values[i])
			} else if value.Valid {
				_m.OcrNextRetryAt = new(time.Time)
				*_m.OcrNextRetryAt = value.Time
			}
		case document.FieldOcrErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_error_message", values[i])
			} else if value.Valid {
				_m.OcrErrorMessage = new(string)
				*_m.OcrErrorMessage = value.String
			}
		case document.FieldDataAppliedToForms:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field data_applied_to_forms", values[i])
			} else if value.Valid {
				_m.DataAppliedToForms = value.Bool
			}
		case document.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case document.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case document.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempts queries the "attempts" edge of the Document entity.
func (_m *Document) QueryAttempts() *ProcessingLogQuery {
	return NewDocumentClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaseID))
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("ocr_status=")
	builder.WriteString(_m.OcrStatus)
	builder.WriteString(", ")
	builder.WriteString("ocr_retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrRetryCount))
	builder.WriteString(", ")
	if v := _m.OcrNextRetryAt; v != nil {
		builder.WriteString("ocr_next_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OcrErrorMessage; v != nil {
		builder.WriteString("ocr_error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("data_applied_to_forms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataAppliedToForms))
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document

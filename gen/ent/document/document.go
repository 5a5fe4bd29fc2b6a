// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFileExt holds the string denoting the file_ext field in the database.
	FieldFileExt = "file_ext"
	// FieldOcrStatus holds the string denoting the ocr_status field in the database.
	FieldOcrStatus = "ocr_status"
	// FieldOcrRetryCount holds the string denoting the ocr_retry_count field in the database.
	FieldOcrRetryCount = "ocr_retry_count"
	// FieldOcrNextRetryAt holds the string denoting the ocr_next_retry_at field in the database.
	FieldOcrNextRetryAt = "ocr_next_retry_at"
	// FieldOcrErrorMessage holds the string denoting the ocr_error_message field in the database.
	FieldOcrErrorMessage = "ocr_error_message"
	// FieldDataAppliedToForms holds the string denoting the data_applied_to_forms field in the database.
	FieldDataAppliedToForms = "data_applied_to_forms"
	// FieldExtractedFields holds the string denoting the extracted_fields field in the database.
	FieldExtractedFields = "extracted_fields"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "processing_log"
	// AttemptsInverseTable is the table name for the ProcessingLog entity.
	// It exists in this package in order to avoid circular dependency with the "processinglog" package.
	AttemptsInverseTable = "processing_log"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldStoragePath,
	FieldFilename,
	FieldFileExt,
	FieldOcrStatus,
	FieldOcrRetryCount,
	FieldOcrNextRetryAt,
	FieldOcrErrorMessage,
	FieldDataAppliedToForms,
	FieldExtractedFields,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	StoragePathValidator func(string) error
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	FileExtValidator func(string) error
	// DefaultOcrStatus holds the default value on creation for the "ocr_status" field.
	DefaultOcrStatus string
	// OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	OcrStatusValidator func(string) error
	// DefaultOcrRetryCount holds the default value on creation for the "ocr_retry_count" field.
	DefaultOcrRetryCount int
	// OcrRetryCountValidator is a validator for the "ocr_retry_count" field. It is called by the builders before save.
	OcrRetryCountValidator func(int) error
	// DefaultDataAppliedToForms holds the default value on creation for the "data_applied_to_forms" field.
	DefaultDataAppliedToForms bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileExt orders the results by the file_ext field.
func ByFileExt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExt, opts...).ToFunc()
}

// ByOcrStatus orders the results by the ocr_status field.
func ByOcrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrStatus, opts...).ToFunc()
}

// ByOcrRetryCount orders the results by the ocr_retry_count field.
func ByOcrRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrRetryCount, opts...).ToFunc()
}

// ByOcrNextRetryAt orders the results by the ocr_next_retry_at field.
func ByOcrNextRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrNextRetryAt, opts...).ToFunc()
}

// ByOcrErrorMessage orders the results by the ocr_error_message field.
func ByOcrErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrErrorMessage, opts...).ToFunc()
}

// ByDataAppliedToForms orders the results by the data_applied_to_forms field.
func ByDataAppliedToForms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataAppliedToForms, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}

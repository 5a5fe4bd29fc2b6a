// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCaseID, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// OcrStatus applies equality check predicate on the "ocr_status" field. It's identical to OcrStatusEQ.
func OcrStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrRetryCount applies equality check predicate on the "ocr_retry_count" field. It's identical to OcrRetryCountEQ.
func OcrRetryCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrRetryCount, v))
}

// OcrNextRetryAt applies equality check predicate on the "ocr_next_retry_at" field. It's identical to OcrNextRetryAtEQ.
func OcrNextRetryAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrNextRetryAt, v))
}

// OcrErrorMessage applies equality check predicate on the "ocr_error_message" field. It's identical to OcrErrorMessageEQ.
func OcrErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrErrorMessage, v))
}

// DataAppliedToForms applies equality check predicate on the "data_applied_to_forms" field. It's identical to DataAppliedToFormsEQ.
func DataAppliedToForms(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDataAppliedToForms, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCaseID, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoragePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// OcrStatusEQ applies the EQ predicate on the "ocr_status" field.
func OcrStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrStatusNEQ applies the NEQ predicate on the "ocr_status" field.
func OcrStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrStatus, v))
}

// OcrStatusIn applies the In predicate on the "ocr_status" field.
func OcrStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrStatus, vs...))
}

// OcrStatusNotIn applies the NotIn predicate on the "ocr_status" field.
func OcrStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrStatus, vs...))
}

// OcrStatusGT applies the GT predicate on the "ocr_status" field.
func OcrStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrStatus, v))
}

// OcrStatusGTE applies the GTE predicate on the "ocr_status" field.
func OcrStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrStatus, v))
}

// OcrStatusLT applies the LT predicate on the "ocr_status" field.
func OcrStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrStatus, v))
}

// OcrStatusLTE applies the LTE predicate on the "ocr_status" field.
func OcrStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrStatus, v))
}

// OcrStatusContains applies the Contains predicate on the "ocr_status" field.
func OcrStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrStatus, v))
}

// OcrStatusHasPrefix applies the HasPrefix predicate on the "ocr_status" field.
func OcrStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrStatus, v))
}

// OcrStatusHasSuffix applies the HasSuffix predicate on the "ocr_status" field.
func OcrStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrStatus, v))
}

// OcrStatusEqualFold applies the EqualFold predicate on the "ocr_status" field.
func OcrStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrStatus, v))
}

// OcrStatusContainsFold applies the ContainsFold predicate on the "ocr_status" field.
func OcrStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrStatus, v))
}

// OcrRetryCountEQ applies the EQ predicate on the "ocr_retry_count" field.
func OcrRetryCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrRetryCount, v))
}

// OcrRetryCountNEQ applies the NEQ predicate on the "ocr_retry_count" field.
func OcrRetryCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrRetryCount, v))
}

// OcrRetryCountIn applies the In predicate on the "ocr_retry_count" field.
func OcrRetryCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrRetryCount, vs...))
}

// OcrRetryCountNotIn applies the NotIn predicate on the "ocr_retry_count" field.
func OcrRetryCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrRetryCount, vs...))
}

// OcrRetryCountGT applies the GT predicate on the "ocr_retry_count" field.
func OcrRetryCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrRetryCount, v))
}

// OcrRetryCountGTE applies the GTE predicate on the "ocr_retry_count" field.
func OcrRetryCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrRetryCount, v))
}

// OcrRetryCountLT applies the LT predicate on the "ocr_retry_count" field.
func OcrRetryCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrRetryCount, v))
}

// OcrRetryCountLTE applies the LTE predicate on the "ocr_retry_count" field.
func OcrRetryCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrRetryCount, v))
}

// OcrNextRetryAtEQ applies the EQ predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtNEQ applies the NEQ predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtIn applies the In predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrNextRetryAt, vs...))
}

// OcrNextRetryAtNotIn applies the NotIn predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrNextRetryAt, vs...))
}

// OcrNextRetryAtGT applies the GT predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtGTE applies the GTE predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtLT applies the LT predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtLTE applies the LTE predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrNextRetryAt, v))
}

// OcrNextRetryAtIsNil applies the IsNil predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrNextRetryAt))
}

// OcrNextRetryAtNotNil applies the NotNil predicate on the "ocr_next_retry_at" field.
func OcrNextRetryAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrNextRetryAt))
}

// OcrErrorMessageEQ applies the EQ predicate on the "ocr_error_message" field.
func OcrErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrErrorMessage, v))
}

// OcrErrorMessageNEQ applies the NEQ predicate on the "ocr_error_message" field.
func OcrErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrErrorMessage, v))
}

// OcrErrorMessageIn applies the In predicate on the "ocr_error_message" field.
func OcrErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrErrorMessage, vs...))
}

// OcrErrorMessageNotIn applies the NotIn predicate on the "ocr_error_message" field.
func OcrErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrErrorMessage, vs...))
}

// OcrErrorMessageGT applies the GT predicate on the "ocr_error_message" field.
func OcrErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrErrorMessage, v))
}

// OcrErrorMessageGTE applies the GTE predicate on the "ocr_error_message" field.
func OcrErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrErrorMessage, v))
}

// OcrErrorMessageLT applies the LT predicate on the "ocr_error_message" field.
func OcrErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrErrorMessage, v))
}

// OcrErrorMessageLTE applies the LTE predicate on the "ocr_error_message" field.
func OcrErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrErrorMessage, v))
}

// OcrErrorMessageContains applies the Contains predicate on the "ocr_error_message" field.
func OcrErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrErrorMessage, v))
}

// OcrErrorMessageHasPrefix applies the HasPrefix predicate on the "ocr_error_message" field.
func OcrErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrErrorMessage, v))
}

// OcrErrorMessageHasSuffix applies the HasSuffix predicate on the "ocr_error_message" field.
func OcrErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrErrorMessage, v))
}

// OcrErrorMessageIsNil applies the IsNil predicate on the "ocr_error_message" field.
func OcrErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrErrorMessage))
}

// OcrErrorMessageNotNil applies the NotNil predicate on the "ocr_error_message" field.
func OcrErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrErrorMessage))
}

// OcrErrorMessageEqualFold applies the EqualFold predicate on the "ocr_error_message" field.
func OcrErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrErrorMessage, v))
}

// OcrErrorMessageContainsFold applies the ContainsFold predicate on the "ocr_error_message" field.
func OcrErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrErrorMessage, v))
}

// DataAppliedToFormsEQ applies the EQ predicate on the "data_applied_to_forms" field.
func DataAppliedToFormsEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDataAppliedToForms, v))
}

// DataAppliedToFormsNEQ applies the NEQ predicate on the "data_applied_to_forms" field.
func DataAppliedToFormsNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDataAppliedToForms, v))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedFields))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDeletedAt))
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.ProcessingLog) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}

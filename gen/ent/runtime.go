// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/db/ent/schema"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	caseformFields := schema.CaseForm{}.Fields()
	_ = caseformFields
	// caseformDescVersion is the schema descriptor for version field.
	caseformDescVersion := caseformFields[3].Descriptor()
	// caseform.DefaultVersion holds the default value on creation for the version field.
	caseform.DefaultVersion = caseformDescVersion.Default.(int)
	// caseform.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	caseform.VersionValidator = caseformDescVersion.Validators[0].(func(int) error)
	// caseformDescCreatedAt is the schema descriptor for created_at field.
	caseformDescCreatedAt := caseformFields[4].Descriptor()
	// caseform.DefaultCreatedAt holds the default value on creation for the created_at field.
	caseform.DefaultCreatedAt = caseformDescCreatedAt.Default.(func() time.Time)
	// caseformDescUpdatedAt is the schema descriptor for updated_at field.
	caseformDescUpdatedAt := caseformFields[5].Descriptor()
	// caseform.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	caseform.DefaultUpdatedAt = caseformDescUpdatedAt.Default.(func() time.Time)
	// caseform.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	caseform.UpdateDefaultUpdatedAt = caseformDescUpdatedAt.UpdateDefault.(func() time.Time)
	// caseformDescID is the schema descriptor for id field.
	caseformDescID := caseformFields[0].Descriptor()
	// caseform.DefaultID holds the default value on creation for the id field.
	caseform.DefaultID = caseformDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[2].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescOcrStatus is the schema descriptor for ocr_status field.
	documentDescOcrStatus := documentFields[5].Descriptor()
	// document.DefaultOcrStatus holds the default value on creation for the ocr_status field.
	document.DefaultOcrStatus = documentDescOcrStatus.Default.(string)
	// document.OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	document.OcrStatusValidator = documentDescOcrStatus.Validators[0].(func(string) error)
	// documentDescOcrRetryCount is the schema descriptor for ocr_retry_count field.
	documentDescOcrRetryCount := documentFields[6].Descriptor()
	// document.DefaultOcrRetryCount holds the default value on creation for the ocr_retry_count field.
	document.DefaultOcrRetryCount = documentDescOcrRetryCount.Default.(int)
	// document.OcrRetryCountValidator is a validator for the "ocr_retry_count" field. It is called by the builders before save.
	document.OcrRetryCountValidator = documentDescOcrRetryCount.Validators[0].(func(int) error)
	// documentDescDataAppliedToForms is the schema descriptor for data_applied_to_forms field.
	documentDescDataAppliedToForms := documentFields[9].Descriptor()
	// document.DefaultDataAppliedToForms holds the default value on creation for the data_applied_to_forms field.
	document.DefaultDataAppliedToForms = documentDescDataAppliedToForms.Default.(bool)
	// documentDescVersion is the schema descriptor for version field.
	documentDescVersion := documentFields[11].Descriptor()
	// document.DefaultVersion holds the default value on creation for the version field.
	document.DefaultVersion = documentDescVersion.Default.(int)
	// document.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	document.VersionValidator = documentDescVersion.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[12].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[13].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescAttempt is the schema descriptor for attempt field.
	processinglogDescAttempt := processinglogFields[2].Descriptor()
	// processinglog.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	processinglog.AttemptValidator = processinglogDescAttempt.Validators[0].(func(int) error)
	// processinglogDescPhase is the schema descriptor for phase field.
	processinglogDescPhase := processinglogFields[3].Descriptor()
	// processinglog.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	processinglog.PhaseValidator = processinglogDescPhase.Validators[0].(func(string) error)
	// processinglogDescOutcome is the schema descriptor for outcome field.
	processinglogDescOutcome := processinglogFields[4].Descriptor()
	// processinglog.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	processinglog.OutcomeValidator = processinglogDescOutcome.Validators[0].(func(string) error)
	// processinglogDescStartedAt is the schema descriptor for started_at field.
	processinglogDescStartedAt := processinglogFields[6].Descriptor()
	// processinglog.DefaultStartedAt holds the default value on creation for the started_at field.
	processinglog.DefaultStartedAt = processinglogDescStartedAt.Default.(func() time.Time)
	// processinglogDescID is the schema descriptor for id field.
	processinglogDescID := processinglogFields[0].Descriptor()
	// processinglog.DefaultID holds the default value on creation for the id field.
	processinglog.DefaultID = processinglogDescID.Default.(func() uuid.UUID)
}

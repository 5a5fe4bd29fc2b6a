// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaseFormsColumns holds the columns for the "case_forms" table.
	CaseFormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeUUID, Unique: true},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CaseFormsTable holds the schema information for the "case_forms" table.
	CaseFormsTable = &schema.Table{
		Name:       "case_forms",
		Columns:    CaseFormsColumns,
		PrimaryKey: []*schema.Column{CaseFormsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caseform_case_id",
				Unique:  true,
				Columns: []*schema.Column{CaseFormsColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeUUID},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "ocr_status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_retry_count", Type: field.TypeInt, Default: 0},
		{Name: "ocr_next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "ocr_error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "data_applied_to_forms", Type: field.TypeBool, Default: false},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_ocr_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5], DocumentsColumns[13]},
			},
			{
				Name:    "document_ocr_status_ocr_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5], DocumentsColumns[7]},
			},
			{
				Name:    "document_case_id_ocr_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[5]},
			},
		},
	}
	// ProcessingLogColumns holds the columns for the "processing_log" table.
	ProcessingLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessingLogTable holds the schema information for the "processing_log" table.
	ProcessingLogTable = &schema.Table{
		Name:       "processing_log",
		Columns:    ProcessingLogColumns,
		PrimaryKey: []*schema.Column{ProcessingLogColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_log_documents_attempts",
				Columns:    []*schema.Column{ProcessingLogColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_document_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogColumns[7], ProcessingLogColumns[5]},
			},
			{
				Name:    "processinglog_outcome_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogColumns[3], ProcessingLogColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaseFormsTable,
		DocumentsTable,
		ProcessingLogTable,
	}
)

func init() {
	CaseFormsTable.Annotation = &entsql.Annotation{
		Table: "case_forms",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessingLogTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessingLogTable.Annotation = &entsql.Annotation{
		Table: "processing_log",
	}
}

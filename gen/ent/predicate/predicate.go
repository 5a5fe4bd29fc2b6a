// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaseForm is the predicate function for caseform builders.
type CaseForm func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)

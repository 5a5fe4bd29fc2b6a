// Code generated by ent, DO NOT EDIT.

package caseform

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldCaseID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v uuid.UUID) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLTE(FieldCaseID, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotNull(FieldFields))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CaseForm {
	return predicate.CaseForm(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseForm) predicate.CaseForm {
	return predicate.CaseForm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseForm) predicate.CaseForm {
	return predicate.CaseForm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseForm) predicate.CaseForm {
	return predicate.CaseForm(sql.NotPredicates(p))
}

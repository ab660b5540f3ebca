// Package compat classifies how breaking a single schema change is.
package compat

import (
	"github.com/contractgate/contractgate/internal/domain"
)

// Classify compares the old snapshot of a schema file against its new
// document and returns the change severity.
//
// The rules, in evaluation order:
//   - file absent at the old revision: minor. A brand-new contract surface
//     is additive, but consumers still have to learn about it.
//   - a property removed from the new document: major, required or not.
//   - a shared property whose shape changed: major, unless the only change
//     is enum widening (both sides declare an enum, the new set contains
//     every old member, and the new list is at least as long).
//   - a field required in the new document but not in the old: major.
//   - properties only added, none of them newly required: minor.
//   - nothing above fired: patch.
//
// Severities only escalate during the scan, so short-circuiting on the
// first major signal cannot change the result.
func Classify(old domain.Snapshot, doc domain.Document) domain.Severity {
	if !old.Present {
		return domain.SeverityMinor
	}

	oldProps := old.Doc.Properties
	newProps := doc.Properties

	for name := range oldProps {
		if _, ok := newProps[name]; !ok {
			return domain.SeverityMajor
		}
	}

	for name, oldField := range oldProps {
		newField := newProps[name]
		if oldField.Equal(newField) {
			continue
		}
		if isEnumWidening(oldField, newField) {
			continue
		}
		return domain.SeverityMajor
	}

	oldRequired := domain.StringSet(old.Doc.Required)
	for _, name := range doc.Required {
		if !oldRequired[name] {
			return domain.SeverityMajor
		}
	}

	for name := range newProps {
		if _, ok := oldProps[name]; !ok {
			// Newly-required additions were already caught above, so any
			// addition reaching this point is an optional capability.
			return domain.SeverityMinor
		}
	}

	return domain.SeverityPatch
}

// isEnumWidening reports whether the only difference between two field
// schemas is a widened enum: every old literal kept, new literals allowed.
// The length check is implied by the superset check; it stays as
// documentation of intent.
func isEnumWidening(oldField, newField *domain.FieldSchema) bool {
	if oldField == nil || newField == nil {
		return false
	}
	if len(oldField.Enum) == 0 || len(newField.Enum) == 0 {
		return false
	}
	if !oldField.EqualIgnoringEnum(newField) {
		return false
	}
	if len(newField.Enum) < len(oldField.Enum) {
		return false
	}
	newSet := domain.EnumSet(newField.Enum)
	for _, v := range oldField.Enum {
		if !newSet[domain.EnumKey(v)] {
			return false
		}
	}
	return true
}

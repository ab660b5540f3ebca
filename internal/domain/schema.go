package domain

import "encoding/json"

// Document is the tracked shape of one contract schema file: a property map
// and a required set. Absent `properties`/`required` in the source JSON
// decode to empty collections, never an error.
type Document struct {
	Properties map[string]*FieldSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

// FieldSchema is the recursive structural value describing one field: either
// an object with nested properties or a leaf with an optional closed enum.
// Keys outside the tracked dimensions are ignored on decode.
type FieldSchema struct {
	Type       string                  `json:"type,omitempty"`
	Format     string                  `json:"format,omitempty"`
	Enum       []any                   `json:"enum,omitempty"`
	Properties map[string]*FieldSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
	Items      *FieldSchema            `json:"items,omitempty"`
}

// Snapshot holds a document retrieved from a revision. Present distinguishes
// "file absent at that revision" from "present but empty document".
type Snapshot struct {
	Doc     Document
	Present bool
}

// AbsentSnapshot marks a file that did not exist at the old revision.
func AbsentSnapshot() Snapshot {
	return Snapshot{}
}

// PresentSnapshot wraps a document that existed at the old revision.
func PresentSnapshot(doc Document) Snapshot {
	return Snapshot{Doc: doc, Present: true}
}

// Equal reports deep structural equality of two field schemas.
func (f *FieldSchema) Equal(other *FieldSchema) bool {
	if f == nil || other == nil {
		return f == nil && other == nil
	}
	if f.Type != other.Type || f.Format != other.Format {
		return false
	}
	if !equalEnums(f.Enum, other.Enum) {
		return false
	}
	if !equalStringSets(f.Required, other.Required) {
		return false
	}
	if !f.Items.Equal(other.Items) {
		return false
	}
	if len(f.Properties) != len(other.Properties) {
		return false
	}
	for name, fs := range f.Properties {
		ofs, ok := other.Properties[name]
		if !ok || !fs.Equal(ofs) {
			return false
		}
	}
	return true
}

// EqualIgnoringEnum reports structural equality of everything except the
// enum member. Used to confirm that an enum change is the only difference.
func (f *FieldSchema) EqualIgnoringEnum(other *FieldSchema) bool {
	if f == nil || other == nil {
		return f == nil && other == nil
	}
	a := *f
	b := *other
	a.Enum = nil
	b.Enum = nil
	return a.Equal(&b)
}

// equalEnums compares enum lists element-wise, in order. Enum values are
// JSON literals, so the canonical JSON encoding is the comparison key.
func equalEnums(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if EnumKey(a[i]) != EnumKey(b[i]) {
			return false
		}
	}
	return true
}

// EnumKey canonicalizes one enum literal for set membership tests.
func EnumKey(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(data)
}

// EnumSet builds the membership set of an enum literal list.
func EnumSet(values []any) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[EnumKey(v)] = true
	}
	return set
}

// StringSet builds a membership set from a slice of names.
func StringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := StringSet(a)
	for _, item := range b {
		if !set[item] {
			return false
		}
	}
	return true
}

package kernel

import "encoding/json"

// Field is a value object representing an optional string attribute of a domain
// entity. Unlike a plain string, a Field distinguishes between "unset" and the
// empty string, so every consumer must handle absence deliberately instead of
// relying on falsy values.
//
// The zero value of Field is unset. Field is immutable and safe for concurrent use.
//
// Example usage:
//
//	equipment := kernel.NewField("excavator")
//	location := kernel.UnsetField()
//
//	fmt.Println(equipment.IsSet())      // true
//	fmt.Println(location.IsSet())       // false
//	fmt.Println(location.Or("unknown")) // "unknown"
type Field struct {
	value string
	set   bool
}

// NewField creates a set Field holding the given value.
// An empty string is a legitimate set value, distinct from an unset Field.
func NewField(value string) Field {
	return Field{value: value, set: true}
}

// UnsetField creates a Field carrying no value.
func UnsetField() Field {
	return Field{}
}

// IsSet reports whether the Field carries a value.
func (f Field) IsSet() bool {
	return f.set
}

// Value returns the carried value, or the empty string when the Field is unset.
// Use IsSet to distinguish an unset Field from a set empty string.
func (f Field) Value() string {
	return f.value
}

// Or returns the carried value when set, otherwise the given fallback.
func (f Field) Or(fallback string) string {
	if f.set {
		return f.value
	}
	return fallback
}

// IsEqual compares two Fields. Two unset Fields are equal; a set and an unset
// Field are never equal regardless of value.
func (f Field) IsEqual(other Field) bool {
	return f == other
}

// MarshalJSON encodes a set Field as a JSON string and an unset Field as JSON
// null. The key is always emitted by callers, so persisted records carry every
// field with null acting as the unset sentinel.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON decodes JSON null into an unset Field and a JSON string into a
// set Field. A missing key leaves the zero (unset) value untouched.
func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*f = NewField(s)
	return nil
}

package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells apart a JSON field that was omitted, one that was
// explicitly null and one that carries a value.
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

func SomeString(v string) OptionalString {
	return OptionalString{Set: true, Value: v}
}

func NullString() OptionalString {
	return OptionalString{Set: true, Null: true}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		o.Value = ""
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns nil for null, a pointer to the value otherwise.
func (o OptionalString) Ptr() *string {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// TaskPatch is a partial update. Nil pointers and unset optionals keep
// the stored value.
type TaskPatch struct {
	Title       *string
	Description OptionalString
	Status      *string
	Priority    *string
	DueDate     OptionalString
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		!p.Description.Set &&
		p.Status == nil &&
		p.Priority == nil &&
		!p.DueDate.Set
}

package validate

import (
	"encoding/json"
	"reflect"
)

// Nullable distinguishes an absent field from an explicit null.
//
//	absent  -> Set == false
//	null    -> Set == true, Null == true
//	value   -> Set == true, Null == false
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Ptr returns nil for null or absent, otherwise a pointer to the value.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.setNull()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value, n.Set, n.Null = v, true, false
	return nil
}

func (n *Nullable[T]) setNull() {
	var zero T
	n.Value, n.Set, n.Null = zero, true, true
}

type nullSetter interface {
	setNull()
}

// nullableValue exposes the wrapped value to validator rules. Absent and
// null both read as a nil pointer so omitempty skips them.
func nullableValue(field reflect.Value) any {
	switch n := field.Interface().(type) {
	case Nullable[int64]:
		return n.Ptr()
	case Nullable[string]:
		return n.Ptr()
	}
	return nil
}

package neighborhoods

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the shape held by a Value.
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	List
	Record
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Record:
		return "record"
	default:
		return "invalid"
	}
}

// Value is a converted JSON value: a scalar, a list of Values or a record of
// named Values. The zero Value is Invalid and every accessor on it is safe.
type Value struct {
	kind   Kind
	scalar any
	list   []Value
	fields map[string]Value
}

// Convert maps a decoded JSON value into a Value. Objects become records,
// arrays become lists and scalars pass through. Converting a Value returns it.
func Convert(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Value{kind: Null}
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, el := range t {
			fields[k] = Convert(el)
		}
		return Value{kind: Record, fields: fields}
	case []any:
		list := make([]Value, len(t))
		for i, el := range t {
			list[i] = Convert(el)
		}
		return Value{kind: List, list: list}
	case bool:
		return Value{kind: Bool, scalar: t}
	case string:
		return Value{kind: String, scalar: t}
	case json.Number:
		return Value{kind: Number, scalar: t}
	case float64:
		return Value{kind: Number, scalar: json.Number(strconv.FormatFloat(t, 'f', -1, 64))}
	case float32:
		return Value{kind: Number, scalar: json.Number(strconv.FormatFloat(float64(t), 'f', -1, 32))}
	case int:
		return Value{kind: Number, scalar: json.Number(strconv.Itoa(t))}
	case int64:
		return Value{kind: Number, scalar: json.Number(strconv.FormatInt(t, 10))}
	case int32:
		return Value{kind: Number, scalar: json.Number(strconv.FormatInt(int64(t), 10))}
	case uint64:
		return Value{kind: Number, scalar: json.Number(strconv.FormatUint(t, 10))}
	default:
		return Value{kind: Invalid, scalar: v}
	}
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// Get returns the field named key of a record. Missing fields and non-record
// values yield the zero Value.
func (v Value) Get(key string) Value {
	if v.kind != Record {
		return Value{}
	}
	return v.fields[key]
}

// Has reports whether a record carries the field key.
func (v Value) Has(key string) bool {
	if v.kind != Record {
		return false
	}
	_, ok := v.fields[key]
	return ok
}

// ID returns the record's own "id" field.
func (v Value) ID() Value { return v.Get("id") }

// Keys returns the field names of a record in sorted order.
func (v Value) Keys() []string {
	if v.kind != Record {
		return nil
	}
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of list elements or record fields.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.list)
	case Record:
		return len(v.fields)
	default:
		return 0
	}
}

// Index returns the i-th list element, or the zero Value when out of range.
func (v Value) Index(i int) Value {
	if v.kind != List || i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// Items returns the list elements.
func (v Value) Items() []Value {
	if v.kind != List {
		return nil
	}
	out := make([]Value, len(v.list))
	copy(out, v.list)
	return out
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	s, ok := v.scalar.(string)
	return s, ok && v.kind == String
}

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	b, ok := v.scalar.(bool)
	return b, ok && v.kind == Bool
}

// Int returns the number held by v as an int64.
func (v Value) Int() (int64, bool) {
	n, ok := v.scalar.(json.Number)
	if !ok || v.kind != Number {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the number held by v as a float64.
func (v Value) Float() (float64, bool) {
	n, ok := v.scalar.(json.Number)
	if !ok || v.kind != Number {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Interface turns v back into plain decoded JSON: map[string]any, []any,
// json.Number, string, bool or nil.
func (v Value) Interface() any {
	switch v.kind {
	case Record:
		out := make(map[string]any, len(v.fields))
		for k, el := range v.fields {
			out[k] = el.Interface()
		}
		return out
	case List:
		out := make([]any, len(v.list))
		for i, el := range v.list {
			out[i] = el.Interface()
		}
		return out
	case Null:
		return nil
	default:
		return v.scalar
	}
}

// MarshalJSON encodes v as the JSON it was converted from.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes JSON into v, keeping numbers exact.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := decodeJSON(data)
	if err != nil {
		return err
	}
	*v = Convert(decoded)
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case Invalid:
		return "<invalid>"
	case String:
		s, _ := v.Text()
		return s
	default:
		b, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<%s: %v>", v.kind, err)
		}
		return string(b)
	}
}

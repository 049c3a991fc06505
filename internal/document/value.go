// =============================================================================
// JSON to CSV Converter - Document Model
// =============================================================================
//
// This package holds the in-memory form of a parsed input file. JSON values
// are represented as a tagged variant instead of map[string]interface{} so
// that the converter can walk them explicitly and so that object members
// keep the order in which they appeared in the file.
//
// VALUE KINDS:
//   Null, Bool, Number, String  : scalars
//   Array                       : ordered list of values
//   Object                      : ordered list of key/value members
//
// Numbers keep their literal text ("1.50" stays "1.50").
//
// =============================================================================

package document

import (
	"bytes"
	"encoding/json"
	"strings"
)

// =============================================================================
// VALUE KINDS
// =============================================================================

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// =============================================================================
// VALUE
// =============================================================================

// Value is a single JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members []Member
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{kind: Null} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue returns a JSON number holding the given literal text.
func NumberValue(text string) Value { return Value{kind: Number, text: text} }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns a JSON array of the given items.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// ObjectValue returns a JSON object. When a key repeats, the later value
// replaces the earlier one but the key keeps its first position.
func ObjectValue(members ...Member) Value {
	obj := Value{kind: Object, members: make([]Member, 0, len(members))}
	for _, m := range members {
		obj.set(m.Key, m.Value)
	}
	return obj
}

// set adds or replaces a member.
func (v *Value) set(key string, val Value) {
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsScalar reports whether v is null, a boolean, a number or a string.
func (v Value) IsScalar() bool {
	return v.kind != Array && v.kind != Object
}

// Bool returns the boolean held by v. It is false for other kinds.
func (v Value) Bool() bool { return v.boolean }

// Text returns the string content of a String or the literal of a Number.
// It is empty for other kinds.
func (v Value) Text() string { return v.text }

// Items returns the elements of an Array, or nil.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an Object in document order, or nil.
func (v Value) Members() []Member { return v.members }

// Len returns the number of items or members, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the member value for key on an Object.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the member keys of an Object in document order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// =============================================================================
// ENCODING
// =============================================================================

// MarshalJSON encodes v as compact JSON, keeping object member order.
// HTML characters are not escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON text of v.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.text)
	case String:
		return encodeString(buf, v.text)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
	return nil
}

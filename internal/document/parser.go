// =============================================================================
// JSON to CSV Converter - JSON Parser
// =============================================================================
//
// This module decodes one input file into a Value. It walks the token stream
// of encoding/json instead of unmarshalling into maps so that object members
// stay in document order.
//
// RULES:
//   - Exactly one top-level value; anything after it is a syntax error
//   - Duplicate keys: the last value wins, the key keeps its first position
//   - Numbers keep their literal text
//   - Arrays and objects may nest at most MaxDepth levels
//
// =============================================================================

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SyntaxError reports input that is not a single valid JSON value.
type SyntaxError struct {
	// Offset is the byte offset at which the decoder gave up.
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// MaxDepth is the deepest nesting of arrays and objects Parse accepts.
const MaxDepth = 10000

var (
	errTrailingData = errors.New("unexpected data after top-level value")
	errTooDeep      = fmt.Errorf("exceeded max depth of %d", MaxDepth)
)

// Parse decodes exactly one JSON value from data.
//
// Object members are kept in document order. Whitespace around the value is
// allowed; anything else after it is a syntax error. Nesting deeper than
// MaxDepth is a syntax error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return Value{}, &SyntaxError{Offset: dec.InputOffset(), Err: err}
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return Value{}, &SyntaxError{Offset: dec.InputOffset(), Err: err}
	}

	return v, nil
}

// parseValue reads one value; depth counts the arrays and objects around it.
func parseValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return Value{}, errTooDeep
		}
		switch t {
		case '{':
			return parseObject(dec, depth+1)
		case '[':
			return parseArray(dec, depth+1)
		}
		return Value{}, fmt.Errorf("unexpected %q", rune(t))
	case string:
		return StringValue(t), nil
	case json.Number:
		return NumberValue(string(t)), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	obj := Value{kind: Object, members: []Member{}}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}

		val, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}

		// Last value wins, first position is kept.
		if i, dup := index[key]; dup {
			obj.members[i].Value = val
			continue
		}
		index[key] = len(obj.members)
		obj.members = append(obj.members, Member{Key: key, Value: val})
	}

	if err := closeDelim(dec); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	arr := Value{kind: Array, items: []Value{}}

	for dec.More() {
		item, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		arr.items = append(arr.items, item)
	}

	if err := closeDelim(dec); err != nil {
		return Value{}, err
	}
	return arr, nil
}

func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// =============================================================================
// JSON to CSV Converter - Tabular Conversion
// =============================================================================
//
// This module turns a parsed JSON document into a table and renders that
// table as CSV text. It is the only part of the converter with real
// semantics; everything around it is file plumbing.
//
// SUPPORTED SHAPES:
//   [ {...}, {...} ]  : one row per element, columns = union of keys
//   {...}             : a single row, columns = the object's keys
//   []                : an empty table (rendered as an empty file)
//
// REJECTED SHAPES (MalformedDocumentError):
//   - a top-level scalar or null
//   - an array holding anything other than objects
//
// COLUMN ORDER:
//   Columns appear in the order their key is first seen while walking the
//   rows top to bottom, left to right.
//
// FIELD RENDERING:
//   string -> as is          number -> literal text
//   bool   -> true / false   null   -> empty field
//   object / array -> compact JSON text (no dotted flattening)
//
// =============================================================================

package tabular

import (
	"fmt"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/document"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Row maps a column name to its rendered field text. A column absent from
// the map renders as an empty field.
type Row map[string]string

// Table is the tabular form of one document.
type Table struct {
	// Columns holds the header names in first-seen order.
	Columns []string

	// Rows holds one entry per source object.
	Rows []Row
}

// IsEmpty reports whether the table has neither columns nor rows.
func (t *Table) IsEmpty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// Record returns row i as a slice aligned with Columns.
func (t *Table) Record(i int) []string {
	row := t.Rows[i]
	record := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		record[j] = row[col]
	}
	return record
}

// =============================================================================
// SCHEMA INFERENCE
// =============================================================================

// FromDocument infers the table for v.
//
// RETURNS:
//   - The table, possibly empty.
//   - A *types.MalformedDocumentError if v has no tabular shape.
func FromDocument(v document.Value) (*Table, error) {
	switch v.Kind() {
	case document.Object:
		return fromObjects([]document.Value{v})

	case document.Array:
		items := v.Items()
		for i, item := range items {
			if item.Kind() != document.Object {
				return nil, &types.MalformedDocumentError{
					Reason: fmt.Sprintf("array element %d is %s, expected object", i, item.Kind()),
				}
			}
		}
		return fromObjects(items)

	default:
		return nil, &types.MalformedDocumentError{
			Reason: fmt.Sprintf("top-level value is %s, expected object or array of objects", v.Kind()),
		}
	}
}

// fromObjects builds the table from objects already known to be objects.
func fromObjects(objects []document.Value) (*Table, error) {
	table := &Table{
		Columns: []string{},
		Rows:    make([]Row, 0, len(objects)),
	}
	seen := make(map[string]bool)

	for _, obj := range objects {
		row := make(Row, obj.Len())

		for _, m := range obj.Members() {
			if !seen[m.Key] {
				seen[m.Key] = true
				table.Columns = append(table.Columns, m.Key)
			}

			text, err := renderField(m.Value)
			if err != nil {
				return nil, &types.MalformedDocumentError{
					Reason: fmt.Sprintf("field %q: %v", m.Key, err),
				}
			}
			row[m.Key] = text
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// renderField returns the CSV text for a single member value.
func renderField(v document.Value) (string, error) {
	switch v.Kind() {
	case document.Null:
		return "", nil
	case document.Bool:
		if v.Bool() {
			return "true", nil
		}
		return "false", nil
	case document.Number, document.String:
		return v.Text(), nil
	default:
		b, err := v.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

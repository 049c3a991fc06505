// =============================================================================
// JSON to CSV Converter - CSV Rendering
// =============================================================================
//
// This module writes a Table as CSV text with encoding/csv.
//
// =============================================================================

package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/document"
)

// WriteCSV writes the header row followed by one record per row.
//
// Fields holding the delimiter, a quote, a line break or a leading space are
// quoted and inner quotes are doubled. Every record ends with "\n". A
// table without columns (from [] or objects with no keys) writes nothing.
//
// A record made of one empty field is written as "" so that it does not
// turn into a blank line, which CSV readers skip.
//
// Carriage returns inside values are written unchanged. encoding/csv reads
// an embedded "\r\n" back as "\n".
func (t *Table) WriteCSV(w io.Writer) error {
	if len(t.Columns) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)

	if err := writeRecord(cw, w, t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range t.Rows {
		if err := writeRecord(cw, w, t.Record(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeRecord writes one record through cw, or directly to w when the
// record is a single empty field.
func writeRecord(cw *csv.Writer, w io.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}

// Render converts a parsed document straight to CSV bytes.
func Render(v document.Value) ([]byte, *Table, error) {
	table, err := FromDocument(v)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), table, nil
}

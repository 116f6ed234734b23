// Package output provides output formatting for the Bullhorn CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
)

// TableFormatter formats decoded JSON data as an ASCII table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports: *Table, map[string]any (FIELD/VALUE rows), []any and
// []map[string]any (one column per key). Anything else falls back to
// indented JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch v := data.(type) {
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case map[string]any:
		return objectTable(v).RenderWithOptions(w, f.NoHeaders)
	case []map[string]any:
		rows := make([]any, len(v))
		for i, m := range v {
			rows[i] = m
		}
		return listTable(rows).RenderWithOptions(w, f.NoHeaders)
	case []any:
		return listTable(v).RenderWithOptions(w, f.NoHeaders)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// objectTable renders a single object as FIELD/VALUE rows with keys
// sorted for stable output.
func objectTable(obj map[string]any) *Table {
	table := &Table{Headers: []string{"FIELD", "VALUE"}}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		table.AddRow(k, formatCell(obj[k]))
	}

	return table
}

// listTable renders records as columns over the union of their keys, in
// first-seen order.
func listTable(items []any) *Table {
	var headers []string
	seen := make(map[string]bool)

	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			// Mixed or scalar list: one VALUE column.
			table := &Table{Headers: []string{"VALUE"}}
			for _, it := range items {
				table.AddRow(formatCell(it))
			}
			return table
		}
		recordKeys := make([]string, 0, len(record))
		for k := range record {
			recordKeys = append(recordKeys, k)
		}
		sort.Strings(recordKeys)
		for _, k := range recordKeys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	table := &Table{Headers: headers}
	for _, item := range items {
		record := item.(map[string]any)
		row := make([]string, len(headers))
		for i, k := range headers {
			if v, ok := record[k]; ok {
				row[i] = formatCell(v)
			} else {
				row[i] = "-"
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// formatCell formats a decoded JSON value for a table cell. Nested
// structures are inlined as compact JSON.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; print integers without a
		// decimal point.
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if !noHeaders && len(t.Headers) > 0 {
		for i, h := range t.Headers {
			if i > 0 {
				tw.Write([]byte("\t"))
			}
			tw.Write([]byte(h))
		}
		tw.Write([]byte("\n"))
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				tw.Write([]byte("\t"))
			}
			tw.Write([]byte(cell))
		}
		tw.Write([]byte("\n"))
	}

	return nil
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}

// Package output renders admin command results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects the rendering style.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat maps a config/flag string to a Format. Unknown values fall
// back to the table format.
func ParseFormat(s string) Format {
	if s == string(FormatJSON) {
		return FormatJSON
	}
	return FormatTable
}

// Printer renders successful command results. It is never invoked on
// failure paths.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w. If w is nil, defaults to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Success renders a decoded JSON value in the requested format. When
// compact is set, JSON output collapses to a single line.
func (p *Printer) Success(v any, format Format, compact bool) {
	if format == FormatJSON {
		p.printJSON(v, compact)
		return
	}
	p.printTable(v)
}

func (p *Printer) printJSON(v any, compact bool) {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(p.w, "%v\n", v)
		return
	}
	fmt.Fprintln(p.w, string(data))
}

func (p *Printer) printTable(v any) {
	switch val := v.(type) {
	case map[string]any:
		p.renderObject(val)
	case []any:
		p.renderArray(val)
	case nil:
		fmt.Fprintln(p.w, "(no data)")
	default:
		fmt.Fprintf(p.w, "%v\n", val)
	}
}

// renderObject renders a single object as KEY/VALUE rows, keys sorted for
// stable output.
func (p *Printer) renderObject(obj map[string]any) {
	t := p.newTable()
	t.AppendHeader(table.Row{"KEY", "VALUE"})

	keys := sortedKeys(obj)
	for _, k := range keys {
		t.AppendRow(table.Row{k, cellValue(obj[k])})
	}
	t.Render()
}

// renderArray renders a list. Lists of objects become one table with the
// union of keys as columns; anything else is a numbered list.
func (p *Printer) renderArray(items []any) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, "(no items)")
		return
	}

	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			objects = nil
			break
		}
		objects = append(objects, obj)
	}

	if objects == nil {
		for i, item := range items {
			fmt.Fprintf(p.w, "%d. %v\n", i+1, item)
		}
		return
	}

	columns := unionKeys(objects)
	t := p.newTable()
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, obj := range objects {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			if v, ok := obj[c]; ok {
				row[i] = cellValue(v)
			} else {
				row[i] = ""
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	return t
}

// cellValue flattens nested structures into a compact JSON cell.
func cellValue(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unionKeys returns the sorted union of keys across all objects.
func unionKeys(objects []map[string]any) []string {
	seen := map[string]bool{}
	var keys []string
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

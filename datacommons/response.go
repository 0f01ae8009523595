package datacommons

import (
	"fmt"
	"strings"
)

// Response is the retrieval result for one statistical question. ID is
// assigned by the RAG flow during table assembly (1-based position).
type Response struct {
	ID    int    `json:"id"`
	Query string `json:"query"`
	Title string `json:"title"`
	Table *Table `json:"table,omitempty"`
}

// Table holds one chart worth of tabular data.
type Table struct {
	Unit    string     `json:"unit,omitempty"`
	Source  string     `json:"source,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows"`
}

// Answer renders the table as plain text for inclusion in a prompt. The
// title is not part of the rendering; it is separate metadata the flow uses
// for deduplication.
func (r *Response) Answer() string {
	if r.Table == nil {
		return ""
	}

	var parts []string
	if r.Table.Unit != "" {
		parts = append(parts, fmt.Sprintf("(unit: %s)", r.Table.Unit))
	}
	if len(r.Table.Columns) > 0 {
		parts = append(parts, strings.Join(r.Table.Columns, " | "))
	}
	for _, row := range r.Table.Rows {
		parts = append(parts, strings.Join(row, " | "))
	}
	if r.Table.Source != "" {
		parts = append(parts, "Source: "+r.Table.Source)
	}

	return strings.Join(parts, "\n")
}

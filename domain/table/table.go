package table

import (
	"fmt"
	"strconv"

	"heartscope/domain/core"
)

// Kind classifies how a column's values must be interpreted. It is assigned
// once during preprocessing and carried alongside the data; presentation code
// branches on the declared kind and never re-detects types at render time.
type Kind string

const (
	// KindNumeric marks a continuous magnitude column.
	KindNumeric Kind = "numeric"
	// KindCategorical marks an unordered label column, even when the labels
	// are stored as integer codes.
	KindCategorical Kind = "categorical"
)

// Column holds one patient attribute across all rows.
//
// Numeric payloads live in Values. Integer-coded categoricals also live in
// Values (the code is the label). Label-coded categoricals (like the derived
// age group) live in Labels. Valid is the per-row validity mask; a false
// entry marks a missing or unclassified cell, which statistics skip.
type Column struct {
	Name   string
	Kind   Kind
	Values []float64
	Labels []string
	Valid  []bool
}

// NewNumericColumn creates a numeric column. A nil valid mask means all
// values are present.
func NewNumericColumn(name string, values []float64, valid []bool) Column {
	if valid == nil {
		valid = allValid(len(values))
	}
	return Column{Name: name, Kind: KindNumeric, Values: values, Valid: valid}
}

// NewLabelColumn creates a label-coded categorical column.
func NewLabelColumn(name string, labels []string, valid []bool) Column {
	if valid == nil {
		valid = allValid(len(labels))
	}
	return Column{Name: name, Kind: KindCategorical, Labels: labels, Valid: valid}
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// Len returns the row count of the column.
func (c *Column) Len() int {
	if c.Labels != nil {
		return len(c.Labels)
	}
	return len(c.Values)
}

// NonMissing counts rows with a present value.
func (c *Column) NonMissing() int {
	n := 0
	for _, ok := range c.Valid {
		if ok {
			n++
		}
	}
	return n
}

// Missing counts rows without a present value.
func (c *Column) Missing() int {
	return c.Len() - c.NonMissing()
}

// IsNumeric reports whether the column carries a numeric kind tag.
func (c *Column) IsNumeric() bool { return c.Kind == KindNumeric }

// CompactValues returns the numeric values of all non-missing rows,
// preserving row order.
func (c *Column) CompactValues() []float64 {
	out := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if c.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// CategoryAt returns the label of row i. Integer-coded categoricals format
// the code. The second return is false for missing or unclassified rows.
func (c *Column) CategoryAt(i int) (string, bool) {
	if !c.Valid[i] {
		return "", false
	}
	if c.Labels != nil {
		return c.Labels[i], true
	}
	return strconv.FormatFloat(c.Values[i], 'g', -1, 64), true
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Values != nil {
		out.Values = append([]float64(nil), c.Values...)
	}
	if c.Labels != nil {
		out.Labels = append([]string(nil), c.Labels...)
	}
	out.Valid = append([]bool(nil), c.Valid...)
	return out
}

// memoryBytes approximates the in-memory size of the column payload.
func (c *Column) memoryBytes() int {
	n := len(c.Values)*8 + len(c.Valid)
	for _, l := range c.Labels {
		n += len(l) + 16 // string header
	}
	return n
}

// Table is an ordered, immutable-after-creation collection of equally sized
// columns. Source carries the fingerprint of the file the table was read
// from, which keys every downstream memoization.
type Table struct {
	Source  core.Fingerprint
	columns []Column
	rows    int
}

// New creates a table from columns, validating that all columns share one
// row count.
func New(source core.Fingerprint, columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}
	rows := columns[0].Len()
	for i := range columns {
		if columns[i].Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d",
				columns[i].Name, columns[i].Len(), rows)
		}
		if len(columns[i].Valid) != rows {
			return nil, fmt.Errorf("column %q validity mask has %d entries, expected %d",
				columns[i].Name, len(columns[i].Valid), rows)
		}
	}
	return &Table{Source: source, columns: columns, rows: rows}, nil
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return t.rows }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Names returns column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i := range t.columns {
		names[i] = t.columns[i].Name
	}
	return names
}

// Column returns the named column, or false if absent.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.columns {
		if t.columns[i].Name == name {
			return &t.columns[i], true
		}
	}
	return nil, false
}

// Columns returns all columns in table order.
func (t *Table) Columns() []Column { return t.columns }

// NumericNames returns the names of numeric-kind columns in table order.
func (t *Table) NumericNames() []string {
	names := make([]string, 0, len(t.columns))
	for i := range t.columns {
		if t.columns[i].IsNumeric() {
			names = append(names, t.columns[i].Name)
		}
	}
	return names
}

// MemoryBytes approximates the in-memory footprint of all column payloads.
func (t *Table) MemoryBytes() int {
	n := 0
	for i := range t.columns {
		n += t.columns[i].memoryBytes()
	}
	return n
}

// Clone returns a deep copy sharing nothing with the receiver.
func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.columns))
	for i := range t.columns {
		cols[i] = t.columns[i].Clone()
	}
	return &Table{Source: t.Source, columns: cols, rows: t.rows}
}

// Append returns a copy of the table with an extra column attached. The
// receiver is not modified.
func (t *Table) Append(col Column) (*Table, error) {
	if col.Len() != t.rows {
		return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), t.rows)
	}
	if _, exists := t.Column(col.Name); exists {
		return nil, fmt.Errorf("column %q already present", col.Name)
	}
	out := t.Clone()
	out.columns = append(out.columns, col)
	return out, nil
}

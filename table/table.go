// Package table defines the typed columnar output of a read: an immutable
// table of independently typed columns in discovered order, each with a value
// buffer, a validity bitmap, and a null count.
package table

// Table is the result of one read call. It is immutable after construction.
type Table struct {
	columns []Column
	names   []string
	rows    int
}

// New builds a table from finished columns. Columns keep their given order;
// names mirror the columns and exist so callers can list the schema without
// touching column storage.
func New(columns []Column) *Table {
	names := make([]string, len(columns))
	rows := 0
	for i := range columns {
		names[i] = columns[i].name
		if columns[i].length > rows {
			rows = columns[i].length
		}
	}

	return &Table{
		columns: columns,
		names:   names,
		rows:    rows,
	}
}

// NumRows returns the number of records in the table.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Names returns the ordered column names. The returned slice must not be
// modified by the caller.
func (t *Table) Names() []string {
	return t.names
}

// Column returns the column at index i in discovered order.
func (t *Table) Column(i int) *Column {
	return &t.columns[i]
}

// ColumnByName returns the column with the given name, or false when no such
// column exists.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	for i := range t.columns {
		if t.columns[i].name == name {
			return &t.columns[i], true
		}
	}

	return nil, false
}

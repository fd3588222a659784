package model

// Columns lists the output table columns in order. Accepted and rejected
// record sets share this schema.
var Columns = []string{"id", "first", "last", "address", "date", "datestring"}

// Row is one line of the output table.
type Row struct {
	ID         string `json:"id"`
	First      string `json:"first"`
	Last       string `json:"last"`
	Address    string `json:"address"`
	Date       string `json:"date"`
	DateString string `json:"datestring"`
}

// Fields returns the row values in column order.
func (r Row) Fields() []string {
	return []string{r.ID, r.First, r.Last, r.Address, r.Date, r.DateString}
}

// Table is a materialized set of output rows.
type Table struct {
	Rows []Row `json:"rows"`
}

// NewTable builds a table from records, one row per record in input order.
func NewTable(records []*Record) *Table {
	t := &Table{Rows: make([]Row, 0, len(records))}
	for _, rec := range records {
		t.Rows = append(t.Rows, rec.Row())
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

package domain

import (
	"errors"
	"fmt"
)

// Column names of the persisted ledger.
const (
	ColumnTrackingID      = "CN #"
	ColumnDestination     = "Destination"
	ColumnShipperName     = "Shipper Name"
	ColumnConsigneeName   = "Consignee Name"
	ColumnOrderID         = "Order Id"
	ColumnCODAmount       = "COD Amount"
	ColumnStatus          = "Status"
	ColumnRecentLocation  = "Recent Location"
	ColumnBookingDate     = "Booking Date"
	ColumnPaymentReceived = "Payment Received"
)

var (
	// ErrNotFound is returned when the ledger file does not exist.
	ErrNotFound = errors.New("ledger not found")
	// ErrDuplicateRecord is returned when an import batch repeats a tracking id.
	ErrDuplicateRecord = errors.New("tracking id already exists in the ledger")
	// ErrSchemaViolation is returned when an import batch has an unacceptable shape.
	ErrSchemaViolation = errors.New("import batch violates the ledger schema")
	// ErrMissingColumns is returned when a ledger lacks columns an operation needs.
	ErrMissingColumns = errors.New("required columns are missing from the ledger")
	// ErrUnknownColumn is returned when writing to a column the ledger does not have.
	ErrUnknownColumn = errors.New("unknown ledger column")
	// ErrLedgerBusy is returned when a sync run or another write holds the ledger lock.
	ErrLedgerBusy = errors.New("ledger is locked by a sync run in progress")
)

// Ledger is the in-memory form of the shipment ledger: a header and its rows.
// Every row has exactly len(Columns) cells.
type Ledger struct {
	// Columns is the header, in persisted order.
	Columns []string
	// Rows holds the data rows in ledger order.
	Rows [][]string
}

// New creates an empty ledger with the given header.
func New(columns []string) *Ledger {
	return &Ledger{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0),
	}
}

// Len returns the number of data rows.
func (l *Ledger) Len() int {
	return len(l.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (l *Ledger) ColumnIndex(name string) int {
	for i, c := range l.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header contains name.
func (l *Ledger) HasColumn(name string) bool {
	return l.ColumnIndex(name) >= 0
}

// RequireColumns returns ErrMissingColumns naming every absent column.
func (l *Ledger) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if !l.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingColumns, missing)
	}
	return nil
}

// Cell returns the value at row/column, or "" when the column is absent.
func (l *Ledger) Cell(row int, column string) string {
	idx := l.ColumnIndex(column)
	if idx < 0 || idx >= len(l.Rows[row]) {
		return ""
	}
	return l.Rows[row][idx]
}

// SetCell writes value at row/column.
func (l *Ledger) SetCell(row int, column string, value string) error {
	idx := l.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	l.Rows[row][idx] = value
	return nil
}

// InsertColumn inserts an empty column at pos, shifting later columns right.
func (l *Ledger) InsertColumn(pos int, name string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.Columns) {
		pos = len(l.Columns)
	}
	l.Columns = insertAt(l.Columns, pos, name)
	for i, row := range l.Rows {
		l.Rows[i] = insertAt(row, pos, "")
	}
}

// AppendColumn adds an empty column after the existing ones.
func (l *Ledger) AppendColumn(name string) {
	l.InsertColumn(len(l.Columns), name)
}

// AppendRow adds a row, padding or trimming it to the header width.
func (l *Ledger) AppendRow(cells []string) {
	l.Rows = append(l.Rows, fitRow(cells, len(l.Columns)))
}

// TrackingIDs returns the row index of every non-empty tracking id.
func (l *Ledger) TrackingIDs() map[string]int {
	ids := make(map[string]int, len(l.Rows))
	for i := range l.Rows {
		if id := l.Cell(i, ColumnTrackingID); id != "" {
			ids[id] = i
		}
	}
	return ids
}

// Record returns the named view of a row.
func (l *Ledger) Record(row int) ShipmentRecord {
	return ShipmentRecord{
		TrackingID:      l.Cell(row, ColumnTrackingID),
		Destination:     l.Cell(row, ColumnDestination),
		ShipperName:     l.Cell(row, ColumnShipperName),
		ConsigneeName:   l.Cell(row, ColumnConsigneeName),
		OrderID:         l.Cell(row, ColumnOrderID),
		CODAmount:       l.Cell(row, ColumnCODAmount),
		Status:          l.Cell(row, ColumnStatus),
		RecentLocation:  l.Cell(row, ColumnRecentLocation),
		BookingDate:     l.Cell(row, ColumnBookingDate),
		PaymentReceived: ParsePaymentState(l.Cell(row, ColumnPaymentReceived)),
	}
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		Columns: append([]string(nil), l.Columns...),
		Rows:    make([][]string, len(l.Rows)),
	}
	for i, row := range l.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// SheetRow converts a data row index to its 1-based spreadsheet row (the header is row 1).
func SheetRow(row int) int {
	return row + 2
}

func insertAt(s []string, pos int, v string) []string {
	s = append(s, "")
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func fitRow(cells []string, width int) []string {
	row := make([]string, width)
	copy(row, cells)
	return row
}

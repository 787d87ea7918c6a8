package domain

// Import-only columns and the reserved marker column.
const (
	ColumnSerial  = "Sr."
	ColumnPieces  = "No. of pieces"
	ColumnWeight  = "Weight"
	ColumnRemarks = "Remarks"
	// ColumnZone only appears in sheets from an incompatible source; a batch carrying it is rejected.
	ColumnZone = "Zone"
)

// BatchColumns is the fixed ten-column shape of a scraped loadsheet.
var BatchColumns = []string{
	ColumnSerial,
	ColumnTrackingID,
	ColumnDestination,
	ColumnShipperName,
	ColumnPieces,
	ColumnConsigneeName,
	ColumnOrderID,
	ColumnWeight,
	ColumnCODAmount,
	ColumnRemarks,
}

// ImportOnlyColumns are dropped before a batch is merged into the ledger.
var ImportOnlyColumns = []string{ColumnSerial, ColumnRemarks, ColumnPieces, ColumnWeight}

// ImportBatch is a freshly extracted set of shipment rows awaiting merge.
type ImportBatch struct {
	// Columns is the batch header.
	Columns []string `json:"columns" validate:"required,min=1"`
	// Rows holds the raw cells in batch order.
	Rows [][]string `json:"rows" validate:"required,min=1"`
}

// Len returns the number of rows in the batch.
func (b *ImportBatch) Len() int {
	return len(b.Rows)
}

// ImportResult summarizes a successful import.
type ImportResult struct {
	// Added is the number of rows appended from the batch.
	Added int `json:"added"`
	// Total is the ledger row count after the import.
	Total int `json:"total"`
	// Created is true when the import started a new ledger file.
	Created bool `json:"created"`
}

// SortResult summarizes a booking-date sort.
type SortResult struct {
	Rows int `json:"rows"`
	// Undated counts rows whose booking date could not be parsed; they sort last.
	Undated int `json:"undated"`
}

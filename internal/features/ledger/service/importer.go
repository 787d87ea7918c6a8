package service

import (
	"fmt"
	"slices"
	"strings"

	"parcel-ledger/internal/features/ledger/domain"
)

// Merge validates batch and appends its rows to a copy of ledger.
// A nil ledger means none exists yet; the stripped batch becomes the ledger.
// The passed ledger is never modified.
func Merge(batch *domain.ImportBatch, ledger *domain.Ledger) (*domain.Ledger, error) {
	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	incoming := stripImportColumns(batch)

	if err := checkDuplicates(incoming, ledger); err != nil {
		return nil, err
	}

	if ledger == nil {
		return incoming, nil
	}

	merged := ledger.Clone()
	for _, name := range incoming.Columns {
		if !merged.HasColumn(name) {
			merged.AppendColumn(name)
		}
	}

	for i := range incoming.Rows {
		row := make([]string, len(merged.Columns))
		for j, name := range merged.Columns {
			row[j] = incoming.Cell(i, name)
		}
		merged.AppendRow(row)
	}

	return merged, nil
}

func validateBatch(batch *domain.ImportBatch) error {
	if batch == nil {
		return fmt.Errorf("%w: empty batch", domain.ErrSchemaViolation)
	}
	if slices.Contains(batch.Columns, domain.ColumnZone) {
		return fmt.Errorf("%w: batch contains reserved column %q", domain.ErrSchemaViolation, domain.ColumnZone)
	}
	if !slices.Contains(batch.Columns, domain.ColumnTrackingID) {
		return fmt.Errorf("%w: batch has no %q column", domain.ErrSchemaViolation, domain.ColumnTrackingID)
	}
	for i, row := range batch.Rows {
		if len(row) != len(batch.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d",
				domain.ErrSchemaViolation, domain.SheetRow(i), len(row), len(batch.Columns))
		}
	}
	return nil
}

// stripImportColumns drops the loadsheet-only columns and returns the rest as a ledger.
func stripImportColumns(batch *domain.ImportBatch) *domain.Ledger {
	keep := make([]int, 0, len(batch.Columns))
	columns := make([]string, 0, len(batch.Columns))
	for i, name := range batch.Columns {
		if slices.Contains(domain.ImportOnlyColumns, name) {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, name)
	}

	l := domain.New(columns)
	for _, raw := range batch.Rows {
		row := make([]string, len(keep))
		for j, idx := range keep {
			row[j] = strings.TrimSpace(raw[idx])
		}
		l.AppendRow(row)
	}
	return l
}

func checkDuplicates(incoming, ledger *domain.Ledger) error {
	existing := map[string]int{}
	if ledger != nil {
		existing = ledger.TrackingIDs()
	}

	seen := make(map[string]struct{}, incoming.Len())
	var dups []string
	for i := range incoming.Rows {
		id := incoming.Cell(i, domain.ColumnTrackingID)
		if id == "" {
			continue
		}
		if _, ok := existing[id]; ok {
			dups = append(dups, id)
			continue
		}
		if _, ok := seen[id]; ok {
			dups = append(dups, id)
			continue
		}
		seen[id] = struct{}{}
	}

	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRecord, strings.Join(dups, ", "))
	}
	return nil
}

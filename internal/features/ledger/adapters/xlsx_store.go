package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/features/ledger/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// XlsxStore implements ports.LedgerStore and ports.BatchSource on Excel workbooks.
// The ledger lives on the first sheet; row 1 is the header.
type XlsxStore struct {
	logger *zap.Logger
}

// NewXlsxStore creates a new XlsxStore.
func NewXlsxStore() *XlsxStore {
	return &XlsxStore{
		logger: logger.Named("ledger.xlsx"),
	}
}

// Load reads the ledger workbook at path.
func (s *XlsxStore) Load(path string) (*domain.Ledger, error) {
	header, rows, err := s.readSheet(path)
	if err != nil {
		return nil, err
	}

	ledger := domain.New(header)
	for _, row := range rows {
		ledger.AppendRow(row)
	}

	s.logger.Debug("Ledger loaded",
		zap.String("path", path),
		zap.Int("columns", len(ledger.Columns)),
		zap.Int("rows", ledger.Len()),
	)
	return ledger, nil
}

// LoadBatch reads an import batch workbook. Rows keep their raw width so the
// importer can reject malformed ones.
func (s *XlsxStore) LoadBatch(path string) (*domain.ImportBatch, error) {
	header, rows, err := s.readSheet(path)
	if err != nil {
		return nil, err
	}

	batch := &domain.ImportBatch{Columns: header, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		// excelize drops trailing empty cells; restore them up to the header width.
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		batch.Rows = append(batch.Rows, row)
	}
	return batch, nil
}

// Save writes the ledger to a temporary workbook next to path and renames it into place.
func (s *XlsxStore) Save(ledger *domain.Ledger, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to open sheet writer: %w", err)
	}

	if err := writeRow(sw, 1, ledger.Columns); err != nil {
		return err
	}
	for i, row := range ledger.Rows {
		if err := writeRow(sw, domain.SheetRow(i), row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Chmod(ledgerMode(path)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set ledger permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close ledger: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace ledger %s: %w", path, err)
	}

	s.logger.Debug("Ledger saved",
		zap.String("path", path),
		zap.Int("rows", ledger.Len()),
	)
	return nil
}

// Exists reports whether a ledger file is present at path.
func (s *XlsxStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readSheet returns the header and the data rows of the first sheet,
// without trailing blank rows.
func (s *XlsxStore) readSheet(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	// Interior blank rows keep their position so row numbers match the sheet.
	end := len(rows)
	for end > 1 && isRowEmpty(rows[end-1]) {
		end--
	}
	return header, rows[1:end], nil
}

// ledgerMode returns the permissions of the ledger being replaced,
// or 0644 for a new file.
func ledgerMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

func writeRow(sw *excelize.StreamWriter, sheetRow int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, sheetRow)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", sheetRow, err)
	}
	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := sw.SetRow(cell, values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", sheetRow, err)
	}
	return nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

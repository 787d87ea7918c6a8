package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"parcel-ledger/internal/features/ledger/adapters"
	"parcel-ledger/internal/features/ledger/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points the configuration at a temporary ledger directory.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LEDGER_DIR", dir)
	t.Setenv("LEDGER_FILE", "final.xlsx")
	t.Setenv("LEOPARD_API_KEY", "key")
	t.Setenv("LEOPARD_API_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func writeBatch(t *testing.T, dir string, rows ...[]string) string {
	t.Helper()
	batch := domain.New(domain.BatchColumns)
	for _, r := range rows {
		batch.AppendRow(r)
	}
	path := filepath.Join(dir, "batch.xlsx")
	require.NoError(t, adapters.NewXlsxStore().Save(batch, path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_ImportAndReport(t *testing.T) {
	dir := setupEnv(t)
	batchPath := writeBatch(t, t.TempDir(),
		[]string{"1", "LE001", "Lahore", "Shop", "1", "Ayesha", "ORD-1", "0.5", "6000", ""},
	)

	out, err := run(t, "import", batchPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Created ledger "+filepath.Join(dir, "final.xlsx"))
	assert.Contains(t, out, "Imported 1 rows, ledger now holds 1 rows")

	_, err = run(t, "import", batchPath)
	assert.ErrorIs(t, err, domain.ErrDuplicateRecord)

	out, err = run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "6,000.00")
	assert.Contains(t, out, "Pending records")

	out, err = run(t, "analytics")
	require.NoError(t, err)
	assert.Contains(t, out, "In Transit")
	assert.Contains(t, out, "100.0%")

	out, err = run(t, "sort")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorted 1 rows (1 without a booking date)")
}

func TestCLI_ReportWithoutLedger(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "summary")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCLI_MissingConfiguration(t *testing.T) {
	t.Setenv("LEDGER_DIR", "")
	t.Setenv("LEOPARD_API_KEY", "")

	_, err := run(t, "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration")
}

func TestFormatAmount(t *testing.T) {
	assert.Contains(t, formatAmount(decimal.RequireFromString("1250.5")), "1,250.50")
	assert.Contains(t, formatAmount(decimal.Zero), "0.00")
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/finreport/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rep := report.Build("x", sample[:2], report.Options{Summary: true})

	require.NoError(t, WriteFile(path, rep))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "revenue,profit,percent\n"+
		"1000,10,1\n"+
		"2000,17,0.85\n"+
		"\n"+
		"Total Rows,2\n"+
		"Total Revenue,3000\n"+
		"Total Profit,27\n"+
		"Average Margin %,0.93\n", string(content))
}

func TestWriteFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	rep := report.Build("x", sample, report.Options{})

	require.NoError(t, WriteFile(path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"revenue", "profit", "percent"}, rows[0])
	assert.Equal(t, []string{"2500", "-170", "-6.8"}, rows[4])
}

func TestWriteFile_UnsupportedExtension(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "out.pdf"), report.Build("x", sample, report.Options{}))
	assert.ErrorIs(t, err, ErrUnsupportedExport)
}

package vocabimport

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportFile_Excel(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Word", "Translation", "Context"},
		{"hola", "hello", "greeting"},
		{"gato", "cat"},
		{"", ""},
		{"perro", ""},
	})

	res, err := ImportFile(path, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []Row{
		{Word: "hola", Translation: "hello", Context: "greeting"},
		{Word: "gato", Translation: "cat"},
	}, res.Rows)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "row 5")
}

func TestImportFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	data := "word,translation,context\nbonjour, hello,\"greeting, formal\"\nchat,cat\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	res, err := ImportFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Word: "bonjour", Translation: "hello", Context: "greeting, formal"},
		{Word: "chat", Translation: "cat"},
	}, res.Rows)
}

func TestReadCSV_CustomColumns(t *testing.T) {
	cfg := Config{WordColumn: "B", TranslationColumn: "A", StartRow: 1}
	res, err := ReadCSV(strings.NewReader("dog,Hund\ncat,Katze\n"), cfg)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Word: "Hund", Translation: "dog"},
		{Word: "Katze", Translation: "cat"},
	}, res.Rows)
}

func TestImportFile_Errors(t *testing.T) {
	_, err := ImportFile("words.txt", DefaultConfig())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = ImportFile("words.csv", Config{WordColumn: "1", TranslationColumn: "B"})
	assert.ErrorContains(t, err, "invalid column")

	_, err = ImportFile(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultConfig())
	assert.ErrorContains(t, err, "open workbook")
}

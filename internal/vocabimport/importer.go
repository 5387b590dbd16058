// Package vocabimport reads vocabulary word lists from .xlsx and .csv files.
package vocabimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Config selects where the columns are. Columns use spreadsheet letters.
type Config struct {
	WordColumn        string
	TranslationColumn string
	ContextColumn     string // optional, "" to skip
	SheetName         string // "" selects the first sheet
	StartRow          int    // 1-based; rows above are headers
}

// DefaultConfig reads word, translation and context from columns A-C,
// skipping one header row.
func DefaultConfig() Config {
	return Config{
		WordColumn:        "A",
		TranslationColumn: "B",
		ContextColumn:     "C",
		StartRow:          2,
	}
}

// Row is one imported word.
type Row struct {
	Word        string
	Translation string
	Context     string
}

// Result holds what an import read.
type Result struct {
	Rows      []Row
	Processed int
	Skipped   int
	Errors    []string
}

// ErrUnsupportedFormat is returned for file extensions other than .xlsx and .csv.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ImportFile reads words from path, choosing the reader by extension.
func ImportFile(path string, cfg Config) (*Result, error) {
	cols, err := cfg.columns()
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path, cfg.SheetName)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return collect(rows, cfg.StartRow, cols), nil
}

// ReadCSV reads words from CSV data.
func ReadCSV(r io.Reader, cfg Config) (*Result, error) {
	cols, err := cfg.columns()
	if err != nil {
		return nil, err
	}
	rows, err := parseCSV(r)
	if err != nil {
		return nil, err
	}
	return collect(rows, cfg.StartRow, cols), nil
}

// columnIndexes are 0-based; context is -1 when not configured.
type columnIndexes struct {
	word, translation, context int
}

func (c Config) columns() (columnIndexes, error) {
	idx := func(name string) (int, error) {
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return 0, fmt.Errorf("invalid column %q: %w", name, err)
		}
		return n - 1, nil
	}

	var (
		out columnIndexes
		err error
	)
	if out.word, err = idx(c.WordColumn); err != nil {
		return out, err
	}
	if out.translation, err = idx(c.TranslationColumn); err != nil {
		return out, err
	}
	out.context = -1
	if c.ContextColumn != "" {
		if out.context, err = idx(c.ContextColumn); err != nil {
			return out, err
		}
	}
	return out, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return parseCSV(file)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func collect(rows [][]string, startRow int, cols columnIndexes) *Result {
	if startRow < 1 {
		startRow = 1
	}
	res := &Result{}
	for i, row := range rows {
		if i < startRow-1 {
			continue
		}
		res.Processed++

		word := cell(row, cols.word)
		translation := cell(row, cols.translation)
		if word == "" && translation == "" {
			res.Skipped++
			continue
		}
		if word == "" || translation == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: word and translation are required", i+1))
			continue
		}
		res.Rows = append(res.Rows, Row{
			Word:        word,
			Translation: translation,
			Context:     cell(row, cols.context),
		})
	}
	return res
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

package utils

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an uploaded dataset before any schema is applied: the header row
// and the data rows exactly as read from the file.
type Table struct {
	Header []string
	Rows   [][]string
}

var csvExtensions = map[string]bool{
	".csv": true,
	".txt": true,
}

var excelExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

// IsSupportedDataset reports whether the file name has an extension ReadTable understands.
func IsSupportedDataset(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return csvExtensions[ext] || excelExtensions[ext]
}

// ReadTable picks a reader from the file extension.
func ReadTable(fileName string, r io.Reader) (Table, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case csvExtensions[ext]:
		return ReadCsvTable(r)
	case excelExtensions[ext]:
		return ReadExcelTable(r)
	default:
		return Table{}, ErrorUnsupportedFileType
	}
}

// ReadCsvTable reads delimited text. The delimiter is sniffed from the header
// line (comma unless the header only contains tabs or semicolons).
func ReadCsvTable(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)
	// strip UTF-8 BOM written by spreadsheet tools
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	firstLine, _ := br.Peek(peekSize(br))

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, ErrorEmptyFile
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	table := Table{Header: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read csv row: %w", err)
		}
		table.Rows = append(table.Rows, padRow(row, len(header)))
	}
	return table, nil
}

// ReadExcelTable reads the first sheet of a workbook.
func ReadExcelTable(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrorEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("unable to read sheet: %v", err)
	}
	if len(rows) == 0 {
		return Table{}, ErrorEmptyFile
	}

	table := Table{Header: rows[0]}
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, padRow(row, len(table.Header)))
	}
	return table, nil
}

func peekSize(br *bufio.Reader) int {
	n := br.Buffered()
	if n == 0 {
		// force a fill so Buffered reports what is available
		_, _ = br.Peek(1)
		n = br.Buffered()
	}
	return n
}

func sniffDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	if bytes.IndexByte(sample, ',') >= 0 {
		return ','
	}
	if bytes.IndexByte(sample, '\t') >= 0 {
		return '\t'
	}
	if bytes.IndexByte(sample, ';') >= 0 {
		return ';'
	}
	return ','
}

// padRow makes short rows as wide as the header; excelize trims trailing empty cells.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

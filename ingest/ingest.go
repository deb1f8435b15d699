// Package ingest reads uploaded CSV and XLSX files into raw tables.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// Supported upload formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	// ErrEmptyFile is returned when the upload has no header row
	ErrEmptyFile = errors.New("file contains no header row")
	// ErrUnsupportedFormat is returned by DetectFormat for unknown extensions
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat maps a file name to an upload format
func DetectFormat(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Load reads an uploaded file, choosing the reader from its name. Names
// without a known extension are read as CSV.
func Load(filename string, r io.Reader) (*models.RawTable, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		slog.Debug("Reading upload as csv", slog.String("file", filename))
	}
	if format == FormatXLSX {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

// ReadCSV parses a comma separated file whose first record is the header.
// Short rows are padded with blanks; a row wider than the header is an error.
func ReadCSV(r io.Reader) (*models.RawTable, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to skip byte order mark: %w", err)
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	table := &models.RawTable{Columns: header, Rows: [][]string{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		row, err := fitRow(record, len(header))
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table.Rows = append(table.Rows, row)
	}

	slog.Debug("Parsed csv upload",
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))
	return table, nil
}

// ReadXLSX reads the first sheet of a workbook, first row as header
func ReadXLSX(r io.Reader) (*models.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close excel file", slog.String("error", err.Error()))
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 || isBlankRow(rows[0]) {
		return nil, ErrEmptyFile
	}

	header := rows[0]
	table := &models.RawTable{Columns: header, Rows: [][]string{}}
	for i, record := range rows[1:] {
		if isBlankRow(record) {
			continue
		}
		row, err := fitRow(record, len(header))
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheetName, i+2, err)
		}
		table.Rows = append(table.Rows, row)
	}

	slog.Debug("Parsed xlsx upload",
		slog.String("sheet", sheetName),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))
	return table, nil
}

// fitRow pads a record to width, rejecting records with extra non-blank cells
func fitRow(record []string, width int) ([]string, error) {
	if len(record) > width {
		for _, cell := range record[width:] {
			if strings.TrimSpace(cell) != "" {
				return nil, fmt.Errorf("expected %d fields, saw %d", width, len(record))
			}
		}
		return record[:width], nil
	}
	row := make([]string, width)
	copy(row, record)
	return row, nil
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

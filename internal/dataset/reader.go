package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"heartscope/domain/core"
	"heartscope/domain/table"
	"heartscope/internal/errors"
)

// missingTokens are cell contents read as an absent value. The UCI heart
// export marks unknown vessel counts and thalassemia codes with "?".
var missingTokens = map[string]bool{
	"":    true,
	"?":   true,
	"na":  true,
	"n/a": true,
	"nan": true,
}

// Reader loads a patient record table from a CSV or XLSX file.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given path, picking the format from the
// file extension.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if ext := strings.ToLower(filepath.Ext(filePath)); ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the full table. The file is read once, in full; every failure
// (absent file, unreadable content, malformed cell) is returned to the
// caller unrecovered.
func (r *Reader) Read() (*table.Table, error) {
	info, err := os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return nil, errors.DatasetNotFound(r.filePath)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat dataset file")
	}
	fingerprint := core.NewFingerprint(r.filePath, info.Size(), info.ModTime().UnixNano())

	var rows [][]string
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	case "xlsx":
		rows, err = r.readXLSX()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.DatasetMalformed("dataset must have a header row and at least one data row", nil)
	}

	return buildTable(fingerprint, rows)
}

// Fingerprint returns the identity of the current on-disk file without
// reading its contents.
func (r *Reader) Fingerprint() (core.Fingerprint, error) {
	info, err := os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return "", errors.DatasetNotFound(r.filePath)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to stat dataset file")
	}
	return core.NewFingerprint(r.filePath, info.Size(), info.ModTime().UnixNano()), nil
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows may run short of the header; absent cells read as missing, the
	// same as ragged XLSX rows.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DatasetMalformed("failed to parse CSV file", err)
	}
	return rows, nil
}

func (r *Reader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DatasetMalformed("failed to open XLSX file", err)
	}
	defer f.Close()

	// First sheet carries the data, matching the exported CSV layout.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.DatasetMalformed("XLSX file has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.DatasetMalformed("failed to read XLSX sheet", err)
	}
	return rows, nil
}

// buildTable parses raw string rows into numeric columns. Every column
// starts life numeric; the preprocessor retags the nominal ones afterwards.
func buildTable(fingerprint core.Fingerprint, rows [][]string) (*table.Table, error) {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
		if headers[i] == "" {
			return nil, errors.DatasetMalformed("dataset has an unnamed column", nil)
		}
	}

	dataRows := rows[1:]
	values := make([][]float64, len(headers))
	valid := make([][]bool, len(headers))
	for i := range headers {
		values[i] = make([]float64, len(dataRows))
		valid[i] = make([]bool, len(dataRows))
	}

	for rowIdx, row := range dataRows {
		for colIdx := range headers {
			var cell string
			if colIdx < len(row) {
				cell = strings.TrimSpace(row[colIdx])
			}
			if missingTokens[strings.ToLower(cell)] {
				values[colIdx][rowIdx] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.DatasetMalformed(
					"non-numeric cell "+strconv.Quote(cell)+" in column "+headers[colIdx], err)
			}
			values[colIdx][rowIdx] = v
			valid[colIdx][rowIdx] = true
		}
	}

	columns := make([]table.Column, len(headers))
	for i, name := range headers {
		columns[i] = table.NewNumericColumn(name, values[i], valid[i])
	}
	return table.New(fingerprint, columns)
}

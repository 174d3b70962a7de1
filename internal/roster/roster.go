// Package roster reads and writes student rosters as Excel workbooks.
//
// The first sheet is used. Row 1 is a header; every following row holds
// Name, Gender, DateOfBirth and ClassName in columns A to D.
package roster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aanand-mishra/school-api/internal/types"
)

// SheetName is the sheet written by Write.
const SheetName = "Students"

// Header is the first row of every exported roster.
var Header = []string{"Name", "Gender", "DateOfBirth", "ClassName"}

// ErrNoSheets is returned for a workbook without any sheet.
var ErrNoSheets = errors.New("roster: workbook does not contain any sheets")

// Entry is one data row of an imported roster. Row is the 1-based row
// number shown by spreadsheet applications.
type Entry struct {
	Row     int
	Request types.StudentRequest
}

// Read parses the workbook in r. Blank rows are dropped; every other row
// is returned as-is for the caller to validate.
func Read(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("roster: open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing roster workbook", slog.String("error", err.Error()))
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheets
	}

	// Raw values keep date cells as serial numbers instead of whatever
	// display format the author picked.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("roster: read sheet %s: %w", sheet, err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		entries = append(entries, Entry{
			Row: i + 1,
			Request: types.StudentRequest{
				Name:        cell(row, 0),
				Gender:      cell(row, 1),
				DateOfBirth: dateCell(cell(row, 2)),
				ClassName:   cell(row, 3),
			},
		})
	}
	return entries, nil
}

// Write encodes students as a workbook with a header row.
func Write(w io.Writer, students []types.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("roster: name sheet: %w", err)
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("roster: write header: %w", err)
	}

	for i, s := range students {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("roster: row %d: %w", i+2, err)
		}
		row := []interface{}{s.Name, s.Gender, s.DateOfBirth, s.ClassName}
		if err := f.SetSheetRow(SheetName, cellName, &row); err != nil {
			return fmt.Errorf("roster: write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("roster: encode workbook: %w", err)
	}
	return nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// dateCell converts an Excel date serial to YYYY-MM-DD and leaves any
// other text untouched.
func dateCell(v string) string {
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t.Format(types.DateLayout)
}

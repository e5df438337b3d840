// Package export reads and writes expense ledgers as CSV and XLSX files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gontzess/expense-tracker/internal/model"
)

// SheetName is the worksheet holding expenses in XLSX files.
const SheetName = "Expenses"

var header = []string{"id", "amount", "memo", "created_on"}

// Row is one validated inbound expense awaiting insertion. The id
// column of the source file is ignored; ids are reassigned on insert.
type Row struct {
	Amount decimal.Decimal
	Memo   string
	Date   time.Time
}

// WriteCSV writes expenses with a header row.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Amount.StringFixed(2),
			e.Memo,
			e.CreatedOn.Format(model.DateLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing expense %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes expenses to a single Expenses worksheet. Amounts
// are written as text so two-decimal formatting survives the trip.
func WriteXLSX(w io.Writer, expenses []model.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	cols := [...]string{"A", "B", "C", "D"}
	for i, h := range header {
		if err := f.SetCellValue(SheetName, cols[i]+"1", h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range expenses {
		values := [...]any{
			e.ID,
			e.Amount.StringFixed(2),
			e.Memo,
			e.CreatedOn.Format(model.DateLayout),
		}
		for c, v := range values {
			cell := fmt.Sprintf("%s%d", cols[c], i+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing expense %d: %w", e.ID, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ReadCSV parses and validates an exported CSV ledger. No rows are
// returned unless every row validates.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked per row

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return parseRecords(records)
}

// ReadXLSX parses and validates the Expenses worksheet.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", SheetName, err)
	}
	return parseRecords(records)
}

func parseRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, errors.New("file has no header row")
	}
	if !isHeader(records[0]) {
		return nil, fmt.Errorf("unexpected header %v, want %v", records[0], header)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRecord(record)
		if err != nil {
			// +2: rows are 1-based and the header is row 1
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isHeader(record []string) bool {
	if len(record) != len(header) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), h) {
			return false
		}
	}
	return true
}

// parseRecord applies the same validation rules as the add command. A
// trailing empty created_on column may be absent entirely (XLSX readers
// trim trailing empty cells); the date then defaults to today.
func parseRecord(record []string) (Row, error) {
	if len(record) < len(header)-1 || len(record) > len(header) {
		return Row{}, fmt.Errorf("want %d columns, got %d", len(header), len(record))
	}

	amount, err := model.ParseAmount(strings.TrimSpace(record[1]))
	if err != nil {
		return Row{}, err
	}

	memo := record[2]
	if err := model.ValidateMemo(memo); err != nil {
		return Row{}, err
	}

	date := model.Today()
	if len(record) == len(header) && strings.TrimSpace(record[3]) != "" {
		date, err = model.ParseDate(strings.TrimSpace(record[3]))
		if err != nil {
			return Row{}, err
		}
	}

	return Row{Amount: amount, Memo: memo, Date: date}, nil
}

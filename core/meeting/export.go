package meeting

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// exportColumns is the fixed spreadsheet column set, one row per meeting.
var exportColumns = []string{"Date", "Dept", "Head", "Objective", "Decisions", "Absentees", "Action Items", "Productive"}

const exportSheet = "Sheet1"

// ExportFilename names the download. The department only names the
// file; exported rows are never filtered.
func ExportFilename(dept string) string {
	if dept == "" {
		dept = "All"
	}
	return fmt.Sprintf("EduLog_%s.xlsx", dept)
}

// WriteWorkbook writes every given meeting to w as an xlsx workbook.
func WriteWorkbook(w io.Writer, meetings []Meeting) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for col, name := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "naming header cell")
		}
		if err = f.SetCellValue(exportSheet, cell, name); err != nil {
			return errors.Wrap(err, "writing header cell")
		}
	}

	for row, m := range meetings {
		values := []string{m.DateOfMeeting, m.Department, m.DepartmentHead, m.Objective, m.KeyDecisions, m.Absentees, m.ActionItems, m.Productive}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return errors.Wrap(err, "naming cell")
			}
			if err = f.SetCellValue(exportSheet, cell, v); err != nil {
				return errors.Wrap(err, "writing cell")
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

// ReadWorkbook parses a workbook previously produced by WriteWorkbook
// back into meetings (export columns only; other fields stay zero).
func ReadWorkbook(r io.Reader) ([]Meeting, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no worksheet found")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "reading rows")
	}
	if len(rows) == 0 {
		return nil, errors.New("worksheet is empty")
	}

	meetings := make([]Meeting, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
		meetings = append(meetings, Meeting{
			DateOfMeeting:  cell(0),
			Department:     cell(1),
			DepartmentHead: cell(2),
			Objective:      cell(3),
			KeyDecisions:   cell(4),
			Absentees:      cell(5),
			ActionItems:    cell(6),
			Productive:     cell(7),
		})
	}
	return meetings, nil
}

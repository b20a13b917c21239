package report

import (
	"checkrrhh-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Events"

// ToXLSX renders the same table as ToDelimitedText into an Excel workbook.
func ToXLSX(events []model.AttendanceEvent) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	if err := writeRow(f, 1, Header); err != nil {
		return nil, err
	}
	for i, e := range events {
		if err := writeRow(f, i+2, Row(e)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}

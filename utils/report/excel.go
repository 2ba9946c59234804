package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Laporan"

// RenderExcel writes the title, period, header row and data rows to a single
// sheet.
func RenderExcel(doc Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(doc.Headers))
	if err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := writeBanner(f, lastCol, doc, titleStyle); err != nil {
		return nil, err
	}

	const headerRow = 4
	for i, h := range doc.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(excelSheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(excelSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle); err != nil {
		return nil, err
	}

	for r, row := range doc.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err := f.SetCellValue(excelSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(excelSheet, "A", "A", 6); err != nil {
		return nil, err
	}
	if len(doc.Headers) > 1 {
		if err := f.SetColWidth(excelSheet, "B", lastCol, 28); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render excel: %w", err)
	}
	return buf.Bytes(), nil
}

// writeBanner fills the merged title and period rows above the table.
func writeBanner(f *excelize.File, lastCol string, doc Document, titleStyle int) error {
	if err := f.SetCellValue(excelSheet, "A1", doc.Title); err != nil {
		return err
	}
	if err := mergeRow(f, lastCol, 1); err != nil {
		return err
	}
	if err := f.SetCellStyle(excelSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(excelSheet, "A2", "Periode: "+doc.Period); err != nil {
		return err
	}
	return mergeRow(f, lastCol, 2)
}

func mergeRow(f *excelize.File, lastCol string, row int) error {
	if lastCol == "A" {
		return nil
	}
	return f.MergeCell(excelSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row))
}

package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"rentacar-backend/internal/domain"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the by-period rental report as a workbook with a
// summary block followed by one row per rental.
func (g *Generator) Generate(from, to time.Time, rows []domain.PeriodRentalRow) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Rentals"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Rental report")
	set("A2", "Period start")
	set("B2", from.Format("2006-01-02"))
	set("A3", "Period end")
	set("B3", to.Format("2006-01-02"))
	set("A4", "Rentals")
	set("B4", len(rows))
	set("A5", "Total")
	set("B5", centsToUnits(totalCents(rows)))

	headerRow := 7
	headers := []string{"ID", "Plate", "Model", "Client", "Start", "End", "Status", "Total"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		set(cell, h)
	}

	for i, r := range rows {
		rowIdx := headerRow + 1 + i
		values := []interface{}{
			r.RentalID,
			r.Plate,
			r.Model,
			r.ClientName,
			r.StartTime.Format("2006-01-02 15:04"),
			r.EndTime.Format("2006-01-02 15:04"),
			string(r.Status),
			centsToUnits(int64(r.TotalCostCents)),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowIdx)
			if err != nil {
				return nil, err
			}
			set(cell, v)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func totalCents(rows []domain.PeriodRentalRow) int64 {
	var sum int64
	for _, r := range rows {
		sum += int64(r.TotalCostCents)
	}
	return sum
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"rentacar-backend/internal/domain"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the by-period rental report as a landscape A4 table.
func (g *Generator) Generate(from, to time.Time, rows []domain.PeriodRentalRow) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetMargins(10, 12, 10)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, "Rental report", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	period := fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	doc.CellFormat(0, 6, "Period: "+period, "", 1, "L", false, 0, "")

	var total int64
	for _, r := range rows {
		total += int64(r.TotalCostCents)
	}
	doc.CellFormat(0, 6, fmt.Sprintf("Rentals: %d   Total: %.2f", len(rows), float64(total)/100), "", 1, "L", false, 0, "")
	doc.Ln(3)

	headers := []string{"ID", "Plate", "Model", "Client", "Start", "End", "Status", "Total"}
	widths := []float64{14, 28, 48, 52, 34, 34, 32, 26}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("%d", r.RentalID),
			r.Plate,
			r.Model,
			r.ClientName,
			r.StartTime.Format("2006-01-02 15:04"),
			r.EndTime.Format("2006-01-02 15:04"),
			string(r.Status),
			fmt.Sprintf("%.2f", float64(r.TotalCostCents)/100),
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

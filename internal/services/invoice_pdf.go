package services

import (
	"bytes"
	"fmt"

	"tailor_shop/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// renderInvoicePDF assembles the single-page invoice document: shop header,
// customer block, items table, totals, and the measurement snapshots for
// the ordered garments.
func renderInvoicePDF(data *InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Shop header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(data.Profile.ShopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if data.Profile.Address != "" {
		pdf.CellFormat(0, 5, tr(data.Profile.Address), "", 1, "C", false, 0, "")
	}
	if data.Profile.Mobile != "" {
		pdf.CellFormat(0, 5, "Mobile: "+data.Profile.Mobile, "", 1, "C", false, 0, "")
	}
	if data.Profile.GSTIn != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+data.Profile.GSTIn, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(180, 180, 180)
	x, y := pdf.GetXY()
	pdf.Line(15, y, 195, y)
	pdf.SetXY(x, y+4)

	// Invoice meta
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(95, 7, "INVOICE #"+data.Order.Ref(), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(85, 7, "Date: "+data.Order.CreatedAt.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 6, "Delivery: "+data.Order.DeliveryDate, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Customer block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Billed To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(data.Customer.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, data.Customer.Mobile, "", 1, "L", false, 0, "")
	if data.Customer.Address != "" {
		pdf.CellFormat(0, 5, tr(data.Customer.Address), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 8, "Price", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range data.Order.Items {
		pdf.CellFormat(90, 8, string(item.GarmentType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("Rs. %.2f", item.Price), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(2)
	writeTotal := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("Rs. %.2f", amount), "", 1, "R", false, 0, "")
	}
	writeTotal("Total", data.Order.TotalAmount, false)
	writeTotal("Advance", data.Order.AdvanceAmount, false)
	writeTotal("Balance", data.Order.BalanceDue(), true)
	pdf.Ln(4)

	// Measurements for the garments on this order
	ordered := make(map[models.GarmentType]bool, len(data.Order.Items))
	for _, item := range data.Order.Items {
		ordered[item.GarmentType] = true
	}
	for _, m := range data.Measurements {
		if !ordered[m.GarmentType] || !m.Values.HasValues() {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, string(m.GarmentType)+" Measurements", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		line := ""
		for _, label := range models.MeasurementLabels[m.GarmentType] {
			if v, ok := m.Values[label]; ok && v != "" {
				if line != "" {
					line += "   "
				}
				line += tr(label) + ": " + tr(v)
			}
		}
		if line != "" {
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

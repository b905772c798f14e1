package invoice

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Render draws the document as an A4 PDF and returns the bytes.
func Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Issuer identity block
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, doc.IssuerName)
	pdf.SetFont("Arial", "", 11)
	for _, line := range doc.IssuerLines {
		pdf.Ln(7)
		pdf.Cell(100, 7, line)
	}
	pdf.Ln(12)

	// Title and order metadata
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, doc.Title)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 7, "Invoice No: "+doc.ShortID)
	pdf.Cell(95, 7, "Order Date: "+doc.OrderDate)
	pdf.Ln(7)
	pdf.Cell(95, 7, "Order ID: "+doc.OrderID)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(95, 7, "Payment: "+doc.PaymentStatus)
	pdf.Ln(12)

	// Recipient block and payment block, side by side
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(95, 7, "Billed To:")
	pdf.Cell(95, 7, "Payment Details:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	rows := len(doc.RecipientLines)
	if len(doc.PaymentLines) > rows {
		rows = len(doc.PaymentLines)
	}
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(doc.RecipientLines) {
			left = doc.RecipientLines[i]
		}
		if i < len(doc.PaymentLines) {
			right = doc.PaymentLines[i]
		}
		pdf.Cell(95, 6, left)
		pdf.Cell(95, 6, right)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Line-item table
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, row := range doc.Rows {
		pdf.CellFormat(90, 8, row.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, row.LineTotal, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Footer totals
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 7, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(35, 7, doc.Subtotal, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 7, "Tax (0%):", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(35, 7, doc.Tax, "", 1, "R", false, 0, "")
	if doc.DepositLabel != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(145, 7, doc.DepositLabel+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(35, 7, doc.Deposit, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(145, 9, "Grand Total:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(35, 9, doc.GrandTotal, "T", 1, "R", false, 0, "")

	// Terms
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(100, 7, "Terms & Conditions")
	pdf.SetFont("Arial", "", 9)
	for _, term := range doc.Terms {
		pdf.Ln(5)
		pdf.Cell(0, 5, term)
	}

	// Footer timestamp
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, doc.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

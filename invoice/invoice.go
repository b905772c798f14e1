// Package invoice renders a fixed-layout PDF summarizing one placed order.
// Building the document is split from drawing it so totals and formatting
// stay testable without parsing PDF output.
package invoice

import (
	"fmt"
	"time"

	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
)

// Row is one rendered line item.
type Row struct {
	Description string
	Quantity    int
	UnitPrice   string
	LineTotal   string
	linePaise   int64
}

// Document is the fully computed invoice content, in render order.
type Document struct {
	IssuerName  string
	IssuerLines []string

	Title string

	OrderID       string
	ShortID       string
	OrderDate     string
	PaymentStatus string

	RecipientLines []string
	PaymentLines   []string

	Rows []Row

	SubtotalPaise   int64
	Subtotal        string
	Tax             string
	DepositLabel    string // empty unless partial COD
	Deposit         string
	GrandTotalPaise int64
	GrandTotal      string

	Terms       []string
	GeneratedAt string

	Filename string
}

// Build computes the invoice document for an order. The grand total is the
// order's recorded total_amount exactly; it was fixed at order-creation time
// and any drift here would be a defect, not rounding.
func Build(order *models.Order, now time.Time) *Document {
	doc := &Document{
		IssuerName: utils.AppName,
		IssuerLines: []string{
			utils.StoreAddress,
			fmt.Sprintf("Email: %s | Phone: %s", utils.StoreEmail, utils.StorePhone),
		},
		Title:         "TAX INVOICE",
		OrderID:       order.ID,
		ShortID:       utils.ShortOrderID(order.ID),
		OrderDate:     order.CreatedAt.Format("02 Jan 2006 15:04"),
		PaymentStatus: order.PaymentStatus,
		RecipientLines: []string{
			order.Name,
			order.Address,
			"Pincode: " + order.Pincode,
			"Phone: " + order.Contact,
			order.Email,
		},
		Terms: []string{
			"Goods once sold are returnable only within 7 days of delivery.",
			"Deposits paid under partial cash-on-delivery are non-refundable once the order ships.",
			"All disputes are subject to Bengaluru jurisdiction.",
		},
		GeneratedAt: "Generated on " + now.Format("02 Jan 2006 15:04:05"),
		Filename:    fmt.Sprintf("Invoice-%s.pdf", utils.ShortOrderID(order.ID)),
	}

	doc.PaymentLines = []string{
		"Payment Method: " + paymentMethodLabel(order.PaymentMethod),
		"Transaction Ref: " + orDash(order.RazorpayPaymentID),
		"Gateway Order: " + orDash(order.RazorpayOrderID),
	}

	for _, item := range order.Items {
		linePaise := item.UnitPrice * int64(item.Quantity)
		doc.Rows = append(doc.Rows, Row{
			Description: item.Title,
			Quantity:    item.Quantity,
			UnitPrice:   utils.FormatRupees(item.UnitPrice),
			LineTotal:   utils.FormatRupees(linePaise),
			linePaise:   linePaise,
		})
		doc.SubtotalPaise += linePaise
	}

	doc.Subtotal = utils.FormatRupees(doc.SubtotalPaise)
	doc.Tax = utils.FormatRupees(0)
	if order.IsPartialCOD {
		doc.DepositLabel = "Partial COD Deposit"
		doc.Deposit = utils.FormatRupees(utils.PartialCODDeposit)
	}
	doc.GrandTotalPaise = order.TotalAmount
	doc.GrandTotal = utils.FormatRupees(order.TotalAmount)

	return doc
}

func paymentMethodLabel(method string) string {
	switch method {
	case models.PaymentMethodPartialCOD:
		return "Partial COD (deposit paid online)"
	case models.PaymentMethodFullOnline:
		return "Online (paid in full)"
	default:
		return method
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/curiokart/CurioKart/models"
)

// SendOrderConfirmation mails the buyer after an order is placed. Failures
// are the caller's to log; a missed mail never affects the placed order.
func SendOrderConfirmation(order *models.Order) error {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", order.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your %s order %s is confirmed", AppName, ShortOrderID(order.ID)))

	var itemRows string
	for _, item := range order.Items {
		itemRows += fmt.Sprintf(
			"<tr><td>%s</td><td align=\"center\">%d</td><td align=\"right\">%s</td></tr>",
			item.Title, item.Quantity, FormatRupees(item.UnitPrice*int64(item.Quantity)),
		)
	}

	paymentNote := "Paid in full online."
	if order.IsPartialCOD {
		paymentNote = fmt.Sprintf(
			"Deposit of %s paid online. The remaining %s is collected on delivery.",
			FormatRupees(PartialCODDeposit), FormatRupees(order.TotalAmount-PartialCODDeposit),
		)
	}

	body := fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>Your order <b>%s</b> has been placed.</p>
		<table border="0" cellpadding="4">
			<tr><th align="left">Item</th><th>Qty</th><th align="right">Total</th></tr>
			%s
			<tr><td colspan="2"><b>Order total</b></td><td align="right"><b>%s</b></td></tr>
		</table>
		<p>%s</p>
		<p>We will email you again when your order ships.</p>
	`, order.Name, ShortOrderID(order.ID), itemRows, FormatRupees(order.TotalAmount), paymentNote)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

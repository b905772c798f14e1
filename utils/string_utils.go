package utils

import (
	"strings"
)

// ShortOrderID is the human-facing form of an order ID: the first 8
// characters, uppercased. It also suffixes the invoice filename.
func ShortOrderID(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}
	return strings.ToUpper(orderID)
}

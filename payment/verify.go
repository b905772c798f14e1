package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the HMAC-SHA256 hex digest the gateway signs callbacks
// with: the digest of "<order_id>|<payment_id>" under the key secret.
func Signature(razorpayOrderID, razorpayPaymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(razorpayOrderID + "|" + razorpayPaymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature recomputes the callback signature and compares it in
// constant time. Any mismatch is just "not verified" - no partial-match
// information is exposed. The signing secret never leaves the server.
func VerifySignature(callback Callback, secret string) bool {
	expected := Signature(callback.RazorpayOrderID, callback.RazorpayPaymentID, secret)
	return hmac.Equal([]byte(expected), []byte(callback.RazorpaySignature))
}

package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignatureAcceptsMatchingDigest(t *testing.T) {
	secret := "test_secret"
	callback := Callback{
		RazorpayOrderID:   "order_Nxq1aB2cD3eF4g",
		RazorpayPaymentID: "pay_Hxq5iJ6kL7mN8o",
	}
	callback.RazorpaySignature = Signature(callback.RazorpayOrderID, callback.RazorpayPaymentID, secret)

	assert.True(t, VerifySignature(callback, secret))
}

func TestVerifySignatureRejectsSingleCharacterChange(t *testing.T) {
	secret := "test_secret"
	good := Signature("order_abc", "pay_def", secret)
	require.NotEmpty(t, good)

	// Flip one hex character.
	mutated := []byte(good)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}

	callback := Callback{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_def",
		RazorpaySignature: string(mutated),
	}
	assert.False(t, VerifySignature(callback, secret))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	callback := Callback{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_def",
	}
	callback.RazorpaySignature = Signature(callback.RazorpayOrderID, callback.RazorpayPaymentID, "secret_a")

	assert.False(t, VerifySignature(callback, "secret_b"))
}

func TestVerifySignatureRejectsSwappedIDs(t *testing.T) {
	secret := "test_secret"
	callback := Callback{
		RazorpayOrderID:   "pay_def",
		RazorpayPaymentID: "order_abc",
		RazorpaySignature: Signature("order_abc", "pay_def", secret),
	}
	assert.False(t, VerifySignature(callback, secret))
}

func TestSignatureIsHexSHA256(t *testing.T) {
	sig := Signature("order_abc", "pay_def", "test_secret")
	assert.Len(t, sig, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", sig)
}

package checkout

import (
	"testing"

	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmountsFullOnline(t *testing.T) {
	amounts, err := ComputeAmounts(50000, models.PaymentMethodFullOnline)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), amounts.Subtotal)
	assert.Equal(t, int64(50000), amounts.AmountDueNow)
	assert.Equal(t, int64(0), amounts.AmountOwedLater)
	assert.Equal(t, int64(50000), amounts.TotalAmount)
}

func TestComputeAmountsPartialCOD(t *testing.T) {
	// A 500.00 cart charges the 50.00 deposit now; the full subtotal stays
	// owed on delivery and the recorded total grows by the deposit.
	amounts, err := ComputeAmounts(50000, models.PaymentMethodPartialCOD)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), amounts.Subtotal)
	assert.Equal(t, utils.PartialCODDeposit, amounts.AmountDueNow)
	assert.Equal(t, int64(50000), amounts.AmountOwedLater)
	assert.Equal(t, int64(55000), amounts.TotalAmount)
}

func TestComputeAmountsRejectsEmptyCart(t *testing.T) {
	for _, method := range []string{models.PaymentMethodFullOnline, models.PaymentMethodPartialCOD} {
		_, err := ComputeAmounts(0, method)
		assert.ErrorIs(t, err, ErrEmptyCart)
		_, err = ComputeAmounts(-100, method)
		assert.ErrorIs(t, err, ErrEmptyCart)
	}
}

func TestComputeAmountsRejectsUnknownMethod(t *testing.T) {
	_, err := ComputeAmounts(50000, "cheque")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

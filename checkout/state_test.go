package checkout

import (
	"testing"

	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotLines() []cart.Line {
	return []cart.Line{
		{ProductID: 1, Title: "Robot Builder Kit", UnitPrice: 10000, Quantity: 2},
		{ProductID: 2, Title: "Junior Chemistry Set", UnitPrice: 25000, Quantity: 1},
	}
}

func TestDraftHappyPath(t *testing.T) {
	draft := NewDraft("draft-1")
	assert.Equal(t, StateCollectingDetails, draft.State)

	form := validForm()
	require.NoError(t, draft.SubmitDetails(form))
	assert.Equal(t, StateReviewingPayment, draft.State)
	assert.Equal(t, form, draft.Form)

	amounts, err := ComputeAmounts(45000, models.PaymentMethodPartialCOD)
	require.NoError(t, err)
	require.NoError(t, draft.OpenGateway(models.PaymentMethodPartialCOD, amounts, snapshotLines(), "order_abc"))
	assert.Equal(t, StateAwaitingGatewayResult, draft.State)
	assert.Equal(t, "order_abc", draft.RazorpayOrderID)
	assert.Equal(t, snapshotLines(), draft.Lines)

	require.NoError(t, draft.Complete())
	assert.Equal(t, StatePlaced, draft.State)
}

func TestDraftBackPreservesForm(t *testing.T) {
	draft := NewDraft("draft-1")
	form := validForm()
	require.NoError(t, draft.SubmitDetails(form))

	require.NoError(t, draft.Back())
	assert.Equal(t, StateCollectingDetails, draft.State)
	assert.Equal(t, form, draft.Form)

	// Resubmitting after a back is a legal round trip.
	require.NoError(t, draft.SubmitDetails(form))
	assert.Equal(t, StateReviewingPayment, draft.State)
}

func TestDraftFailReturnsToReview(t *testing.T) {
	draft := NewDraft("draft-1")
	require.NoError(t, draft.SubmitDetails(validForm()))
	amounts, err := ComputeAmounts(45000, models.PaymentMethodFullOnline)
	require.NoError(t, err)
	require.NoError(t, draft.OpenGateway(models.PaymentMethodFullOnline, amounts, snapshotLines(), "order_abc"))

	require.NoError(t, draft.Fail())
	assert.Equal(t, StateReviewingPayment, draft.State)
	assert.Empty(t, draft.RazorpayOrderID)
	assert.Empty(t, draft.Lines)
	assert.Equal(t, validForm(), draft.Form)
}

func TestDraftRejectsIllegalTransitions(t *testing.T) {
	amounts := Amounts{Subtotal: 50000, AmountDueNow: 50000, TotalAmount: 50000}

	tests := []struct {
		name string
		run  func(d *Draft) error
	}{
		{"back from details", func(d *Draft) error {
			return d.Back()
		}},
		{"open gateway from details", func(d *Draft) error {
			return d.OpenGateway(models.PaymentMethodFullOnline, amounts, snapshotLines(), "order_abc")
		}},
		{"complete from details", func(d *Draft) error {
			return d.Complete()
		}},
		{"fail from details", func(d *Draft) error {
			return d.Fail()
		}},
		{"submit details twice", func(d *Draft) error {
			if err := d.SubmitDetails(validForm()); err != nil {
				return err
			}
			return d.SubmitDetails(validForm())
		}},
		{"complete without gateway", func(d *Draft) error {
			if err := d.SubmitDetails(validForm()); err != nil {
				return err
			}
			return d.Complete()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(NewDraft("draft-1"))
			var transitionErr *TransitionError
			require.ErrorAs(t, err, &transitionErr)
		})
	}
}

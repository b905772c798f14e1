package controllers

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/payment"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })
	return db
}

// initiatedClient walks a seeded cart through details and payment initiation,
// leaving the draft awaiting the gateway result with a 45,000 paise snapshot.
func initiatedClient(t *testing.T, storage cart.Storage, method string) *sessionClient {
	t.Helper()
	client := &sessionClient{router: newCheckoutRouter(storage, &fakeGateway{})}

	code, _ := client.do(t, http.MethodPost, "/checkout/details", detailsPayload())
	require.Equal(t, http.StatusOK, code)
	code, _ = client.do(t, http.MethodPost, "/checkout/payment/initiate", gin.H{
		"payment_method": method,
	})
	require.Equal(t, http.StatusOK, code)
	return client
}

func signedCallback(secret string) gin.H {
	return gin.H{
		"razorpay_order_id":   "order_test123",
		"razorpay_payment_id": "pay_test456",
		"razorpay_signature":  payment.Signature("order_test123", "pay_test456", secret),
	}
}

func TestConfirmPaymentPlacesOrder(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "test_secret")
	db := newTestDB(t)
	storage := cart.NewMemoryStorage()
	seedCart(t, storage)
	client := initiatedClient(t, storage, models.PaymentMethodFullOnline)

	code, body := client.do(t, http.MethodPost, "/checkout/payment/confirm", signedCallback("test_secret"))
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(45000), data["total_amount"])
	assert.Equal(t, models.PaymentStatusPaid, data["payment_status"])
	assert.Equal(t, "pay_test456", data["razorpay_payment_id"])

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", data["order_id"]).Error)
	assert.Equal(t, testUser.ID, order.UserID)
	assert.Equal(t, int64(45000), order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "order_test123", order.RazorpayOrderID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, order.TotalAmount, order.ItemsTotal())

	// Cart cleared exactly once, draft gone.
	lines, err := storage.Load(context.Background(), testUser.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	code, _ = client.do(t, http.MethodGet, "/checkout/review", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestConfirmPaymentUsesSnapshotFromInitiation(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "test_secret")
	db := newTestDB(t)
	storage := cart.NewMemoryStorage()
	seedCart(t, storage)
	client := initiatedClient(t, storage, models.PaymentMethodPartialCOD)

	// Another open view mutates the cart while the hosted checkout is up.
	require.NoError(t, storage.Save(context.Background(), testUser.ID, []cart.Line{
		{ProductID: 3, Title: "Telescope Explorer 70mm", UnitPrice: 500000, Quantity: 1},
	}))

	code, body := client.do(t, http.MethodPost, "/checkout/payment/confirm", signedCallback("test_secret"))
	require.Equal(t, http.StatusOK, code)

	// The order holds the snapshot the amounts were fixed against, not the
	// mutated cart, so total = items + deposit still holds.
	orderID := body["data"].(map[string]interface{})["order_id"]
	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", orderID).Error)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(45000), order.ItemsTotal())
	assert.Equal(t, int64(45000+utils.PartialCODDeposit), order.TotalAmount)
	assert.True(t, order.IsPartialCOD)
	assert.Equal(t, models.PaymentStatusPartial, order.PaymentStatus)
}

func TestConfirmPaymentPersistFailureKeepsCartAndDraft(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "test_secret")
	db := newTestDB(t)
	storage := cart.NewMemoryStorage()
	seedCart(t, storage)
	client := initiatedClient(t, storage, models.PaymentMethodFullOnline)

	// Make the insert fail after the signature verifies.
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}, &models.Order{}))

	code, body := client.do(t, http.MethodPost, "/checkout/payment/confirm", signedCallback("test_secret"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, utils.ErrOrderNotRecorded, body["message"])
	paymentID := body["data"].(map[string]interface{})["error"].(map[string]interface{})["razorpay_payment_id"]
	assert.Equal(t, "pay_test456", paymentID)

	// Cart and draft survive so a manual retry is possible.
	lines, err := storage.Load(context.Background(), testUser.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	code, _ = client.do(t, http.MethodPost, "/checkout/payment/confirm", signedCallback("test_secret"))
	assert.Equal(t, http.StatusOK, code)
}

func TestConfirmPaymentWrongSecretNeverPlacesOrder(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "test_secret")
	db := newTestDB(t)
	storage := cart.NewMemoryStorage()
	seedCart(t, storage)
	client := initiatedClient(t, storage, models.PaymentMethodFullOnline)

	code, _ := client.do(t, http.MethodPost, "/checkout/payment/confirm", signedCallback("wrong_secret"))
	assert.Equal(t, http.StatusBadRequest, code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

package api

import (
	"net/http"
	"strings"
	"testing"

	"eprasadam/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")

	body := s.placeOrder(token, 650)
	assert.Equal(t, true, body["success"])
	paymentOrderID := body["payment_order_id"].(string)
	assert.True(t, strings.HasSuffix(paymentOrderID, "_PAY"))

	// The order row holds the snapshot and is awaiting payment
	var order domain.Order
	require.NoError(t, s.db.First(&order, uint(body["order_id"].(float64))).Error)
	assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
	assert.Equal(t, "A Devotee", order.UserName)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 650.0, order.TotalAmount)
	// The external code is 8 uppercase characters
	assert.Len(t, order.OrderCode, 8)
	assert.Equal(t, strings.ToUpper(order.OrderCode), order.OrderCode)
	assert.Equal(t, order.OrderCode+"_PAY", paymentOrderID)

	// Exactly one companion payment exists, pending, in INR
	var payments []domain.Payment
	require.NoError(t, s.db.Where("order_id = ?", order.ID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.PaymentStatusPending, payments[0].Status)
	assert.Equal(t, "INR", payments[0].Currency)
	assert.Equal(t, 650.0, payments[0].Amount)
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")

	base := func() gin.H {
		return gin.H{
			"user_name":    "A Devotee",
			"user_email":   "devotee@x.com",
			"user_phone":   "9876543210",
			"user_address": "Varanasi",
			"items":        []gin.H{{"name": "Laddu", "quantity": 1, "price": 100}},
			"total_amount": 100,
		}
	}

	cases := []struct {
		name   string
		mutate func(gin.H)
		want   string
	}{
		{"missing name", func(b gin.H) { b["user_name"] = " " }, "user_name is required"},
		{"missing address", func(b gin.H) { delete(b, "user_address") }, "user_address is required"},
		{"no items", func(b gin.H) { b["items"] = []gin.H{} }, "items are required"},
		{"blank item name", func(b gin.H) { b["items"] = []gin.H{{"name": " ", "quantity": 1, "price": 100}} }, "item name is required"},
		{"zero quantity", func(b gin.H) { b["items"] = []gin.H{{"name": "Laddu", "quantity": 0, "price": 100}} }, "item quantity must be at least 1"},
		{"negative price", func(b gin.H) { b["items"] = []gin.H{{"name": "Laddu", "quantity": 1, "price": -5}} }, "item price must not be negative"},
		{"total mismatch", func(b gin.H) { b["total_amount"] = 999 }, "total_amount does not match items"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := base()
			tc.mutate(body)
			w := s.do(http.MethodPost, "/api/create-order", body, token)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, decode(t, w)["message"])

			// Nothing was persisted
			var count int64
			require.NoError(t, s.db.Model(&domain.Order{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")
	placed := s.placeOrder(token, 650)
	paymentOrderID := placed["payment_order_id"].(string)

	w := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": paymentOrderID,
		"payment_id":       "pay_abc",
		"payment_method":   "upi",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "pay_abc", body["payment_id"])

	// Both rows advanced
	var pay domain.Payment
	require.NoError(t, s.db.Where("payment_order_id = ?", paymentOrderID).First(&pay).Error)
	assert.Equal(t, domain.PaymentStatusCompleted, pay.Status)
	assert.Equal(t, "pay_abc", pay.PaymentID)
	assert.Equal(t, "upi", pay.PaymentMethod)

	var order domain.Order
	require.NoError(t, s.db.First(&order, pay.OrderID).Error)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
}

func TestVerifyPaymentDefaults(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")
	placed := s.placeOrder(token, 650)

	// No payment_id or method supplied; the provider fabricates them
	w := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": placed["payment_order_id"],
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(decode(t, w)["payment_id"].(string), "demo_payment_"))

	var pay domain.Payment
	require.NoError(t, s.db.Where("payment_order_id = ?", placed["payment_order_id"]).First(&pay).Error)
	assert.Equal(t, "card", pay.PaymentMethod)
}

func TestVerifyPaymentNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")

	w := s.do(http.MethodPost, "/api/verify-payment", gin.H{"payment_order_id": "NOPE_PAY"}, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Payment not found", decode(t, w)["message"])
}

func TestVerifyPaymentWrongUser(t *testing.T) {
	s := newTestServer(t)
	owner := s.register("A", "a@x.com", "1", "p")
	other := s.register("B", "b@x.com", "2", "q")
	placed := s.placeOrder(owner, 650)

	w := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": placed["payment_order_id"],
	}, other)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized access", decode(t, w)["message"])

	// Nothing advanced
	var pay domain.Payment
	require.NoError(t, s.db.Where("payment_order_id = ?", placed["payment_order_id"]).First(&pay).Error)
	assert.Equal(t, domain.PaymentStatusPending, pay.Status)
}

func TestVerifyPaymentIdempotent(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")
	placed := s.placeOrder(token, 650)

	first := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": placed["payment_order_id"],
		"payment_id":       "pay_abc",
	}, token)
	require.Equal(t, http.StatusOK, first.Code)

	// A second verification reports the stored id and changes nothing
	second := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": placed["payment_order_id"],
		"payment_id":       "pay_other",
	}, token)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "pay_abc", decode(t, second)["payment_id"])

	var pay domain.Payment
	require.NoError(t, s.db.Where("payment_order_id = ?", placed["payment_order_id"]).First(&pay).Error)
	assert.Equal(t, "pay_abc", pay.PaymentID)
	assert.Equal(t, domain.PaymentStatusCompleted, pay.Status)
}

func TestMyOrders(t *testing.T) {
	s := newTestServer(t)
	mine := s.register("A", "a@x.com", "1", "p")
	other := s.register("B", "b@x.com", "2", "q")

	s.placeOrder(mine, 650)
	s.placeOrder(other, 650)

	w := s.do(http.MethodGet, "/api/my-orders", nil, mine)
	require.Equal(t, http.StatusOK, w.Code)

	// Only the caller's order is visible
	orders := decode(t, w)["orders"].([]any)
	require.Len(t, orders, 1)
	order := orders[0].(map[string]any)
	assert.Equal(t, "payment_pending", order["status"])
	assert.Equal(t, "pending", order["payment_status"])
	assert.Equal(t, 650.0, order["total_amount"])
	assert.Len(t, order["items"].([]any), 2)
	assert.NotEmpty(t, order["created_at"])
}

func TestMyOrdersWithoutPaymentRow(t *testing.T) {
	s := newTestServer(t)
	token := s.register("A", "a@x.com", "1", "p")
	placed := s.placeOrder(token, 650)

	// Remove the companion payment to exercise the N/A branch
	require.NoError(t, s.db.Where("order_id = ?", uint(placed["order_id"].(float64))).Delete(&domain.Payment{}).Error)

	w := s.do(http.MethodGet, "/api/my-orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode(t, w)["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, "N/A", orders[0].(map[string]any)["payment_status"])
}

func TestOrderRoundTrip(t *testing.T) {
	s := newTestServer(t)

	// register -> login -> create-order -> verify-payment -> my-orders
	s.register("A", "a@x.com", "1", "secret123")
	login := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "a@x.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, login.Code)
	token := decode(t, login)["token"].(string)

	placed := s.placeOrder(token, 650)
	verify := s.do(http.MethodPost, "/api/verify-payment", gin.H{
		"payment_order_id": placed["payment_order_id"],
	}, token)
	require.Equal(t, http.StatusOK, verify.Code)

	w := s.do(http.MethodGet, "/api/my-orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode(t, w)["orders"].([]any)
	require.Len(t, orders, 1)
	order := orders[0].(map[string]any)
	assert.Equal(t, "confirmed", order["status"])
	assert.Equal(t, "completed", order["payment_status"])
}

package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"froakie_tcg_back_end/internal/config"
	"froakie_tcg_back_end/internal/mocks"
	"froakie_tcg_back_end/internal/models"
	"froakie_tcg_back_end/internal/payment"
	"froakie_tcg_back_end/internal/store"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/create-order", h.Create)
	r.POST("/api/verify-payment", h.Verify)
	r.GET("/api/orders", h.List)
	r.GET("/api/orders/:id", h.Get)
	return r
}

func validCreateOrderBody() string {
	return `{
		"amount": 345.97,
		"currency": "INR",
		"customerInfo": {
			"name": "Ravi Kumar",
			"email": "ravi@example.com",
			"phone": "+919876543210",
			"address": {
				"line1": "12 MG Road",
				"city": "Bengaluru",
				"state": "Karnataka",
				"pincode": "560001"
			},
			"deliveryType": "standard",
			"deliveryCharge": 49,
			"tax": 15.99
		},
		"items": [
			{"productId": "p1", "name": "Charizard VMAX", "price": 299.99, "quantity": 1}
		]
	}`
}

func TestCreateOrder(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)
	products := new(mocks.MockProductStore)

	gateway.On("CreateOrder", 345.97, "INR", "Ravi Kumar", "ravi@example.com").
		Return(map[string]interface{}{"id": "order_ABC", "amount": 34597, "currency": "INR"}, nil)

	var saved *models.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Order)
			saved.Status = models.OrderStatusPending
		})

	h := NewOrderHandler(orders, products, gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/create-order", validCreateOrderBody())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["orderId"].(string), "ORD_"))
	razorpayOrder := body["razorpayOrder"].(map[string]interface{})
	assert.Equal(t, "order_ABC", razorpayOrder["id"])

	// La commande persistée corrèle l'ordre Razorpay et snapshotte le client
	require.NotNil(t, saved)
	assert.Equal(t, "order_ABC", saved.RazorpayOrderID)
	assert.Equal(t, 345.97, saved.Amount)
	assert.Equal(t, 345.97, saved.Total)
	assert.Equal(t, "standard", saved.DeliveryType)
	assert.Equal(t, 49.0, saved.DeliveryCharge)
	assert.Equal(t, 15.99, saved.Tax)
	assert.Equal(t, "Ravi Kumar", saved.Customer.Name)
	assert.Len(t, saved.Items, 1)

	gateway.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)

	gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("razorpay indisponible"))

	h := NewOrderHandler(orders, new(mocks.MockProductStore), gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/create-order", validCreateOrderBody())

	// Échec passerelle : rien n'est persisté
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)

	// deliveryType manquant : la validation échoue avant l'appel passerelle
	body := `{"amount": 10, "customerInfo": {"name": "A", "email": "a@b.com"}, "items": []}`

	h := NewOrderHandler(orders, new(mocks.MockProductStore), gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/create-order", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyPayment_Valid(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)
	products := new(mocks.MockProductStore)

	gateway.On("VerifyPaymentSignature", "order_ABC", "pay_XYZ", "sig").Return(true)
	orders.On("MarkPaid", mock.Anything, "order_ABC", "pay_XYZ", "sig").
		Return(&models.Order{
			OrderID:         "ORD_1700000000000",
			RazorpayOrderID: "order_ABC",
			Status:          models.OrderStatusPaid,
			Items: []models.OrderItem{
				{ProductID: "p1", Name: "Charizard VMAX", Price: 299.99, Quantity: 2},
				{ProductID: "p2", Name: "Pikachu VMAX", Price: 89.99, Quantity: 1},
			},
		}, nil)
	products.On("AdjustStock", mock.Anything, "p1", -2).Return(&models.Product{}, nil)
	products.On("AdjustStock", mock.Anything, "p2", -1).Return(&models.Product{}, nil)

	h := NewOrderHandler(orders, products, gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/verify-payment",
		`{"razorpay_order_id": "order_ABC", "razorpay_payment_id": "pay_XYZ", "razorpay_signature": "sig", "orderId": "ORD_1700000000000"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Payment verified successfully", body["message"])
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "paid", order["status"])

	// Chaque ligne de commande décrémente le stock de sa quantité
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)
	products := new(mocks.MockProductStore)

	gateway.On("VerifyPaymentSignature", "order_ABC", "pay_XYZ", "forged").Return(false)
	orders.On("MarkFailed", mock.Anything, "order_ABC").Return(nil)

	h := NewOrderHandler(orders, products, gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/verify-payment",
		`{"razorpay_order_id": "order_ABC", "razorpay_payment_id": "pay_XYZ", "razorpay_signature": "forged"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid payment signature", body["message"])

	// Signature invalide : la commande passe en failed, le stock est intact
	orders.AssertExpectations(t)
	products.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPayment_OrderNotFound(t *testing.T) {
	gateway := new(mocks.MockPaymentGateway)
	orders := new(mocks.MockOrderStore)

	gateway.On("VerifyPaymentSignature", "order_GONE", "pay_XYZ", "sig").Return(true)
	orders.On("MarkPaid", mock.Anything, "order_GONE", "pay_XYZ", "sig").Return(nil, store.ErrNotFound)

	h := NewOrderHandler(orders, new(mocks.MockProductStore), gateway, nil)
	w := performRequest(orderRouter(h), http.MethodPost, "/api/verify-payment",
		`{"razorpay_order_id": "order_GONE", "razorpay_payment_id": "pay_XYZ", "razorpay_signature": "sig"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeBody(t, w)["message"])
}

// Vérification de bout en bout avec la vraie passerelle : seule la
// signature HMAC exacte déclenche la transition pending → paid.
func TestVerifyPayment_RealSignature(t *testing.T) {
	gateway := payment.NewGateway(&config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "s3cr3t",
	})
	orders := new(mocks.MockOrderStore)
	products := new(mocks.MockProductStore)

	mac := hmac.New(sha256.New, []byte("s3cr3t"))
	mac.Write([]byte("order_ABC|pay_XYZ"))
	signature := hex.EncodeToString(mac.Sum(nil))

	orders.On("MarkPaid", mock.Anything, "order_ABC", "pay_XYZ", signature).
		Return(&models.Order{
			Status: models.OrderStatusPaid,
			Items:  []models.OrderItem{{ProductID: "p1", Quantity: 1}},
		}, nil)
	products.On("AdjustStock", mock.Anything, "p1", -1).Return(&models.Product{}, nil)

	h := NewOrderHandler(orders, products, gateway, nil)
	payload, _ := json.Marshal(map[string]string{
		"razorpay_order_id":   "order_ABC",
		"razorpay_payment_id": "pay_XYZ",
		"razorpay_signature":  signature,
		"orderId":             "ORD_1",
	})
	w := performRequest(orderRouter(h), http.MethodPost, "/api/verify-payment", string(payload))

	assert.Equal(t, http.StatusOK, w.Code)
	products.AssertExpectations(t)

	// Toute autre signature aboutit en failed
	orders.On("MarkFailed", mock.Anything, "order_ABC").Return(nil)
	w = performRequest(orderRouter(h), http.MethodPost, "/api/verify-payment",
		`{"razorpay_order_id": "order_ABC", "razorpay_payment_id": "pay_XYZ", "razorpay_signature": "0000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	orders := new(mocks.MockOrderStore)
	orders.On("List", mock.Anything, "paid", int64(2)).Return([]models.Order{
		{OrderID: "ORD_2", Status: models.OrderStatusPaid},
		{OrderID: "ORD_1", Status: models.OrderStatusPaid},
	}, nil)

	h := NewOrderHandler(orders, new(mocks.MockProductStore), new(mocks.MockPaymentGateway), nil)
	w := performRequest(orderRouter(h), http.MethodGet, "/api/orders?status=paid&limit=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	for _, o := range body["orders"].([]interface{}) {
		assert.Equal(t, "paid", o.(map[string]interface{})["status"])
	}
}

func TestListOrders_DefaultLimit(t *testing.T) {
	orders := new(mocks.MockOrderStore)
	orders.On("List", mock.Anything, "", int64(50)).Return([]models.Order{}, nil)

	h := NewOrderHandler(orders, new(mocks.MockProductStore), new(mocks.MockPaymentGateway), nil)
	w := performRequest(orderRouter(h), http.MethodGet, "/api/orders", "")

	assert.Equal(t, http.StatusOK, w.Code)
	orders.AssertExpectations(t)
}

func TestGetOrder(t *testing.T) {
	orders := new(mocks.MockOrderStore)
	orders.On("FindByOrderID", mock.Anything, "ORD_1700000000000").
		Return(&models.Order{OrderID: "ORD_1700000000000", Status: models.OrderStatusPending}, nil)

	h := NewOrderHandler(orders, new(mocks.MockProductStore), new(mocks.MockPaymentGateway), nil)
	w := performRequest(orderRouter(h), http.MethodGet, "/api/orders/ORD_1700000000000", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "ORD_1700000000000", order["orderId"])
}

func TestGetOrder_NotFound(t *testing.T) {
	orders := new(mocks.MockOrderStore)
	orders.On("FindByOrderID", mock.Anything, "ORD_none").Return(nil, store.ErrNotFound)

	h := NewOrderHandler(orders, new(mocks.MockProductStore), new(mocks.MockPaymentGateway), nil)
	w := performRequest(orderRouter(h), http.MethodGet, "/api/orders/ORD_none", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeBody(t, w)["message"])
}

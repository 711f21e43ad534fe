package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"froakie_tcg_back_end/internal/models"
)

// Mocks testify des interfaces consommées par les handlers.

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	var products []models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]models.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	args := m.Called(ctx, id, fields)
	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductStore) AdjustStock(ctx context.Context, id string, delta int) (*models.Product, error) {
	args := m.Called(ctx, id, delta)
	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStore) InsertMany(ctx context.Context, products []models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderStore) FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.Order, error) {
	args := m.Called(ctx, razorpayOrderID)
	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderStore) List(ctx context.Context, status string, limit int64) ([]models.Order, error) {
	args := m.Called(ctx, status, limit)
	var orders []models.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]models.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderStore) MarkPaid(ctx context.Context, razorpayOrderID, paymentID, signature string) (*models.Order, error) {
	args := m.Called(ctx, razorpayOrderID, paymentID, signature)
	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderStore) MarkFailed(ctx context.Context, razorpayOrderID string) error {
	args := m.Called(ctx, razorpayOrderID)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(amount float64, currency, customerName, customerEmail string) (map[string]interface{}, error) {
	args := m.Called(amount, currency, customerName, customerEmail)
	var order map[string]interface{}
	if args.Get(0) != nil {
		order = args.Get(0).(map[string]interface{})
	}
	return order, args.Error(1)
}

func (m *MockPaymentGateway) VerifyPaymentSignature(razorpayOrderID, razorpayPaymentID, signature string) bool {
	args := m.Called(razorpayOrderID, razorpayPaymentID, signature)
	return args.Bool(0)
}

func (m *MockPaymentGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOrderConfirmation(order models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

package handlers

import (
	"context"

	"froakie_tcg_back_end/internal/models"
)

// Interfaces consommées par les handlers — implémentées par internal/store
// et internal/payment, mockées dans internal/mocks pour les tests.

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (*models.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []models.Product) error
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.Order, error)
	List(ctx context.Context, status string, limit int64) ([]models.Order, error)
	MarkPaid(ctx context.Context, razorpayOrderID, paymentID, signature string) (*models.Order, error)
	MarkFailed(ctx context.Context, razorpayOrderID string) error
}

type PaymentGateway interface {
	CreateOrder(amount float64, currency, customerName, customerEmail string) (map[string]interface{}, error)
	VerifyPaymentSignature(razorpayOrderID, razorpayPaymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// Mailer envoie la confirmation de commande. Peut être nil : l'e-mail est
// un à-côté best-effort, jamais une condition du paiement.
type Mailer interface {
	SendOrderConfirmation(order models.Order) error
}

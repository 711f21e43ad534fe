package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts possibles d'une commande. Seules les transitions
// pending → paid et pending → failed sont effectuées par le serveur ;
// refunded est géré manuellement côté passerelle.
const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusFailed   = "failed"
	OrderStatusRefunded = "refunded"
)

type Address struct {
	Line1    string `bson:"line1" json:"line1"`
	Line2    string `bson:"line2,omitempty" json:"line2,omitempty"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`
}

type Customer struct {
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Phone   string  `bson:"phone" json:"phone"`
	Address Address `bson:"address" json:"address"`
}

// OrderItem est un instantané dénormalisé du produit au moment de la
// commande — il ne suit pas les modifications ultérieures du catalogue.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order est une commande client. RazorpayOrderID est la clé de corrélation
// avec la passerelle : unique, posée à la création, jamais modifiée.
type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID           string             `bson:"orderId" json:"orderId"`
	RazorpayOrderID   string             `bson:"razorpayOrderId" json:"razorpayOrderId"`
	RazorpayPaymentID string             `bson:"razorpayPaymentId,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string             `bson:"razorpaySignature,omitempty" json:"razorpaySignature,omitempty"`
	Amount            float64            `bson:"amount" json:"amount"`
	Currency          string             `bson:"currency" json:"currency"`
	Status            string             `bson:"status" json:"status"`
	Customer          Customer           `bson:"customer" json:"customer"`
	Items             []OrderItem        `bson:"items" json:"items"`
	DeliveryType      string             `bson:"deliveryType" json:"deliveryType"`
	DeliveryCharge    float64            `bson:"deliveryCharge" json:"deliveryCharge"`
	Tax               float64            `bson:"tax" json:"tax"`
	Total             float64            `bson:"total" json:"total"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

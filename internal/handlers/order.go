package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"froakie_tcg_back_end/internal/models"
	"froakie_tcg_back_end/internal/store"
)

// OrderHandler orchestre le workflow commande/paiement : création d'ordre
// passerelle, vérification de signature, transition de statut, décrément
// du stock.
type OrderHandler struct {
	Orders   OrderStore
	Products ProductStore
	Gateway  PaymentGateway
	Mailer   Mailer
}

func NewOrderHandler(orders OrderStore, products ProductStore, gateway PaymentGateway, mailer Mailer) *OrderHandler {
	return &OrderHandler{Orders: orders, Products: products, Gateway: gateway, Mailer: mailer}
}

type customerInfo struct {
	Name           string         `json:"name" binding:"required"`
	Email          string         `json:"email" binding:"required,email"`
	Phone          string         `json:"phone"`
	Address        models.Address `json:"address"`
	DeliveryType   string         `json:"deliveryType" binding:"required"`
	DeliveryCharge *float64       `json:"deliveryCharge" binding:"required"`
	Tax            *float64       `json:"tax" binding:"required"`
}

type createOrderRequest struct {
	Amount       float64            `json:"amount" binding:"required"`
	Currency     string             `json:"currency"`
	CustomerInfo customerInfo       `json:"customerInfo" binding:"required"`
	Items        []models.OrderItem `json:"items" binding:"required"`
}

// Create — POST /api/create-order.
// Ordre passerelle d'abord, persistance ensuite : un échec Razorpay
// n'écrit rien. (L'inverse — ordre créé côté passerelle mais insertion
// échouée — reste une fenêtre d'incohérence connue, non gérée.)
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	razorpayOrder, err := h.Gateway.CreateOrder(req.Amount, currency, req.CustomerInfo.Name, req.CustomerInfo.Email)
	if err != nil {
		log.Println("❌ Create order error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	razorpayOrderID, _ := razorpayOrder["id"].(string)

	order := models.Order{
		OrderID:         fmt.Sprintf("ORD_%d", time.Now().UnixMilli()),
		RazorpayOrderID: razorpayOrderID,
		Amount:          req.Amount,
		Currency:        currency,
		Customer: models.Customer{
			Name:    req.CustomerInfo.Name,
			Email:   req.CustomerInfo.Email,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
		},
		Items:          req.Items,
		DeliveryType:   req.CustomerInfo.DeliveryType,
		DeliveryCharge: *req.CustomerInfo.DeliveryCharge,
		Tax:            *req.CustomerInfo.Tax,
		Total:          req.Amount,
	}

	if err := h.Orders.Create(c.Request.Context(), &order); err != nil {
		log.Println("❌ Create order error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("💳 Commande %s créée (ordre Razorpay %s, %.2f %s)", order.OrderID, razorpayOrderID, req.Amount, currency)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"razorpayOrder": razorpayOrder,
		"orderId":       order.OrderID,
	})
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}

// Verify — POST /api/verify-payment.
// La signature HMAC décide seule de la transition : valide → paid + stock
// décrémenté, invalide → failed sans toucher au stock.
func (h *OrderHandler) Verify(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if !h.Gateway.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		if err := h.Orders.MarkFailed(ctx, req.RazorpayOrderID); err != nil {
			log.Println("❌ Verify payment error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("❌ Signature invalide pour l'ordre %s", req.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment signature"})
		return
	}

	order, err := h.Orders.MarkPaid(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Verify payment error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Décrément du stock, article par article, best-effort : un échec
	// partiel laisse les articles déjà traités décrémentés
	for _, item := range order.Items {
		if _, err := h.Products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			log.Printf("⚠️ Décrément stock impossible pour %s: %v", item.ProductID, err)
		}
	}

	log.Printf("✅ Paiement vérifié pour %s (payment %s)", order.OrderID, req.RazorpayPaymentID)
	h.sendConfirmation(*order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
		"order":   order,
	})
}

// List — GET /api/orders?status=&limit= (admin)
func (h *OrderHandler) List(c *gin.Context) {
	status := c.Query("status")
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil {
		limit = store.DefaultOrderListLimit
	}

	orders, err := h.Orders.List(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "count": len(orders)})
}

// Get — GET /api/orders/:id (identifiant interne ORD_...)
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.Orders.FindByOrderID(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) sendConfirmation(order models.Order) {
	if h.Mailer == nil || order.Customer.Email == "" {
		return
	}
	go func() {
		if err := h.Mailer.SendOrderConfirmation(order); err != nil {
			log.Println("❌ Erreur envoi e-mail confirmation:", err)
		} else {
			log.Println("📧 E-mail de confirmation envoyé à", order.Customer.Email)
		}
	}()
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookHandler reçoit les notifications serveur-à-serveur de Razorpay.
// Le body brut est signé HMAC avec le secret partagé ; une signature
// invalide est rejetée en 403 sans autre traitement. Les événements
// acceptés sont seulement journalisés — la réconciliation du statut de
// commande passe par /api/verify-payment, pas par le webhook.
type WebhookHandler struct {
	Gateway PaymentGateway
}

func NewWebhookHandler(gateway PaymentGateway) *WebhookHandler {
	return &WebhookHandler{Gateway: gateway}
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Handle — POST /api/webhook, en-tête x-razorpay-signature
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Println("❌ Webhook error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	signature := c.GetHeader("x-razorpay-signature")
	if !h.Gateway.VerifyWebhookSignature(body, signature) {
		log.Println("❌ Signature webhook invalide")
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Println("❌ Webhook error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("📥 Webhook Event: %s (payment %s)", event.Event, event.Payload.Payment.Entity.ID)

	switch event.Event {
	case "payment.captured":
		log.Println("✅ Payment captured:", event.Payload.Payment.Entity.ID)
	case "payment.failed":
		log.Println("❌ Payment failed:", event.Payload.Payment.Entity.ID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

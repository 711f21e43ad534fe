package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"froakie_tcg_back_end/internal/config"
)

// StoreName apparaît dans les notes attachées à chaque ordre Razorpay.
const StoreName = "Froakie_TCG Store"

// Gateway encapsule le client Razorpay et les deux contrats de signature
// HMAC (paiement et webhook) documentés par la passerelle.
type Gateway struct {
	client        *razorpay.Client
	keySecret     string
	webhookSecret string
}

func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		client:        razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		keySecret:     cfg.RazorpayKeySecret,
		webhookSecret: cfg.RazorpayWebhookSecret,
	}
}

// ToMinorUnits convertit un montant boutique en paise : round(amount * 100).
// Au-delà de deux décimales l'arrondi est volontairement destructif — c'est
// le contrat de conversion de la passerelle, à reproduire tel quel.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder crée un ordre de paiement distant. L'objet retourné par la
// passerelle est opaque pour nous : seul son champ "id" sert de clé de
// corrélation.
func (g *Gateway) CreateOrder(amount float64, currency, customerName, customerEmail string) (map[string]interface{}, error) {
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   ToMinorUnits(amount),
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		"notes": map[string]interface{}{
			"store":          StoreName,
			"customer_name":  customerName,
			"customer_email": customerEmail,
		},
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("création ordre Razorpay: %w", err)
	}
	return order, nil
}

// VerifyPaymentSignature vérifie la signature renvoyée par le client après
// paiement : HMAC-SHA256 hex de "{order_id}|{payment_id}" avec le key secret.
func (g *Gateway) VerifyPaymentSignature(razorpayOrderID, razorpayPaymentID, signature string) bool {
	expected := signHex(g.keySecret, []byte(razorpayOrderID+"|"+razorpayPaymentID))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature vérifie l'en-tête x-razorpay-signature d'une
// notification serveur-à-serveur : HMAC-SHA256 hex du body brut avec le
// secret partagé du webhook.
func (g *Gateway) VerifyWebhookSignature(body []byte, signature string) bool {
	expected := signHex(g.webhookSecret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signHex(secret string, message []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

package utils

import (
	"log"

	"github.com/wneessen/go-mail"

	"froakie_tcg_back_end/internal/config"
	"froakie_tcg_back_end/internal/models"
)

// Mailer envoie les confirmations de commande via SMTP.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOrderConfirmation envoie l'e-mail de confirmation au client.
func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.SMTPFrom); err != nil {
		return err
	}
	if err := msg.To(order.Customer.Email); err != nil {
		return err
	}
	msg.Subject("Your Froakie_TCG order " + order.OrderID)
	msg.SetBodyString(mail.TypeTextHTML, OrderConfirmationHTML(order))

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.SMTPUsername),
		mail.WithPassword(m.cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", order.Customer.Email)
	return client.DialAndSend(msg)
}

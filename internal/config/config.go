package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config regroupe toute la configuration chargée depuis l'environnement.
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"APP_ENV" default:"development"`

	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	MongoDB  string `envconfig:"MONGODB_DB" default:"froakie_tcg"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	RazorpayKeyID         string `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	RazorpayKeySecret     string `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	RazorpayWebhookSecret string `envconfig:"RAZORPAY_WEBHOOK_SECRET"`

	// SMTP optionnel — si SMTP_HOST est vide, aucun e-mail n'est envoyé
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"noreply@froakietcg.com"`
}

// Load charge le fichier .env puis construit la configuration typée.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr retourne l'adresse d'écoute du serveur HTTP.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// SMTPEnabled indique si l'envoi d'e-mails est configuré.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

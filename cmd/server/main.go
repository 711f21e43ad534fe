package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"froakie_tcg_back_end/internal/config"
	"froakie_tcg_back_end/internal/database"
	"froakie_tcg_back_end/internal/handlers"
	"froakie_tcg_back_end/internal/payment"
	"froakie_tcg_back_end/internal/routes"
	"froakie_tcg_back_end/internal/store"
	"froakie_tcg_back_end/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide: ", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbs, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("❌ Échec connexion bases de données: ", err)
	}

	gateway := payment.NewGateway(cfg)
	log.Println("✅ Passerelle Razorpay initialisée")

	productStore := store.NewProductStore(dbs.Mongo, dbs.Redis)
	orderStore := store.NewOrderStore(dbs.Mongo)

	var mailer handlers.Mailer
	if cfg.SMTPEnabled() {
		mailer = utils.NewMailer(cfg)
		log.Println("✅ SMTP configuré — e-mails de confirmation activés")
	} else {
		log.Println("⚠️ SMTP non configuré — e-mails de confirmation désactivés")
	}

	productHandler := handlers.NewProductHandler(productStore)
	orderHandler := handlers.NewOrderHandler(orderStore, productStore, gateway, mailer)
	webhookHandler := handlers.NewWebhookHandler(gateway)

	r := gin.Default()
	routes.Register(r, productHandler, orderHandler, webhookHandler, dbs.Redis)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Serveur Froakie_TCG lancé sur le port %s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Erreur serveur HTTP: ", err)
		}
	}()

	// Arrêt propre : on draine les requêtes puis on ferme les connexions
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Arrêt demandé...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ Arrêt forcé du serveur HTTP:", err)
	}
	dbs.Close(ctx)
	log.Println("👋 Serveur arrêté")
}

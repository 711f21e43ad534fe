package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"froakie_tcg_back_end/internal/config"
)

// Databases regroupe les connexions partagées par tout le serveur.
// Construit une fois au démarrage, injecté dans les stores, fermé à l'arrêt.
type Databases struct {
	Client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// Connect ouvre et vérifie les connexions MongoDB et Redis.
func Connect(ctx context.Context, cfg *config.Config) (*Databases, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	log.Println("✅ Connecté à MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Redis ne sert qu'au cache et au rate limiting : on dégrade au lieu de refuser de démarrer
		log.Println("⚠️ Redis injoignable — cache et rate limiting désactivés:", err)
	} else {
		log.Println("✅ Connecté à Redis")
	}

	return &Databases{
		Client: client,
		Mongo:  client.Database(cfg.MongoDB),
		Redis:  rdb,
	}, nil
}

// Close ferme proprement toutes les connexions.
func (d *Databases) Close(ctx context.Context) {
	if err := d.Client.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB:", err)
	} else {
		log.Println("🔌 Connexion MongoDB fermée")
	}
	if err := d.Redis.Close(); err != nil {
		log.Println("⚠️ Erreur fermeture Redis:", err)
	} else {
		log.Println("🔌 Connexion Redis fermée")
	}
}

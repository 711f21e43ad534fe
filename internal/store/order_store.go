package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"froakie_tcg_back_end/internal/models"
)

// DefaultOrderListLimit borne les listages admin sans paramètre limit.
const DefaultOrderListLimit = 50

// OrderStore encapsule la collection orders.
type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{coll: db.Collection("orders")}
}

// Create insère une commande, toujours en statut pending.
func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	now := time.Now()
	o.Status = models.OrderStatusPending
	o.CreatedAt = now
	o.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return fmt.Errorf("insertion commande: %w", err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByOrderID retourne une commande par son identifiant interne (ORD_...).
func (s *OrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture commande: %w", err)
	}
	return &order, nil
}

// FindByRazorpayOrderID retourne la commande corrélée à un ordre de la
// passerelle. razorpayOrderId est unique : au plus un résultat.
func (s *OrderStore) FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"razorpayOrderId": razorpayOrderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture commande: %w", err)
	}
	return &order, nil
}

// List retourne les commandes les plus récentes, filtrées par statut si fourni.
func (s *OrderStore) List(ctx context.Context, status string, limit int64) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("décodage commandes: %w", err)
	}
	return orders, nil
}

// MarkPaid passe la commande en paid et enregistre les identifiants de
// paiement. Dernier écrivain gagnant : aucun compare-and-swap sur le
// statut précédent. Retourne le document après mise à jour.
func (s *OrderStore) MarkPaid(ctx context.Context, razorpayOrderID, paymentID, signature string) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":            models.OrderStatusPaid,
		"razorpayPaymentId": paymentID,
		"razorpaySignature": signature,
		"updatedAt":         time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"razorpayOrderId": razorpayOrderID}, update, opts).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mise à jour commande: %w", err)
	}
	return &order, nil
}

// MarkFailed passe la commande en failed. L'absence de commande n'est pas
// une erreur ici : la signature invalide est déjà signalée à l'appelant.
func (s *OrderStore) MarkFailed(ctx context.Context, razorpayOrderID string) error {
	update := bson.M{"$set": bson.M{
		"status":    models.OrderStatusFailed,
		"updatedAt": time.Now(),
	}}
	if _, err := s.coll.UpdateOne(ctx, bson.M{"razorpayOrderId": razorpayOrderID}, update); err != nil {
		return fmt.Errorf("mise à jour commande: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"froakie_tcg_back_end/internal/models"
)

const (
	productListCacheKey = "products:all"
	productCacheTTL     = 10 * time.Minute
)

// ProductStore encapsule la collection products et son cache Redis.
type ProductStore struct {
	coll  *mongo.Collection
	redis *redis.Client
}

func NewProductStore(db *mongo.Database, rdb *redis.Client) *ProductStore {
	return &ProductStore{
		coll:  db.Collection("products"),
		redis: rdb,
	}
}

// List retourne tous les produits, du plus récent au plus ancien.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	// 1. Essayer le cache Redis
	if val, err := s.redis.Get(ctx, productListCacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture produits: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("décodage produits: %w", err)
	}

	// 2. Mettre en cache, best-effort
	if data, err := json.Marshal(products); err == nil {
		s.redis.Set(ctx, productListCacheKey, data, productCacheTTL)
	}

	return products, nil
}

// Get retourne un produit par son identifiant hexadécimal.
func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture produit: %w", err)
	}
	return &product, nil
}

// Create insère un nouveau produit et horodate sa création.
func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insertion produit: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)

	s.invalidateCache(ctx)
	return nil
}

// Update applique un $set partiel ou complet et rafraîchit updatedAt.
// Retourne le document après mise à jour.
func (s *ProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	// Les champs immuables ne se remplacent pas
	delete(fields, "_id")
	delete(fields, "createdAt")
	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mise à jour produit: %w", err)
	}

	s.invalidateCache(ctx)
	return &product, nil
}

// Delete supprime définitivement un produit.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("suppression produit: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

// AdjustStock incrémente le stock d'un delta signé via $inc atomique.
// Aucun plancher à zéro : un stock négatif est de la responsabilité de
// l'appelant. Retourne le document après mise à jour.
func (s *ProductStore) AdjustStock(ctx context.Context, id string, delta int) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ajustement stock: %w", err)
	}

	s.invalidateCache(ctx)
	return &product, nil
}

// Count retourne le nombre total de produits.
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("comptage produits: %w", err)
	}
	return count, nil
}

// InsertMany insère le catalogue d'exemple en une seule opération.
func (s *ProductStore) InsertMany(ctx context.Context, products []models.Product) error {
	now := time.Now()
	docs := make([]interface{}, 0, len(products))
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs = append(docs, products[i])
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insertion catalogue: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *ProductStore) invalidateCache(ctx context.Context) {
	// Best-effort : un Redis indisponible ne doit pas bloquer une écriture
	s.redis.Del(ctx, productListCacheKey)
}

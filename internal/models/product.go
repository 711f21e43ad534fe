package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product représente une carte du catalogue.
// Les prix "market" sont informatifs (comparaison avec TCGPlayer).
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Price        float64            `bson:"price" json:"price" binding:"required"`
	Stock        int                `bson:"stock" json:"stock"`
	Description  string             `bson:"description" json:"description" binding:"required"`
	Image        string             `bson:"image" json:"image" binding:"required"`
	MarketPrice  float64            `bson:"marketPrice" json:"marketPrice" binding:"required"`
	MarketURL    string             `bson:"marketUrl" json:"marketUrl" binding:"required"`
	MarketSource string             `bson:"marketSource" json:"marketSource" binding:"required"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"froakie_tcg_back_end/internal/models"
)

// sampleProducts retourne le catalogue de démarrage.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:         "Charizard VMAX",
			Price:        299.99,
			Stock:        5,
			Description:  "Rainbow Rare Charizard VMAX from Champion's Path",
			Image:        "https://images.pokemontcg.io/swsh35/74_hires.png",
			MarketPrice:  349.99,
			MarketURL:    "https://www.tcgplayer.com/product/223194",
			MarketSource: "TCGPlayer",
		},
		{
			Name:         "Pikachu VMAX",
			Price:        89.99,
			Stock:        12,
			Description:  "Vivid Voltage Rainbow Rare Pikachu VMAX",
			Image:        "https://images.pokemontcg.io/swsh4/188_hires.png",
			MarketPrice:  95.99,
			MarketURL:    "https://www.tcgplayer.com/product/226524",
			MarketSource: "TCGPlayer",
		},
		{
			Name:         "Mewtwo & Mew GX",
			Price:        45.99,
			Stock:        8,
			Description:  "Unified Minds Secret Rare",
			Image:        "https://images.pokemontcg.io/sm11/222_hires.png",
			MarketPrice:  52.99,
			MarketURL:    "https://www.tcgplayer.com/product/192290",
			MarketSource: "TCGPlayer",
		},
	}
}

// Initialize — POST /api/initialize, insertion unique du catalogue
// d'exemple. No-op dès qu'au moins un produit existe.
func (h *ProductHandler) Initialize(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.Store.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Database already initialized"})
		return
	}

	products := sampleProducts()
	if err := h.Store.InsertMany(ctx, products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("🌱 Catalogue d'exemple inséré (%d produits)", len(products))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sample products added",
		"count":   len(products),
	})
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"froakie_tcg_back_end/internal/models"
	"froakie_tcg_back_end/internal/store"
)

// ProductHandler expose le CRUD catalogue.
type ProductHandler struct {
	Store ProductStore
}

func NewProductHandler(s ProductStore) *ProductHandler {
	return &ProductHandler{Store: s}
}

// List — GET /api/products, du plus récent au plus ancien.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Get — GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// Create — POST /api/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		// Contrat d'erreur volontairement faible : message brut en 500,
		// comme le reste des erreurs de validation/persistance
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Store.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// Update — PUT /api/products/:id (admin), remplacement partiel ou complet
func (h *ProductHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	product, err := h.Store.Update(c.Request.Context(), c.Param("id"), fields)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// Delete — DELETE /api/products/:id (admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	err := h.Store.Delete(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// UpdateStock — PATCH /api/products/:id/stock, décrémente le stock de
// {quantity}. Pas de plancher à zéro : une quantité supérieure au stock
// laisse un stock négatif, à charge de l'admin.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	product, err := h.Store.AdjustStock(c.Request.Context(), c.Param("id"), -*req.Quantity)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("📦 Stock ajusté pour %s: %d", product.Name, product.Stock)
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

package user

import (
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    session.Items,
		"subtotal": pricing.Subtotal(session),
	})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Reference string                 `json:"reference" binding:"required"`
		Quantity  int                    `json:"quantity" binding:"required"`
		Options   models.CartItemOptions `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// 🧩 Récupération du produit depuis ScyllaDB
	product, err := fetchProductByReference(input.Reference)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable: " + input.Reference})
		return
	}

	// Le profil client porte les tarifs négociés résolus à l'ajout
	client, err := cache.GetClientFromCache(c.Request.Context(), email)
	if err != nil {
		client = nil
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage panier"})
		return
	}

	item, err := pricing.AddToCart(session, product, client, input.Quantity, input.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"item":    item,
		"items":   session.Items,
	})
}

//
// 🔁 PATCH /api/cart/quantity
//
func UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		LineID string `json:"line_id" binding:"required"`
		Delta  int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage panier"})
		return
	}

	if err := pricing.UpdateQuantity(session, input.LineID, input.Delta); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ligne de panier introuvable"})
		return
	}

	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": session.Items})
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	if err := cache.DeleteCartSession(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// fetchProductByReference lit un produit du catalogue, clé métier = référence
func fetchProductByReference(reference string) (models.Product, error) {
	var p models.Product

	session, err := database.GetProductsSession()
	if err != nil {
		return p, err
	}

	err = session.Query(`SELECT reference, name, category, subcategory, is_flexible, price, price_per_m2,
		width, length, unit, in_stock, brand, finish, backing, adhesive, material_type, weight, description
		FROM products WHERE reference = ?`, reference).Scan(
		&p.Reference, &p.Name, &p.Category, &p.Subcategory, &p.IsFlexible, &p.Price, &p.PricePerM2,
		&p.Width, &p.Length, &p.Unit, &p.InStock, &p.Brand,
		&p.Attributes.Finish, &p.Attributes.Backing, &p.Attributes.Adhesive, &p.Attributes.MaterialType,
		&p.Weight, &p.Description)
	return p, err
}

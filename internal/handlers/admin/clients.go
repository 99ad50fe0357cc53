package admin

import (
	"log"
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

// SetCustomPrices - PUT /api/admin/clients/custom-prices (Admin)
// Remplace les tarifs négociés d'un client : référence produit → tarif.
// Interprété comme prix unitaire pour un produit rigide, prix au m² pour
// un souple, au moment de l'ajout au panier.
func SetCustomPrices(c *gin.Context) {
	var req struct {
		Email        string             `json:"email" binding:"required,email"`
		CustomPrices map[string]float64 `json:"custom_prices" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	for ref, rate := range req.CustomPrices {
		if rate < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tarif négatif refusé pour " + ref})
			return
		}
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing string
	if err := session.Query(`SELECT email FROM clients WHERE email = ? LIMIT 1`, req.Email).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
		return
	}

	if err := session.Query(`UPDATE clients SET custom_prices = ? WHERE email = ?`,
		req.CustomPrices, req.Email).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour tarifs négociés pour %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	cache.InvalidateClient(c.Request.Context(), req.Email)

	log.Printf("✅ Tarifs négociés mis à jour: %s (%d références)", req.Email, len(req.CustomPrices))
	c.JSON(http.StatusOK, gin.H{"message": "Tarifs négociés mis à jour"})
}

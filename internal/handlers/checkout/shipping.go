package checkout

import (
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GetShippingOptions retourne les deux modes de livraison disponibles.
// Tarif forfaitaire binaire : jamais calculé au poids ni à la distance.
func GetShippingOptions(c *gin.Context) {
	options := []models.ShippingOption{
		{
			ID:          models.ShippingOwn,
			Name:        "Tournée propre",
			Description: "Livraison par nos tournées habituelles",
			Price:       0,
		},
		{
			ID:          models.ShippingAgency24,
			Name:        "Messagerie 24h",
			Description: "Livraison le lendemain par transporteur",
			Price:       pricing.Agency24Cost,
		},
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}

// SetShippingMethod - POST /api/checkout/shipping
func SetShippingMethod(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if req.Method != models.ShippingOwn && req.Method != models.ShippingAgency24 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode de livraison inconnu"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	session.ShippingMethod = req.Method
	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shipping_method": session.ShippingMethod,
		"shipping_cost":   pricing.ShippingCost(session.ShippingMethod),
	})
}

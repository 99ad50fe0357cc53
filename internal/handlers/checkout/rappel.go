package checkout

import (
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// ToggleRappel - POST /api/checkout/rappel
// Active ou désactive le rachat du solde rappel pour ce passage en caisse.
// Choix purement spéculatif : le solde persistant n'est débité qu'à la
// finalisation, abandonner le checkout ne coûte rien.
func ToggleRappel(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	client := loadClient(c.Request.Context(), email)

	if req.Enabled {
		// Le rachat n'est proposé que si la condition d'éligibilité tient
		validation := sessionCouponValidation(session, client)
		if !pricing.RappelRedemptionEligible(validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le rachat de rappel nécessite un coupon pourcentage actif"})
			return
		}
		if client == nil || client.RappelAccumulated <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun solde rappel disponible"})
			return
		}
	}

	session.UseRappel = req.Enabled
	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	var balance float64
	if client != nil {
		balance = client.RappelAccumulated
	}
	c.JSON(http.StatusOK, gin.H{
		"use_rappel": session.UseRappel,
		"balance":    balance,
	})
}

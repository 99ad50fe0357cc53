package checkout

import (
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GetTotals - GET /api/checkout/totals
// Décomposition complète du total courant : sous-total, remises, TVA,
// port. Tout est recalculé à chaque appel depuis la session, le coupon
// revalidé contre l'état courant du panier.
func GetTotals(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	client := loadClient(c.Request.Context(), email)
	validation := sessionCouponValidation(session, client)

	var balance float64
	if client != nil {
		balance = client.RappelAccumulated
	}

	totals := pricing.ComputeTotals(session, validation, balance)

	c.JSON(http.StatusOK, gin.H{
		"totals":          totals,
		"coupon_code":     session.CouponCode,
		"use_rappel":      session.UseRappel,
		"shipping_method": session.ShippingMethod,
	})
}

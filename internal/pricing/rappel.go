package pricing

import (
	"math"

	"rotuprint_back_end/internal/models"
)

// Taux de rappel crédité sur chaque commande finalisée
const RappelRate = 0.03

// RappelAccrual - montant crédité au solde du client lors de la
// finalisation d'une commande : 3% du sous-total après remises, avant TVA
// et port. Crédité exactement une fois par commande, jamais rejoué.
func RappelAccrual(netSubtotal float64) float64 {
	if netSubtotal <= 0 {
		return 0
	}
	return math.Round(netSubtotal*RappelRate*100) / 100
}

// RedeemableRappel - montant de rappel utilisable sur ce passage en caisse.
// Plafonné à min(solde, sous-total restant après coupon) : le solde ne peut
// jamais devenir négatif ni la commande passer sous zéro. Jamais d'échec
// partiel, toujours le plafond.
func RedeemableRappel(balance, subtotalAfterCoupon float64) float64 {
	if balance <= 0 || subtotalAfterCoupon <= 0 {
		return 0
	}
	return math.Min(balance, subtotalAfterCoupon)
}

// RappelRedemptionEligible - le rachat de rappel n'est proposé que lorsqu'un
// coupon de type pourcentage est appliqué au panier. Règle métier héritée,
// conservée telle quelle (signalée pour confirmation produit, voir DESIGN.md).
func RappelRedemptionEligible(coupon models.CouponValidation) bool {
	return coupon.IsValid && coupon.Type == "percentage"
}

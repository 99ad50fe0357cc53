package pricing

import "rotuprint_back_end/internal/models"

const (
	// TVA appliquée sur le net après remises
	TaxRate = 0.21
	// Port forfaitaire messagerie 24h ; l'enlèvement propre est gratuit
	Agency24Cost = 6.00
)

// ShippingCost - tarif forfaitaire binaire, jamais calculé au poids
func ShippingCost(method string) float64 {
	if method == models.ShippingAgency24 {
		return Agency24Cost
	}
	return 0
}

// ComputeTotals compose le total final dans un ordre fixe et sensible :
//
//	subtotal → - coupon → - rappel (calculé sur subtotal - coupon)
//	→ net clampé ≥ 0 → TVA 21% sur le net → + port (non taxé)
//
// Le rachat de rappel n'entre en jeu que si le client l'a demandé ET que
// la condition d'éligibilité tient (coupon pourcentage actif).
func ComputeTotals(s *models.CartSession, coupon models.CouponValidation, rappelBalance float64) models.OrderTotals {
	subtotal := Subtotal(s)

	var couponDiscount float64
	if coupon.IsValid {
		couponDiscount = coupon.Discount
	}

	var rappelDiscount float64
	if s.UseRappel && RappelRedemptionEligible(coupon) {
		rappelDiscount = RedeemableRappel(rappelBalance, subtotal-couponDiscount)
	}

	netSubtotal := subtotal - couponDiscount - rappelDiscount
	if netSubtotal < 0 {
		netSubtotal = 0
	}

	tax := netSubtotal * TaxRate
	shipping := ShippingCost(s.ShippingMethod)

	return models.OrderTotals{
		Subtotal:       subtotal,
		CouponDiscount: couponDiscount,
		RappelDiscount: rappelDiscount,
		NetSubtotal:    netSubtotal,
		Tax:            tax,
		ShippingCost:   shipping,
		Total:          netSubtotal + tax + shipping,
	}
}

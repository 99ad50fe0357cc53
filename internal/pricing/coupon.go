package pricing

import (
	"fmt"
	"strings"
	"time"

	"rotuprint_back_end/internal/models"
)

// NormalizeCouponCode - les codes sont insensibles à la casse,
// stockés et comparés en majuscules
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCoupon valide un coupon contre l'état du panier et du client.
// Les contrôles court-circuitent au premier échec, dans cet ordre :
// actif, fenêtre de validité, plafond d'utilisations, usage unique par
// client, montant minimum. Un seul coupon à la fois ; en appliquer un
// nouveau remplace le précédent.
func ValidateCoupon(coupon models.Coupon, cartTotal float64, user *models.User, now time.Time) models.CouponValidation {
	if !coupon.IsActive {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Ce coupon n'est plus actif",
		}
	}

	if now.Before(coupon.StartsAt) {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Ce coupon n'est pas encore valide",
		}
	}

	if !coupon.ExpiresAt.IsZero() && now.After(coupon.ExpiresAt) {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Ce coupon a expiré",
		}
	}

	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Ce coupon a atteint sa limite d'utilisation",
		}
	}

	if coupon.OncePerClient && user != nil && user.HasUsedCoupon(coupon.Code) {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Vous avez déjà utilisé ce coupon",
		}
	}

	if cartTotal < coupon.MinAmount {
		return models.CouponValidation{
			IsValid:      false,
			ErrorMessage: fmt.Sprintf("Montant minimum requis: %.2f€", coupon.MinAmount),
		}
	}

	var discount float64
	switch coupon.Type {
	case "percentage":
		discount = cartTotal * (coupon.Value / 100)
	case "fixed":
		// Une remise fixe ne dépasse jamais le sous-total du panier
		discount = coupon.Value
		if discount > cartTotal {
			discount = cartTotal
		}
	}

	return models.CouponValidation{
		IsValid:  true,
		Discount: discount,
		Type:     coupon.Type,
		Code:     coupon.Code,
	}
}

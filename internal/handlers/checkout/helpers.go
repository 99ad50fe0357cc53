package checkout

import (
	"context"
	"time"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"
)

// fetchCouponByCode lit un coupon depuis ks_orders (code déjà normalisé)
func fetchCouponByCode(code string) (models.Coupon, error) {
	var coupon models.Coupon

	session, err := database.GetOrdersSession()
	if err != nil {
		return coupon, err
	}

	err = session.Query(`SELECT id, code, type, value, min_amount, max_uses, used_count,
		once_per_client, starts_at, expires_at, is_active
		FROM coupons WHERE code = ? LIMIT 1`, code).Scan(
		&coupon.ID, &coupon.Code, &coupon.Type, &coupon.Value, &coupon.MinAmount,
		&coupon.MaxUses, &coupon.UsedCount, &coupon.OncePerClient,
		&coupon.StartsAt, &coupon.ExpiresAt, &coupon.IsActive)
	return coupon, err
}

// sessionCouponValidation revalide le coupon sélectionné dans la session
// contre l'état courant du panier. La sélection est spéculative : elle est
// revalidée à chaque calcul de totaux et à la finalisation, jamais supposée
// encore valide.
func sessionCouponValidation(s *models.CartSession, user *models.User) models.CouponValidation {
	if s.CouponCode == "" {
		return models.CouponValidation{}
	}
	coupon, err := fetchCouponByCode(s.CouponCode)
	if err != nil {
		return models.CouponValidation{ErrorMessage: "Code coupon invalide"}
	}
	return pricing.ValidateCoupon(coupon, pricing.Subtotal(s), user, time.Now())
}

// loadClient charge le profil du client connecté (tarifs, solde rappel...)
func loadClient(ctx context.Context, email string) *models.User {
	if email == "" {
		return nil
	}
	client, err := cache.GetClientFromCache(ctx, email)
	if err != nil {
		return nil
	}
	return client
}

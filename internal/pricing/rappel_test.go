package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRappelAccrual(t *testing.T) {
	assert.InDelta(t, 27.74, RappelAccrual(924.50), 1e-9)
	assert.Zero(t, RappelAccrual(0))
	assert.Zero(t, RappelAccrual(-10))
}

func TestRedeemableRappelClamped(t *testing.T) {
	// Solde 45.50, reste 40 après coupon → on rachète 40, pas 45.50
	assert.InDelta(t, 40.0, RedeemableRappel(45.50, 40), 1e-9)

	// Solde inférieur au reste → tout le solde
	assert.InDelta(t, 45.50, RedeemableRappel(45.50, 900), 1e-9)

	assert.Zero(t, RedeemableRappel(0, 100))
	assert.Zero(t, RedeemableRappel(45.50, 0))
	assert.Zero(t, RedeemableRappel(45.50, -5))
}

func TestRappelRedemptionEligible(t *testing.T) {
	tests := []struct {
		name     string
		coupon   models.CouponValidation
		eligible bool
	}{
		{"coupon pourcentage actif", models.CouponValidation{IsValid: true, Type: "percentage"}, true},
		{"coupon fixe", models.CouponValidation{IsValid: true, Type: "fixed"}, false},
		{"coupon refusé", models.CouponValidation{IsValid: false, Type: "percentage"}, false},
		{"aucun coupon", models.CouponValidation{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eligible, RappelRedemptionEligible(tt.coupon))
		})
	}
}

package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func sessionWithSubtotal(subtotal float64) *models.CartSession {
	return &models.CartSession{
		Items: []models.CartItem{{LineID: "a", CalculatedPrice: subtotal, Quantity: 1}},
	}
}

func TestComputeTotalsEndToEnd(t *testing.T) {
	// Panier 1000, RAPPEL3 (3% → 30), solde rappel 45.50 racheté en entier
	s := sessionWithSubtotal(1000)
	s.UseRappel = true
	s.ShippingMethod = models.ShippingOwn

	coupon := models.CouponValidation{IsValid: true, Type: "percentage", Code: "RAPPEL3", Discount: 30}
	totals := ComputeTotals(s, coupon, 45.50)

	assert.InDelta(t, 1000.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 30.0, totals.CouponDiscount, 1e-9)
	assert.InDelta(t, 45.50, totals.RappelDiscount, 1e-9)
	assert.InDelta(t, 924.50, totals.NetSubtotal, 1e-9)
	assert.InDelta(t, 194.145, totals.Tax, 1e-9)
	assert.Zero(t, totals.ShippingCost)
	assert.InDelta(t, 1118.645, totals.Total, 1e-9)
}

func TestComputeTotalsFixedCouponZeroesOrder(t *testing.T) {
	// Coupon fixe 50 sur un panier de 30 : remise clampée, net 0, TVA 0
	s := sessionWithSubtotal(30)
	coupon := models.CouponValidation{IsValid: true, Type: "fixed", Discount: 30}
	totals := ComputeTotals(s, coupon, 0)

	assert.Zero(t, totals.NetSubtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}

func TestComputeTotalsRappelNeedsOptIn(t *testing.T) {
	s := sessionWithSubtotal(1000)
	coupon := models.CouponValidation{IsValid: true, Type: "percentage", Discount: 30}

	// Sans opt-in, aucun rachat même avec du solde
	totals := ComputeTotals(s, coupon, 45.50)
	assert.Zero(t, totals.RappelDiscount)
}

func TestComputeTotalsRappelNeedsEligibleCoupon(t *testing.T) {
	s := sessionWithSubtotal(1000)
	s.UseRappel = true

	// Coupon fixe : rachat de rappel non proposé
	coupon := models.CouponValidation{IsValid: true, Type: "fixed", Discount: 30}
	totals := ComputeTotals(s, coupon, 45.50)
	assert.Zero(t, totals.RappelDiscount)

	// Aucun coupon : idem
	totals = ComputeTotals(s, models.CouponValidation{}, 45.50)
	assert.Zero(t, totals.RappelDiscount)
}

func TestComputeTotalsRappelComputedAfterCoupon(t *testing.T) {
	// Le rachat se calcule contre subtotal - coupon : solde 45.50, reste 40
	s := sessionWithSubtotal(70)
	s.UseRappel = true
	coupon := models.CouponValidation{IsValid: true, Type: "percentage", Discount: 30}

	totals := ComputeTotals(s, coupon, 45.50)
	assert.InDelta(t, 40.0, totals.RappelDiscount, 1e-9)
	assert.Zero(t, totals.NetSubtotal)
}

func TestComputeTotalsShipping(t *testing.T) {
	s := sessionWithSubtotal(100)
	s.ShippingMethod = models.ShippingAgency24

	totals := ComputeTotals(s, models.CouponValidation{}, 0)
	assert.InDelta(t, 6.0, totals.ShippingCost, 1e-9)
	// Le port n'est pas taxé : TVA sur le net seulement
	assert.InDelta(t, 100+21+6, totals.Total, 1e-9)
}

func TestComputeTotalsNoDiscounts(t *testing.T) {
	s := sessionWithSubtotal(200)
	totals := ComputeTotals(s, models.CouponValidation{}, 0)

	assert.InDelta(t, 200.0, totals.NetSubtotal, 1e-9)
	assert.InDelta(t, 42.0, totals.Tax, 1e-9)
	assert.InDelta(t, 242.0, totals.Total, 1e-9)
}

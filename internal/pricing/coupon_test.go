package pricing

import (
	"testing"
	"time"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func rappel3() models.Coupon {
	return models.Coupon{
		Code:      "RAPPEL3",
		Type:      "percentage",
		Value:     3,
		MinAmount: 901,
		MaxUses:   1000,
		IsActive:  true,
		ExpiresAt: time.Now().Add(365 * 24 * time.Hour),
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "RAPPEL3", NormalizeCouponCode("  rappel3 "))
}

func TestValidateCouponPercentage(t *testing.T) {
	v := ValidateCoupon(rappel3(), 901, nil, time.Now())
	assert.True(t, v.IsValid)
	assert.InDelta(t, 27.03, v.Discount, 1e-9)
	assert.Equal(t, "percentage", v.Type)
}

func TestValidateCouponBelowMinimum(t *testing.T) {
	v := ValidateCoupon(rappel3(), 900, nil, time.Now())
	assert.False(t, v.IsValid)
	assert.Contains(t, v.ErrorMessage, "901.00")
}

func TestValidateCouponFixedClamped(t *testing.T) {
	c := models.Coupon{Code: "BIENVENUE50", Type: "fixed", Value: 50, IsActive: true}
	v := ValidateCoupon(c, 30, nil, time.Now())
	assert.True(t, v.IsValid)
	// Une remise fixe ne dépasse jamais le sous-total
	assert.InDelta(t, 30.0, v.Discount, 1e-9)
}

func TestValidateCouponInactive(t *testing.T) {
	c := rappel3()
	c.IsActive = false
	v := ValidateCoupon(c, 2000, nil, time.Now())
	assert.False(t, v.IsValid)
	assert.Equal(t, "Ce coupon n'est plus actif", v.ErrorMessage)
}

func TestValidateCouponWindow(t *testing.T) {
	c := rappel3()
	c.StartsAt = time.Now().Add(24 * time.Hour)
	assert.False(t, ValidateCoupon(c, 2000, nil, time.Now()).IsValid)

	c = rappel3()
	c.ExpiresAt = time.Now().Add(-time.Hour)
	v := ValidateCoupon(c, 2000, nil, time.Now())
	assert.False(t, v.IsValid)
	assert.Equal(t, "Ce coupon a expiré", v.ErrorMessage)
}

func TestValidateCouponExhausted(t *testing.T) {
	c := rappel3()
	c.MaxUses = 10
	c.UsedCount = 10
	v := ValidateCoupon(c, 2000, nil, time.Now())
	assert.False(t, v.IsValid)
	assert.Equal(t, "Ce coupon a atteint sa limite d'utilisation", v.ErrorMessage)
}

func TestValidateCouponOncePerClient(t *testing.T) {
	c := rappel3()
	c.OncePerClient = true
	u := &models.User{UsedCoupons: []string{"RAPPEL3"}}
	v := ValidateCoupon(c, 2000, u, time.Now())
	assert.False(t, v.IsValid)
	assert.Equal(t, "Vous avez déjà utilisé ce coupon", v.ErrorMessage)

	// Un autre client peut toujours l'utiliser
	assert.True(t, ValidateCoupon(c, 2000, &models.User{}, time.Now()).IsValid)
}

package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveProductRigidOverride(t *testing.T) {
	p := models.Product{Reference: "PVC-3MM", Price: 18.50}
	u := &models.User{CustomPrices: map[string]float64{"PVC-3MM": 15.90}}

	eff := EffectiveProduct(p, u)
	assert.Equal(t, 15.90, eff.Price)
	assert.Zero(t, eff.PricePerM2)
}

func TestEffectiveProductFlexibleOverride(t *testing.T) {
	p := models.Product{Reference: "VM12250", IsFlexible: true, Price: 99, PricePerM2: 4.20}
	u := &models.User{CustomPrices: map[string]float64{"VM12250": 3.75}}

	eff := EffectiveProduct(p, u)
	assert.Equal(t, 3.75, eff.PricePerM2)
	// Un rouleau se facture à la surface : le prix unitaire est remis à zéro
	assert.Zero(t, eff.Price)
}

func TestEffectiveProductNoOverride(t *testing.T) {
	p := models.Product{Reference: "VM12250", IsFlexible: true, PricePerM2: 4.20}

	assert.Equal(t, p, EffectiveProduct(p, nil))
	assert.Equal(t, p, EffectiveProduct(p, &models.User{}))
	assert.Equal(t, p, EffectiveProduct(p, &models.User{
		CustomPrices: map[string]float64{"AUTRE-REF": 1.0},
	}))
}

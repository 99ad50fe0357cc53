package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vinylProduct() models.Product {
	return models.Product{
		Reference:  "VM12250",
		Name:       "Vinilo monomerico blanco",
		Category:   models.CategoryFlexible,
		Brand:      "Mactac",
		IsFlexible: true,
		PricePerM2: 4.0,
		Width:      1.22,
		Length:     50,
	}
}

func TestAddToCartFlexiblePrice(t *testing.T) {
	s := &models.CartSession{}
	item, err := AddToCart(s, vinylProduct(), nil, 2, models.CartItemOptions{})
	require.NoError(t, err)

	// 4.0 €/m² × 1.22 × 50 = 244 € le rouleau
	assert.InDelta(t, 244.0, item.CalculatedPrice, 1e-9)
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 488.0, Subtotal(s), 1e-9)
}

func TestAddToCartUsesEffectivePrice(t *testing.T) {
	s := &models.CartSession{}
	u := &models.User{CustomPrices: map[string]float64{"VM12250": 3.5}}
	item, err := AddToCart(s, vinylProduct(), u, 1, models.CartItemOptions{})
	require.NoError(t, err)

	assert.InDelta(t, 3.5*1.22*50, item.CalculatedPrice, 1e-9)
}

func TestAddToCartMergesSameConfiguration(t *testing.T) {
	s := &models.CartSession{}
	opts := models.CartItemOptions{Finish: "gloss"}
	_, err := AddToCart(s, vinylProduct(), nil, 1, opts)
	require.NoError(t, err)
	_, err = AddToCart(s, vinylProduct(), nil, 2, opts)
	require.NoError(t, err)

	require.Len(t, s.Items, 1)
	assert.Equal(t, 3, s.Items[0].Quantity)
}

func TestAddToCartKeepsVariantsDistinct(t *testing.T) {
	s := &models.CartSession{}
	_, err := AddToCart(s, vinylProduct(), nil, 1, models.CartItemOptions{Finish: "gloss"})
	require.NoError(t, err)
	_, err = AddToCart(s, vinylProduct(), nil, 1, models.CartItemOptions{Finish: "matte"})
	require.NoError(t, err)
	_, err = AddToCart(s, vinylProduct(), nil, 1, models.CartItemOptions{Finish: "gloss", Width: 1.06})
	require.NoError(t, err)

	// Même référence, configurations différentes : trois lignes distinctes
	assert.Len(t, s.Items, 3)
}

func TestAddToCartConfiguredWidth(t *testing.T) {
	s := &models.CartSession{}
	item, err := AddToCart(s, vinylProduct(), nil, 1, models.CartItemOptions{Width: 1.06})
	require.NoError(t, err)

	assert.InDelta(t, 4.0*1.06*50, item.CalculatedPrice, 1e-9)
}

func TestAddToCartRejectsBadQuantity(t *testing.T) {
	s := &models.CartSession{}
	_, err := AddToCart(s, vinylProduct(), nil, 0, models.CartItemOptions{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	s := &models.CartSession{}
	item, err := AddToCart(s, vinylProduct(), nil, 2, models.CartItemOptions{})
	require.NoError(t, err)

	require.NoError(t, UpdateQuantity(s, item.LineID, -1))
	assert.Equal(t, 1, s.Items[0].Quantity)

	// Une quantité qui tombe à ≤ 0 retire la ligne, jamais conservée à zéro
	require.NoError(t, UpdateQuantity(s, item.LineID, -3))
	assert.Empty(t, s.Items)

	assert.ErrorIs(t, UpdateQuantity(s, item.LineID, 1), ErrLineNotFound)
}

func TestSubtotalIsSumOfLines(t *testing.T) {
	s := &models.CartSession{
		Items: []models.CartItem{
			{LineID: "a", CalculatedPrice: 12.5, Quantity: 3},
			{LineID: "b", CalculatedPrice: 0.99, Quantity: 7},
			{LineID: "c", CalculatedPrice: 244, Quantity: 1},
		},
	}
	assert.InDelta(t, 12.5*3+0.99*7+244, Subtotal(s), 1e-9)
}

func TestClearCart(t *testing.T) {
	s := &models.CartSession{
		Items:      []models.CartItem{{LineID: "a", Quantity: 1}},
		CouponCode: "RAPPEL3",
		UseRappel:  true,
	}
	ClearCart(s)
	assert.Empty(t, s.Items)
	assert.Empty(t, s.CouponCode)
	assert.False(t, s.UseRappel)
	assert.Zero(t, Subtotal(s))
}

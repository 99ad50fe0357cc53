package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laminateProduct() models.Product {
	return models.Product{
		Reference:   "LM12225",
		Name:        "Laminado monomerico",
		Category:    models.CategoryFlexible,
		Subcategory: "laminado",
		Brand:       "Mactac",
		IsFlexible:  true,
		PricePerM2:  3.0,
		Width:       1.22,
		Length:      25,
	}
}

func bundleCart(t *testing.T) (*models.CartSession, models.CartItem) {
	t.Helper()
	s := &models.CartSession{}
	item, err := AddToCart(s, vinylProduct(), nil, 2, models.CartItemOptions{})
	require.NoError(t, err)
	return s, item
}

func TestFindBundleOffers(t *testing.T) {
	s, item := bundleCart(t)
	otherBrand := laminateProduct()
	otherBrand.Reference = "LM-X"
	otherBrand.Brand = "Oracal"
	otherWidth := laminateProduct()
	otherWidth.Reference = "LM-Y"
	otherWidth.Width = 1.06

	catalog := []models.Product{laminateProduct(), otherBrand, otherWidth, vinylProduct()}
	offers := FindBundleOffers(s, catalog)

	require.Len(t, offers, 1)
	assert.Equal(t, item.LineID, offers[0].VinylLineID)
	// Seul le laminé de même laize et même marque est candidat
	require.Len(t, offers[0].Laminates, 1)
	assert.Equal(t, "LM12225", offers[0].Laminates[0].Reference)
}

func TestFindBundleOffersNoVinyl(t *testing.T) {
	s := &models.CartSession{}
	_, err := AddToCart(s, models.Product{Reference: "PVC-3MM", Name: "Plancha PVC", Price: 18}, nil, 1, models.CartItemOptions{})
	require.NoError(t, err)

	assert.Empty(t, FindBundleOffers(s, []models.Product{laminateProduct()}))
}

func TestAcceptBundle(t *testing.T) {
	s, vinyl := bundleCart(t)
	lam, err := AcceptBundle(s, vinyl.LineID, laminateProduct(), "gloss")
	require.NoError(t, err)

	// Exactement une nouvelle ligne laminé, la quantité vinyle intacte
	require.Len(t, s.Items, 2)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, 1, lam.Quantity)

	// Les deux tarifs au m² baissent de 0.10
	assert.InDelta(t, 3.9, s.Items[0].PricePerM2, 1e-9)
	assert.InDelta(t, 3.9*1.22*50, s.Items[0].CalculatedPrice, 1e-9)
	assert.InDelta(t, 2.9, lam.PricePerM2, 1e-9)
	assert.InDelta(t, 2.9*1.22*25, lam.CalculatedPrice, 1e-9)
}

func TestAcceptBundleNeverMergesWithExistingLaminate(t *testing.T) {
	s, vinyl := bundleCart(t)
	// Le même laminé est déjà au panier, plein tarif
	_, err := AddToCart(s, laminateProduct(), nil, 1, models.CartItemOptions{Finish: "gloss"})
	require.NoError(t, err)

	_, err = AcceptBundle(s, vinyl.LineID, laminateProduct(), "gloss")
	require.NoError(t, err)

	// Trois lignes : le laminé remisé ne fusionne pas avec l'existant
	assert.Len(t, s.Items, 3)
}

func TestAcceptBundleRateFloor(t *testing.T) {
	s, vinyl := bundleCart(t)
	cheap := laminateProduct()
	cheap.PricePerM2 = 0.05
	lam, err := AcceptBundle(s, vinyl.LineID, cheap, "matte")
	require.NoError(t, err)

	// Le tarif remisé ne passe jamais sous zéro
	assert.Zero(t, lam.PricePerM2)
	assert.Zero(t, lam.CalculatedPrice)
}

func TestAcceptBundleRejections(t *testing.T) {
	s, vinyl := bundleCart(t)

	_, err := AcceptBundle(s, vinyl.LineID, laminateProduct(), "satin")
	assert.ErrorIs(t, err, ErrInvalidFinish)

	mismatch := laminateProduct()
	mismatch.Brand = "Oracal"
	_, err = AcceptBundle(s, vinyl.LineID, mismatch, "gloss")
	assert.ErrorIs(t, err, ErrBundleMismatch)

	_, err = AcceptBundle(s, "inconnu", laminateProduct(), "gloss")
	assert.ErrorIs(t, err, ErrNotVinylLine)

	_, err = AcceptBundle(s, vinyl.LineID, vinylProduct(), "gloss")
	assert.ErrorIs(t, err, ErrNotLaminate)

	// Refuser le lot = ne rien appeler : le panier reste inchangé
	assert.Len(t, s.Items, 1)
	assert.InDelta(t, 4.0, s.Items[0].PricePerM2, 1e-9)
}

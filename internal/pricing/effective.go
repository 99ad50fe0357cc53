package pricing

import "rotuprint_back_end/internal/models"

// EffectiveProduct applique le tarif négocié d'un client à un produit du
// catalogue. Sans client ou sans tarif négocié pour cette référence, le
// produit revient inchangé. Pour un produit souple le tarif remplace le
// prix au m² (et le prix unitaire est remis à zéro, un rouleau se facture
// à la surface) ; sinon il remplace le prix unitaire.
// La résolution se fait à l'ajout au panier : c'est le tarif effectif qui
// est figé dans CalculatedPrice, jamais re-dérivé ensuite.
func EffectiveProduct(p models.Product, u *models.User) models.Product {
	if u == nil {
		return p
	}
	override, ok := u.CustomPrices[p.Reference]
	if !ok {
		return p
	}

	if p.IsFlexible {
		p.PricePerM2 = override
		p.Price = 0
	} else {
		p.Price = override
	}
	return p
}

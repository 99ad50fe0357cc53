package pricing

import (
	"errors"

	"rotuprint_back_end/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantité invalide")
	ErrLineNotFound    = errors.New("ligne de panier introuvable")
)

// AddToCart ajoute un produit à la session de panier. Le tarif effectif du
// client est résolu maintenant et le prix unitaire figé dans la ligne :
// - produit souple : PricePerM2 × laize (choisie ou du produit) × longueur
// - produit unitaire : Price
// Deux ajouts de la même référence avec les mêmes options fusionnent
// (quantité cumulée) ; des options différentes restent des lignes distinctes.
func AddToCart(s *models.CartSession, p models.Product, u *models.User, quantity int, opts models.CartItemOptions) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	eff := EffectiveProduct(p, u)

	width := eff.Width
	if eff.IsFlexible && opts.Width > 0 {
		width = opts.Width
	}

	var unitPrice float64
	if eff.IsFlexible {
		unitPrice = eff.PricePerM2 * width * eff.Length
	} else {
		unitPrice = eff.Price
	}

	lineID := models.CartLineID(eff.Reference, opts)
	for i := range s.Items {
		if s.Items[i].LineID == lineID {
			s.Items[i].Quantity += quantity
			return s.Items[i], nil
		}
	}

	item := models.CartItem{
		LineID:          lineID,
		Reference:       eff.Reference,
		Name:            eff.Name,
		Category:        eff.Category,
		Brand:           eff.Brand,
		IsFlexible:      eff.IsFlexible,
		Width:           width,
		Length:          eff.Length,
		PricePerM2:      eff.PricePerM2,
		Quantity:        quantity,
		CalculatedPrice: unitPrice,
		Options:         opts,
	}
	s.Items = append(s.Items, item)
	return item, nil
}

// UpdateQuantity ajuste la quantité d'une ligne de delta. Une ligne dont la
// quantité tombe à ≤ 0 est retirée du panier, jamais conservée à zéro.
func UpdateQuantity(s *models.CartSession, lineID string, delta int) error {
	for i := range s.Items {
		if s.Items[i].LineID != lineID {
			continue
		}
		s.Items[i].Quantity += delta
		if s.Items[i].Quantity <= 0 {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
		}
		return nil
	}
	return ErrLineNotFound
}

// ClearCart vide la session : après soumission de commande et à la déconnexion
func ClearCart(s *models.CartSession) {
	s.Items = nil
	s.CouponCode = ""
	s.UseRappel = false
}

// Subtotal = Σ prix unitaire figé × quantité. Toujours recalculé à la
// lecture, jamais stocké à part, pour éviter toute dérive.
func Subtotal(s *models.CartSession) float64 {
	var total float64
	for _, it := range s.Items {
		total += it.LineTotal()
	}
	return total
}

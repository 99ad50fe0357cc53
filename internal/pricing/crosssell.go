package pricing

import (
	"errors"
	"strings"

	"rotuprint_back_end/internal/models"
)

// Remise fixe au m² appliquée aux deux lignes d'un lot vinyle + laminé
const BundleDiscountPerM2 = 0.10

var (
	ErrNotVinylLine   = errors.New("la ligne n'est pas un vinyle éligible")
	ErrNotLaminate    = errors.New("le produit proposé n'est pas un laminé")
	ErrBundleMismatch = errors.New("laize ou marque incompatible avec le vinyle")
	ErrInvalidFinish  = errors.New("finition invalide")
)

// BundleOffer - pour une ligne vinyle du panier, les laminés candidats
// (même laize, même marque) parmi lesquels choisir
type BundleOffer struct {
	VinylLineID string           `json:"vinyl_line_id"`
	VinylName   string           `json:"vinyl_name"`
	Laminates   []models.Product `json:"laminates"`
}

func isVinyl(it models.CartItem) bool {
	return it.IsFlexible && strings.Contains(strings.ToLower(it.Name), "vinil")
}

func isLaminate(p models.Product) bool {
	needle := strings.ToLower(p.Name + " " + p.Subcategory)
	return p.IsFlexible && strings.Contains(needle, "laminad")
}

// FindBundleOffers cherche, pour chaque ligne vinyle du panier, les laminés
// du catalogue partageant laize et marque. Aucun candidat → pas d'offre.
func FindBundleOffers(s *models.CartSession, catalog []models.Product) []BundleOffer {
	var offers []BundleOffer
	for _, it := range s.Items {
		if !isVinyl(it) {
			continue
		}
		var candidates []models.Product
		for _, p := range catalog {
			if isLaminate(p) && p.Width == it.Width && p.Brand == it.Brand {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) > 0 {
			offers = append(offers, BundleOffer{
				VinylLineID: it.LineID,
				VinylName:   it.Name,
				Laminates:   candidates,
			})
		}
	}
	return offers
}

// AcceptBundle matérialise un lot accepté : le laminé choisi devient une
// nouvelle ligne distincte (jamais fusionnée avec une ligne existante du
// même produit, son tarif remisé diffère) et les deux lignes voient leur
// tarif au m² réduit de BundleDiscountPerM2, plancher à zéro. La quantité
// de la ligne vinyle n'est jamais touchée. Décision de présentation :
// rien ne se passe tant que le client n'accepte pas explicitement.
func AcceptBundle(s *models.CartSession, vinylLineID string, laminate models.Product, finish string) (models.CartItem, error) {
	if finish != "gloss" && finish != "matte" {
		return models.CartItem{}, ErrInvalidFinish
	}
	if !isLaminate(laminate) {
		return models.CartItem{}, ErrNotLaminate
	}

	var vinyl *models.CartItem
	for i := range s.Items {
		if s.Items[i].LineID == vinylLineID {
			vinyl = &s.Items[i]
			break
		}
	}
	if vinyl == nil || !isVinyl(*vinyl) {
		return models.CartItem{}, ErrNotVinylLine
	}
	if laminate.Width != vinyl.Width || laminate.Brand != vinyl.Brand {
		return models.CartItem{}, ErrBundleMismatch
	}

	// Remise sur la ligne vinyle : seul le tarif au m² bouge
	vinyl.PricePerM2 = discountedRate(vinyl.PricePerM2)
	vinyl.CalculatedPrice = vinyl.PricePerM2 * vinyl.Width * vinyl.Length

	rate := discountedRate(laminate.PricePerM2)
	opts := models.CartItemOptions{Finish: finish}
	item := models.CartItem{
		// Suffixe de lot : garantit une ligne distincte même si le même
		// laminé est déjà au panier à son tarif normal
		LineID:          models.CartLineID(laminate.Reference, opts) + "|bundle:" + vinylLineID,
		Reference:       laminate.Reference,
		Name:            laminate.Name,
		Category:        laminate.Category,
		Brand:           laminate.Brand,
		IsFlexible:      true,
		Width:           laminate.Width,
		Length:          laminate.Length,
		PricePerM2:      rate,
		Quantity:        1,
		CalculatedPrice: rate * laminate.Width * laminate.Length,
		Options:         opts,
	}
	s.Items = append(s.Items, item)
	return item, nil
}

func discountedRate(rate float64) float64 {
	rate -= BundleDiscountPerM2
	if rate < 0 {
		return 0
	}
	return rate
}

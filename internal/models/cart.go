package models

import (
	"fmt"
	"strconv"
)

// Options de configuration choisies à l'ajout au panier.
// Elles font partie de la clé d'identité de la ligne : deux variantes
// configurées différemment du même produit restent des lignes distinctes.
type CartItemOptions struct {
	Finish   string  `json:"finish,omitempty"`
	Backing  string  `json:"backing,omitempty"`
	Adhesive string  `json:"adhesive,omitempty"`
	Width    float64 `json:"width,omitempty"` // laize choisie, mètres (0 = laize du produit)
}

// CartItem - snapshot produit + quantité + prix unitaire figé.
// CalculatedPrice est calculé une seule fois à l'ajout (tarif effectif du
// client inclus) et n'est jamais recalculé ensuite.
type CartItem struct {
	LineID          string          `json:"line_id"`
	Reference       string          `json:"reference"`
	Name            string          `json:"name"`
	Category        string          `json:"category,omitempty"`
	Brand           string          `json:"brand,omitempty"`
	IsFlexible      bool            `json:"is_flexible"`
	Width           float64         `json:"width,omitempty"`
	Length          float64         `json:"length,omitempty"`
	PricePerM2      float64         `json:"price_per_m2,omitempty"`
	Quantity        int             `json:"quantity"`
	CalculatedPrice float64         `json:"calculated_price"`
	Options         CartItemOptions `json:"options,omitempty"`
}

// LineTotal = prix unitaire figé × quantité
func (it CartItem) LineTotal() float64 {
	return it.CalculatedPrice * float64(it.Quantity)
}

// CartLineID construit la clé d'identité d'une ligne à partir de la
// référence produit et des options configurées
func CartLineID(reference string, opts CartItemOptions) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		reference, opts.Finish, opts.Backing, opts.Adhesive,
		strconv.FormatFloat(opts.Width, 'f', -1, 64))
}

// CartSession - agrégat de session de checkout, stocké en JSON dans Redis
// sous "cart:<userID>". Le code coupon et le choix rappel sont spéculatifs :
// aucun effet persistant avant la finalisation de la commande.
type CartSession struct {
	UserID         string     `json:"user_id"`
	Items          []CartItem `json:"items"`
	CouponCode     string     `json:"coupon_code,omitempty"`
	UseRappel      bool       `json:"use_rappel,omitempty"`
	ShippingMethod string     `json:"shipping_method,omitempty"`
	SubmissionKey  string     `json:"submission_key,omitempty"` // clé d'idempotence de finalisation
}

package models

// Méthodes de livraison. Tarif forfaitaire, jamais calculé au poids :
// l'estimation de poids alimente l'outillage logistique, pas le total.
const (
	ShippingOwn      = "own"        // enlèvement / tournée propre
	ShippingAgency24 = "agency-24h" // messagerie 24h
)

type ShippingOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

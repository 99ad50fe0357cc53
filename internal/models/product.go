package models

import "time"

// Catégories de produits du catalogue RotuPrint
const (
	CategoryFlexible  = "flexible"
	CategoryRigid     = "rigid"
	CategoryInk       = "ink"
	CategoryAccessory = "accessory"
	CategoryDisplay   = "display"
)

// Attributs configurables d'un produit (finition, dorso, adhésif...)
type ProductAttributes struct {
	Finish       string `json:"finish,omitempty"`        // "gloss" | "matte"
	Backing      string `json:"backing,omitempty"`       // "white" | "gray" | "black"
	Adhesive     string `json:"adhesive,omitempty"`      // "permanent" | "removable"
	MaterialType string `json:"material_type,omitempty"` // ex: "monomeric"
}

// Product - entrée du catalogue, clé métier = Reference.
// Un produit flexible (rouleau) est tarifé au m² (PricePerM2),
// un produit non flexible à l'unité (Price). Jamais les deux.
type Product struct {
	Reference   string            `json:"reference" db:"reference"`
	Name        string            `json:"name" db:"name"`
	Category    string            `json:"category" db:"category"`
	Subcategory string            `json:"subcategory,omitempty" db:"subcategory"`
	IsFlexible  bool              `json:"is_flexible" db:"is_flexible"`
	Price       float64           `json:"price" db:"price"`
	PricePerM2  float64           `json:"price_per_m2" db:"price_per_m2"`
	Width       float64           `json:"width" db:"width"`   // mètres
	Length      float64           `json:"length" db:"length"` // mètres
	Unit        string            `json:"unit,omitempty" db:"unit"`
	InStock     bool              `json:"in_stock" db:"in_stock"`
	Brand       string            `json:"brand,omitempty" db:"brand"`
	Attributes  ProductAttributes `json:"attributes,omitempty"`
	Weight      float64           `json:"weight" db:"weight"` // kilogrammes
	Description string            `json:"description,omitempty" db:"description"`
	CreatedAt   *time.Time        `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty" db:"updated_at"`
}

// PricedRate retourne le tarif qui pilote le prix de ce produit
func (p Product) PricedRate() float64 {
	if p.IsFlexible {
		return p.PricePerM2
	}
	return p.Price
}

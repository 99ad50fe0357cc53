package models

type User struct {
	ID                string             `json:"user_id"`
	Name              string             `json:"name,omitempty"`
	Email             string             `json:"email"`
	Username          string             `json:"username,omitempty"`
	Password          string             `json:"-"`
	Role              string             `json:"role,omitempty"` // "admin" | "client"
	RappelAccumulated float64            `json:"rappel_accumulated"`
	CustomPrices      map[string]float64 `json:"custom_prices,omitempty"` // référence produit → tarif négocié
	UsedCoupons       []string           `json:"used_coupons,omitempty"`
	SalesRep          string             `json:"sales_rep,omitempty"`
	Delegation        string             `json:"delegation,omitempty"`
	Address           string             `json:"address,omitempty"`
	HidePrices        bool               `json:"hide_prices,omitempty"`
}

// HasUsedCoupon indique si ce client a déjà consommé un code à usage unique
func (u *User) HasUsedCoupon(code string) bool {
	for _, c := range u.UsedCoupons {
		if c == code {
			return true
		}
	}
	return false
}

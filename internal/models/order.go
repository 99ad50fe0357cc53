package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de commande. Une commande est immuable après création,
// seules les transitions de statut (logistique externe) la modifient.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID             gocql.UUID `json:"id"`
	UserID         string     `json:"user_id"`
	CreatedAt      time.Time  `json:"created_at"`
	Items          []CartItem `json:"items"`
	Subtotal       float64    `json:"subtotal"`
	CouponCode     string     `json:"coupon_code,omitempty"`
	CouponDiscount float64    `json:"coupon_discount"`
	RappelDiscount float64    `json:"rappel_discount"`
	Tax            float64    `json:"tax"`
	ShippingMethod string     `json:"shipping_method"`
	ShippingCost   float64    `json:"shipping_cost"`
	Total          float64    `json:"total"`
	Status         string     `json:"status"`
	SalesRep       string     `json:"sales_rep,omitempty"`
	Observations   string     `json:"observations,omitempty"`
}

// OrderTotals - décomposition du total renvoyée au front avant finalisation
type OrderTotals struct {
	Subtotal       float64 `json:"subtotal"`
	CouponDiscount float64 `json:"coupon_discount"`
	RappelDiscount float64 `json:"rappel_discount"`
	NetSubtotal    float64 `json:"net_subtotal"`
	Tax            float64 `json:"tax"`
	ShippingCost   float64 `json:"shipping_cost"`
	Total          float64 `json:"total"`
}

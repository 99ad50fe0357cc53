package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Coupon struct {
	ID            gocql.UUID `json:"id"`
	Code          string     `json:"code"`
	Type          string     `json:"type"` // "percentage", "fixed"
	Value         float64    `json:"value"`
	MinAmount     float64    `json:"min_amount"`
	MaxUses       int        `json:"max_uses"`
	UsedCount     int        `json:"used_count"`
	OncePerClient bool       `json:"once_per_client"`
	StartsAt      time.Time  `json:"starts_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	IsActive      bool       `json:"is_active"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CouponValidation struct {
	IsValid      bool    `json:"is_valid"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Discount     float64 `json:"discount"`
	Type         string  `json:"type"`
	Code         string  `json:"code"`
}

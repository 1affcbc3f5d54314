package model

import "time"

// PlanTypes and BillingPeriods enumerate the accepted plan attributes.
var (
	PlanTypes      = map[string]bool{"basic": true, "professional": true, "enterprise": true}
	BillingPeriods = map[string]bool{"monthly": true, "quarterly": true, "yearly": true}
)

// Plan mirrors the `plans` table. Plans form a read-mostly catalog referenced
// by companies; Price is stored in minor units (cents).
type Plan struct {
	ID            uint64    `json:"id"`
	PlanName      string    `json:"planName"`
	PlanType      string    `json:"planType"`
	Price         int64     `json:"price"`
	BillingPeriod string    `json:"billingPeriod"`
	MaxEmployees  *int64    `json:"maxEmployees"`
	Features      *string   `json:"features"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

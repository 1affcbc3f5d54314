package model

import "time"

// Company mirrors the `companies` table. Each company is owned by exactly
// one user and starts unapproved until an admin flips the flag.
type Company struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"userId"`
	CompanyName  string    `json:"companyName"`
	CNPJ         string    `json:"cnpj"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone *string   `json:"contactPhone"`
	PlanID       *uint64   `json:"planId"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

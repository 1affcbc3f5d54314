package model

import "time"

// HealthProfessional mirrors the `health_professionals` table. Professionals
// are listed publicly once approved by an admin.
type HealthProfessional struct {
	ID                 uint64    `json:"id"`
	UserID             uint64    `json:"userId"`
	ProfessionalName   string    `json:"professionalName"`
	Specialty          string    `json:"specialty"`
	RegistrationNumber string    `json:"registrationNumber"`
	ContactEmail       string    `json:"contactEmail"`
	ContactPhone       *string   `json:"contactPhone"`
	Bio                *string   `json:"bio"`
	Approved           bool      `json:"approved"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

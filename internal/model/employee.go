package model

import "time"

// Employee mirrors the `employees` table. An employee profile is owned by
// exactly one user and belongs to exactly one company.
type Employee struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	CompanyID     uint64    `json:"companyId"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	Department    *string   `json:"department"`
	Position      *string   `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

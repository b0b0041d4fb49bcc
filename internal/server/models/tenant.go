package models

// Tenant is a renter profile. UserID links the tenant to the account that
// manages it; zero means the tenant is not linked to any account.
type Tenant struct {
	ID     int64
	Name   string
	Email  string
	UserID int64
}

package models

import "time"

// Rental application statuses.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// RentalApplication is a tenant's application for a property.
type RentalApplication struct {
	ID             int64
	TenantID       int64
	PropertyID     int64
	Status         string
	SubmissionDate time.Time
}

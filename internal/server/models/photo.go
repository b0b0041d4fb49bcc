package models

import "time"

// PropertyPhoto records an object-storage key for a photo attached to a
// property. The bytes themselves live in S3-compatible storage.
type PropertyPhoto struct {
	ID         int64
	PropertyID int64
	StorageKey string
	CreatedAt  time.Time
}

// DashboardStats are the totals shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProperties   int64 `json:"total_properties"`
	TotalTenants      int64 `json:"total_tenants"`
	TotalApplications int64 `json:"total_applications"`
}

package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"propertyId"`
	TenantID   string            `json:"tenantId"`
	Status     ApplicationStatus `json:"status"`
	Message    string            `json:"message,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// Active means the application blocks a new submission for the same
// (tenant, property) pair.
func (a Application) Active() bool {
	return a.Status == ApplicationPending || a.Status == ApplicationApproved
}

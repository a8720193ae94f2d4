package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type ApplicationService struct {
	apps       domain.ApplicationRepository
	properties domain.PropertyRepository
}

func NewApplicationService(a domain.ApplicationRepository, p domain.PropertyRepository) *ApplicationService {
	return &ApplicationService{apps: a, properties: p}
}

// Apply submits a tenant's application for a property. A pair keeps a
// single application record for all of history: a rejected one is
// revived in place (same identity, new message, refreshed createdAt)
// rather than replaced, and a pending or approved one blocks the
// submission. The returned bool is true when an existing record was
// resubmitted.
func (s *ApplicationService) Apply(ctx context.Context, propertyID, tenantID, message string) (domain.Application, bool, error) {
	existing, err := s.apps.GetForPair(ctx, propertyID, tenantID)
	switch {
	case err == nil:
		if existing.Active() {
			return domain.Application{}, false, domain.ErrActiveApplication
		}
		existing.Status = domain.ApplicationPending
		existing.Message = message
		existing.CreatedAt = time.Now().UTC()
		if err := s.apps.Update(ctx, existing); err != nil {
			return domain.Application{}, false, err
		}
		return existing, true, nil

	case errors.Is(err, domain.ErrNotFound):
		a := domain.Application{
			ID:         uuid.NewString(),
			PropertyID: propertyID,
			TenantID:   tenantID,
			Status:     domain.ApplicationPending,
			Message:    message,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.apps.Create(ctx, a); err != nil {
			return domain.Application{}, false, err
		}
		return a, false, nil

	default:
		return domain.Application{}, false, err
	}
}

// Approve marks the application approved. Only the owner of the
// referenced property may decide.
func (s *ApplicationService) Approve(ctx context.Context, applicationID, requesterID string) (domain.Application, error) {
	return s.decide(ctx, applicationID, requesterID, domain.ApplicationApproved)
}

// Reject marks the application rejected; the tenant may re-apply later.
func (s *ApplicationService) Reject(ctx context.Context, applicationID, requesterID string) (domain.Application, error) {
	return s.decide(ctx, applicationID, requesterID, domain.ApplicationRejected)
}

func (s *ApplicationService) decide(ctx context.Context, applicationID, requesterID string, status domain.ApplicationStatus) (domain.Application, error) {
	a, err := s.apps.Get(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	p, err := s.properties.Get(ctx, a.PropertyID)
	if err != nil {
		return domain.Application{}, err
	}
	if !AllowOwner(requesterID, p.CreatedBy) {
		return domain.Application{}, domain.ErrForbidden
	}

	a.Status = status
	if err := s.apps.Update(ctx, a); err != nil {
		return domain.Application{}, err
	}
	return a, nil
}

// ForProperty lists applications on a property for its landlord.
func (s *ApplicationService) ForProperty(ctx context.Context, propertyID, requesterID string) ([]domain.Application, error) {
	p, err := s.properties.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !AllowOwner(requesterID, p.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	return s.apps.ForProperty(ctx, propertyID)
}

// MyApplications lists the tenant's applications.
func (s *ApplicationService) MyApplications(ctx context.Context, tenantID string) ([]domain.Application, error) {
	return s.apps.ForTenant(ctx, tenantID)
}

// MyApplication fetches a single application owned by the tenant.
func (s *ApplicationService) MyApplication(ctx context.Context, applicationID, tenantID string) (domain.Application, error) {
	a, err := s.apps.Get(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	if a.TenantID != tenantID {
		return domain.Application{}, domain.ErrNotFound
	}
	return a, nil
}

// Status returns the tenant's application status for a property.
func (s *ApplicationService) Status(ctx context.Context, propertyID, tenantID string) (domain.ApplicationStatus, error) {
	a, err := s.apps.GetForPair(ctx, propertyID, tenantID)
	if err != nil {
		return "", err
	}
	return a.Status, nil
}

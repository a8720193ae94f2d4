package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type PropertyService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPropertyService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *PropertyService {
	return &PropertyService{repo: r, cache: c, cacheTTL: ttl}
}

type CreatePropertyInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
}

type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
}

func propertyKey(id string) string { return "property:" + id }

func (s *PropertyService) Create(ctx context.Context, ownerID string, in CreatePropertyInput) (domain.Property, error) {
	if in.Title == "" || in.Price == 0 || in.Location == "" {
		return domain.Property{}, fmt.Errorf("%w: title, price and location are required", domain.ErrValidation)
	}
	p := domain.Property{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		CreatedBy:   ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (domain.Property, error) {
	key := propertyKey(id)
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Update(ctx context.Context, id, requesterID string, in UpdatePropertyInput) (domain.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if !AllowOwner(requesterID, p.CreatedBy) {
		return domain.Property{}, domain.ErrForbidden
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Location != nil {
		p.Location = *in.Location
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id, requesterID string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !AllowOwner(requesterID, p.CreatedBy) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	return nil
}

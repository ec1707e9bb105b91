package service

import (
	"context"
	"errors"
	"fmt"

	"scopeforge/internal/model"
	"scopeforge/internal/repository"
	"scopeforge/internal/schema"
)

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrSchemaReserved = errors.New("the blueprint schema is read-only")
)

// SchemaService manages host-authored questionnaire schemas. The built-in
// blueprint is served from memory and can never be modified through this
// service.
type SchemaService struct {
	schemas repository.SchemaRepo
}

// NewSchemaService creates a new schema service
func NewSchemaService(schemas repository.SchemaRepo) *SchemaService {
	return &SchemaService{schemas: schemas}
}

// Create validates and stores a new schema owned by the host
func (s *SchemaService) Create(ctx context.Context, hostID string, sch *model.Schema) (*model.Schema, error) {
	if err := schema.Validate(sch); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	sch.HostID = hostID
	if _, err := s.schemas.Create(ctx, sch); err != nil {
		return nil, err
	}
	return sch, nil
}

// Get resolves a schema id, falling back to the built-in blueprint
func (s *SchemaService) Get(ctx context.Context, id string) (*model.Schema, error) {
	if id == "" || id == schema.BlueprintID {
		return schema.Blueprint(), nil
	}

	sch, err := s.schemas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sch == nil {
		return nil, ErrSchemaNotFound
	}
	return sch, nil
}

// ListByHost returns the blueprint followed by the host's own schemas
func (s *SchemaService) ListByHost(ctx context.Context, hostID string) ([]*model.Schema, error) {
	owned, err := s.schemas.GetByHostID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return append([]*model.Schema{schema.Blueprint()}, owned...), nil
}

// Update validates and replaces a host-owned schema
func (s *SchemaService) Update(ctx context.Context, hostID string, sch *model.Schema) (*model.Schema, error) {
	if sch.ID == schema.BlueprintID {
		return nil, ErrSchemaReserved
	}
	if err := schema.Validate(sch); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	existing, err := s.schemas.GetByID(ctx, sch.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.HostID != hostID {
		return nil, ErrSchemaNotFound
	}

	sch.HostID = hostID
	sch.CreatedAt = existing.CreatedAt
	if err := s.schemas.Update(ctx, sch); err != nil {
		return nil, err
	}
	return sch, nil
}

// Delete removes a host-owned schema
func (s *SchemaService) Delete(ctx context.Context, hostID, id string) error {
	if id == schema.BlueprintID {
		return ErrSchemaReserved
	}

	existing, err := s.schemas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.HostID != hostID {
		return ErrSchemaNotFound
	}
	return s.schemas.Delete(ctx, id)
}

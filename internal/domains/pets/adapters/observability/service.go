package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	produtodomain "github.com/petcare/petcare-api/internal/domains/produtos/domain"
	platformobs "github.com/petcare/petcare-api/internal/platform/observability"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

const tracerName = "github.com/petcare/petcare-api/internal/domains/pets/adapters/observability/service"

const (
	metricCreated = "pets.service.created"
	metricUpdated = "pets.service.updated"
	metricDeleted = "pets.service.deleted"
)

var counters = []platformobs.Counter{
	{Name: metricCreated, Description: "Number of pets created"},
	{Name: metricUpdated, Description: "Number of pets updated"},
	{Name: metricDeleted, Description: "Number of pets deleted"},
}

// Service decorates the pets service with tracing, logging, and metrics.
type Service struct {
	inner ports.Service
	obs   *platformobs.Decorator
}

// New wraps the core pets service.
func New(inner ports.Service, opts ...platformobs.DecoratorOption) ports.Service {
	return &Service{inner: inner, obs: platformobs.NewDecorator(tracerName, counters, opts...)}
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "PetService.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list pets")
	}
	span.SetAttributes(attribute.Int("pet.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "PetService.GetByID", attribute.Int64("pet.id", id))
	defer span.End()
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to get pet", slog.Int64("pet_id", id))
	}
	return result, nil
}

func (s *Service) ListProdutos(ctx context.Context, id int64) ([]*projection.Projection[*produtodomain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "PetService.ListProdutos", attribute.Int64("pet.id", id))
	defer span.End()
	result, err := s.inner.ListProdutos(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list pet produtos", slog.Int64("pet_id", id))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "PetService.Create", attribute.Bool("pet.idempotent", input.IdempotencyKey != ""))
	defer span.End()
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to create pet")
	}
	s.obs.Count(ctx, metricCreated)
	span.SetAttributes(attribute.Int64("pet.id", result.Entity.ID))
	s.obs.Info(ctx, "pet created", slog.Int64("pet_id", result.Entity.ID), slog.Int64("usuario_id", result.Entity.UsuarioID))
	return result, nil
}

func (s *Service) Update(ctx context.Context, input pettypes.UpdatePetInput) (*projection.Projection[*domain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "PetService.Update", attribute.Int64("pet.id", input.ID))
	defer span.End()
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to update pet", slog.Int64("pet_id", input.ID))
	}
	s.obs.Count(ctx, metricUpdated)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.obs.Start(ctx, "PetService.Delete", attribute.Int64("pet.id", id))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.obs.Fail(ctx, span, err, "failed to delete pet", slog.Int64("pet_id", id))
	}
	s.obs.Count(ctx, metricDeleted)
	s.obs.Info(ctx, "pet deleted", slog.Int64("pet_id", id))
	return nil
}

var _ ports.Service = (*Service)(nil)

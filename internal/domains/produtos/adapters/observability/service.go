package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	platformobs "github.com/petcare/petcare-api/internal/platform/observability"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

const tracerName = "github.com/petcare/petcare-api/internal/domains/produtos/adapters/observability/service"

const (
	metricCreated = "produtos.service.created"
	metricUpdated = "produtos.service.updated"
	metricDeleted = "produtos.service.deleted"
)

var counters = []platformobs.Counter{
	{Name: metricCreated, Description: "Number of produtos created"},
	{Name: metricUpdated, Description: "Number of produtos updated"},
	{Name: metricDeleted, Description: "Number of produtos deleted"},
}

// Service decorates the produtos service with tracing, logging, and metrics.
type Service struct {
	inner ports.Service
	obs   *platformobs.Decorator
}

func New(inner ports.Service, opts ...platformobs.DecoratorOption) ports.Service {
	return &Service{inner: inner, obs: platformobs.NewDecorator(tracerName, counters, opts...)}
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list produtos")
	}
	span.SetAttributes(attribute.Int("produto.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.GetByID", attribute.Int64("produto.id", id))
	defer span.End()
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to get produto", slog.Int64("produto_id", id))
	}
	return result, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.ListByPet", attribute.Int64("pet.id", petID))
	defer span.End()
	result, err := s.inner.ListByPet(ctx, petID)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list produtos by pet", slog.Int64("pet_id", petID))
	}
	return result, nil
}

func (s *Service) GetPet(ctx context.Context, id int64) (*projection.Projection[*petdomain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.GetPet", attribute.Int64("produto.id", id))
	defer span.End()
	result, err := s.inner.GetPet(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to get produto pet", slog.Int64("produto_id", id))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, input ports.MutationInput) (*projection.Projection[*domain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.Create")
	defer span.End()
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to create produto")
	}
	s.obs.Count(ctx, metricCreated)
	span.SetAttributes(attribute.Int64("produto.id", result.Entity.ID), attribute.String("produto.tipo", result.Entity.Tipo))
	s.obs.Info(ctx, "produto created", slog.Int64("produto_id", result.Entity.ID), slog.String("tipo", result.Entity.Tipo))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, input ports.MutationInput) (*projection.Projection[*domain.Produto], error) {
	ctx, span := s.obs.Start(ctx, "ProdutoService.Update", attribute.Int64("produto.id", id))
	defer span.End()
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to update produto", slog.Int64("produto_id", id))
	}
	s.obs.Count(ctx, metricUpdated)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.obs.Start(ctx, "ProdutoService.Delete", attribute.Int64("produto.id", id))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.obs.Fail(ctx, span, err, "failed to delete produto", slog.Int64("produto_id", id))
	}
	s.obs.Count(ctx, metricDeleted)
	s.obs.Info(ctx, "produto deleted", slog.Int64("produto_id", id))
	return nil
}

var _ ports.Service = (*Service)(nil)

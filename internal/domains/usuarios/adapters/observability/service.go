package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	platformobs "github.com/petcare/petcare-api/internal/platform/observability"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

const tracerName = "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/observability/service"

const (
	metricCreated       = "usuarios.service.created"
	metricUpdated       = "usuarios.service.updated"
	metricDeleted       = "usuarios.service.deleted"
	metricAuthenticated = "usuarios.service.authenticated"
	metricAuthFailures  = "usuarios.service.authentication_failures"
)

var counters = []platformobs.Counter{
	{Name: metricCreated, Description: "Number of usuarios created"},
	{Name: metricUpdated, Description: "Number of usuarios updated"},
	{Name: metricDeleted, Description: "Number of usuarios deleted"},
	{Name: metricAuthenticated, Description: "Number of successful credential checks"},
	{Name: metricAuthFailures, Description: "Number of rejected credential checks"},
}

// Service decorates the usuario service with tracing, logging, and metrics.
type Service struct {
	inner ports.Service
	obs   *platformobs.Decorator
}

// New wraps the core usuario service.
func New(inner ports.Service, opts ...platformobs.DecoratorOption) ports.Service {
	return &Service{inner: inner, obs: platformobs.NewDecorator(tracerName, counters, opts...)}
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list usuarios")
	}
	span.SetAttributes(attribute.Int("usuario.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.GetByID", attribute.Int64("usuario.id", id))
	defer span.End()
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to get usuario", slog.Int64("usuario_id", id))
	}
	return result, nil
}

func (s *Service) ListPets(ctx context.Context, id int64) ([]*projection.Projection[*petdomain.Pet], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.ListPets", attribute.Int64("usuario.id", id))
	defer span.End()
	result, err := s.inner.ListPets(ctx, id)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to list usuario pets", slog.Int64("usuario_id", id))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*projection.Projection[*domain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.Create")
	defer span.End()
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to create usuario")
	}
	s.obs.Count(ctx, metricCreated)
	span.SetAttributes(attribute.Int64("usuario.id", result.Entity.ID))
	s.obs.Info(ctx, "usuario created", slog.Int64("usuario_id", result.Entity.ID))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, input ports.UpdateInput) (*projection.Projection[*domain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.Update", attribute.Int64("usuario.id", id))
	defer span.End()
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to update usuario", slog.Int64("usuario_id", id))
	}
	s.obs.Count(ctx, metricUpdated)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.obs.Start(ctx, "UsuarioService.Delete", attribute.Int64("usuario.id", id))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.obs.Fail(ctx, span, err, "failed to delete usuario", slog.Int64("usuario_id", id))
	}
	s.obs.Count(ctx, metricDeleted)
	s.obs.Info(ctx, "usuario deleted", slog.Int64("usuario_id", id))
	return nil
}

// Authenticate never records the email on failures to keep credentials out of logs.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (*projection.Projection[*domain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "UsuarioService.Authenticate")
	defer span.End()
	result, err := s.inner.Authenticate(ctx, email, senha)
	if err != nil {
		s.obs.Count(ctx, metricAuthFailures)
		return nil, s.obs.Fail(ctx, span, err, "credential check failed")
	}
	s.obs.Count(ctx, metricAuthenticated)
	span.SetAttributes(attribute.Int64("usuario.id", result.Entity.ID))
	return result, nil
}

var _ ports.Service = (*Service)(nil)

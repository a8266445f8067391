package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuariodomain "github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	platformobs "github.com/petcare/petcare-api/internal/platform/observability"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

const tracerName = "github.com/petcare/petcare-api/internal/domains/auth/adapters/observability/service"

const (
	metricRegistered    = "auth.service.registered"
	metricLogins        = "auth.service.logins"
	metricLoginFailures = "auth.service.login_failures"
	metricLogouts       = "auth.service.logouts"
)

var counters = []platformobs.Counter{
	{Name: metricRegistered, Description: "Number of self-service registrations"},
	{Name: metricLogins, Description: "Number of successful logins"},
	{Name: metricLoginFailures, Description: "Number of rejected logins"},
	{Name: metricLogouts, Description: "Number of revoked sessions"},
}

// Service decorates the auth service. Emails and tokens are never logged.
type Service struct {
	inner ports.Service
	obs   *platformobs.Decorator
}

func New(inner ports.Service, opts ...platformobs.DecoratorOption) ports.Service {
	return &Service{inner: inner, obs: platformobs.NewDecorator(tracerName, counters, opts...)}
}

func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*projection.Projection[*usuariodomain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "AuthService.Register")
	defer span.End()
	result, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "registration rejected")
	}
	s.obs.Count(ctx, metricRegistered)
	s.obs.Info(ctx, "usuario registered", slog.Int64("usuario_id", result.Entity.ID))
	return result, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	ctx, span := s.obs.Start(ctx, "AuthService.Login")
	defer span.End()
	result, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.obs.Count(ctx, metricLoginFailures)
		return nil, s.obs.Fail(ctx, span, err, "login rejected")
	}
	s.obs.Count(ctx, metricLogins)
	span.SetAttributes(attribute.Int64("usuario.id", result.Usuario.Entity.ID))
	return result, nil
}

func (s *Service) Me(ctx context.Context, identity domain.Identity) (*projection.Projection[*usuariodomain.Usuario], error) {
	ctx, span := s.obs.Start(ctx, "AuthService.Me", attribute.Int64("usuario.id", identity.UsuarioID))
	defer span.End()
	result, err := s.inner.Me(ctx, identity)
	if err != nil {
		return nil, s.obs.Fail(ctx, span, err, "failed to resolve current usuario", slog.Int64("usuario_id", identity.UsuarioID))
	}
	return result, nil
}

func (s *Service) Logout(ctx context.Context, identity domain.Identity) error {
	ctx, span := s.obs.Start(ctx, "AuthService.Logout", attribute.Int64("usuario.id", identity.UsuarioID))
	defer span.End()
	if err := s.inner.Logout(ctx, identity); err != nil {
		return s.obs.Fail(ctx, span, err, "failed to revoke session", slog.Int64("usuario_id", identity.UsuarioID))
	}
	s.obs.Count(ctx, metricLogouts)
	return nil
}

var _ ports.Service = (*Service)(nil)

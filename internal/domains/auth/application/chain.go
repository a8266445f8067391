package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

var (
	ErrMissingToken = errors.New("token de autenticação ausente")
	ErrRevoked      = errors.New("sessão encerrada ou expirada")
)

// Request is the transport independent view of an inbound call.
type Request struct {
	Method string
	// Route is the matched route pattern, e.g. /pets/:id.
	Route  string
	Header http.Header

	Token    string
	Identity *domain.Identity
}

// Interceptor is one stage of the authentication chain.
type Interceptor interface {
	Name() string
	Intercept(ctx context.Context, req *Request) error
}

// Rejection reports which stage refused a request.
type Rejection struct {
	Stage string
	Err   error
}

func (r *Rejection) Error() string { return fmt.Sprintf("%s: %v", r.Stage, r.Err) }

func (r *Rejection) Unwrap() []error { return []error{ErrUnauthorized, r.Err} }

// Route identifies a method and route pattern.
type Route struct {
	Method string
	Path   string
}

// AllowList is the set of routes served without authentication.
type AllowList struct {
	routes map[Route]struct{}
}

func NewAllowList(routes ...Route) AllowList {
	set := make(map[Route]struct{}, len(routes))
	for _, r := range routes {
		set[Route{Method: strings.ToUpper(r.Method), Path: r.Path}] = struct{}{}
	}
	return AllowList{routes: set}
}

func (a AllowList) Allows(method, route string) bool {
	_, ok := a.routes[Route{Method: strings.ToUpper(method), Path: route}]
	return ok
}

// PublicRoutes are reachable without a token when auth is mounted.
var PublicRoutes = []Route{
	{Method: http.MethodPost, Path: "/auth/register"},
	{Method: http.MethodPost, Path: "/auth/login"},
	{Method: http.MethodPost, Path: "/usuarios"},
	{Method: http.MethodPost, Path: "/upload"},
	{Method: http.MethodGet, Path: "/health"},
	{Method: http.MethodGet, Path: "/swagger/*any"},
	{Method: http.MethodGet, Path: "/uploads/*filepath"},
	{Method: http.MethodHead, Path: "/uploads/*filepath"},
}

// Chain runs its interceptors in order unless the route is allow-listed.
type Chain struct {
	allow  AllowList
	stages []Interceptor
}

func NewChain(allow AllowList, stages ...Interceptor) *Chain {
	return &Chain{allow: allow, stages: stages}
}

// Authorize returns the request identity, nil for public routes, or a *Rejection.
func (c *Chain) Authorize(ctx context.Context, req *Request) (*domain.Identity, error) {
	if c.allow.Allows(req.Method, req.Route) {
		return nil, nil
	}
	for _, stage := range c.stages {
		if err := stage.Intercept(ctx, req); err != nil {
			if !isAuthFailure(err) {
				return nil, fmt.Errorf("%s: %w", stage.Name(), err)
			}
			return nil, &Rejection{Stage: stage.Name(), Err: err}
		}
	}
	if req.Identity == nil {
		return nil, &Rejection{Stage: "chain", Err: ErrMissingToken}
	}
	return req.Identity, nil
}

// isAuthFailure separates credential problems from infrastructure errors, which stay 5xx.
func isAuthFailure(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrRevoked) ||
		errors.Is(err, ports.ErrInvalidToken)
}

// NewDefaultChain composes BearerToken, JWTVerifier and SessionValidator behind the public allow-list.
func NewDefaultChain(verifier ports.TokenVerifier, sessions ports.SessionStore) *Chain {
	return NewChain(NewAllowList(PublicRoutes...),
		BearerToken{},
		JWTVerifier{Verifier: verifier},
		SessionValidator{Sessions: sessions, Now: time.Now},
	)
}

// BearerToken extracts the token from the Authorization header.
type BearerToken struct{}

func (BearerToken) Name() string { return "bearer_token" }

func (BearerToken) Intercept(_ context.Context, req *Request) error {
	header := strings.TrimSpace(req.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, TokenType) || strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	req.Token = strings.TrimSpace(token)
	return nil
}

// JWTVerifier checks signature and expiry and sets the identity.
type JWTVerifier struct {
	Verifier ports.TokenVerifier
}

func (JWTVerifier) Name() string { return "jwt_verifier" }

func (v JWTVerifier) Intercept(_ context.Context, req *Request) error {
	identity, err := v.Verifier.Verify(req.Token)
	if err != nil {
		return err
	}
	req.Identity = &identity
	return nil
}

// SessionValidator rejects tokens whose session was revoked or expired.
type SessionValidator struct {
	Sessions ports.SessionStore
	Now      func() time.Time
}

func (SessionValidator) Name() string { return "session_validator" }

func (v SessionValidator) Intercept(ctx context.Context, req *Request) error {
	if req.Identity == nil {
		return ErrMissingToken
	}
	session, err := v.Sessions.Get(ctx, req.Identity.TokenID)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return ErrRevoked
	}
	if err != nil {
		return err
	}
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	if session.UsuarioID != req.Identity.UsuarioID || session.Expired(now()) {
		return ErrRevoked
	}
	return nil
}

type identityKey struct{}

// ContextWithIdentity stores the authenticated identity.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by ContextWithIdentity.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

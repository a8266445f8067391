package petcareserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authmemory "github.com/petcare/petcare-api/internal/domains/auth/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/auth/adapters/token"
	authusuarios "github.com/petcare/petcare-api/internal/domains/auth/adapters/usuarios"
	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
	petmemory "github.com/petcare/petcare-api/internal/domains/pets/adapters/memory"
	petsworkflows "github.com/petcare/petcare-api/internal/domains/pets/adapters/workflows"
	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	produtomemory "github.com/petcare/petcare-api/internal/domains/produtos/adapters/memory"
	produtosapp "github.com/petcare/petcare-api/internal/domains/produtos/application"
	"github.com/petcare/petcare-api/internal/domains/uploads/adapters/disk"
	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	usuariomemory "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/usuarios/adapters/security"
	usuariosapp "github.com/petcare/petcare-api/internal/domains/usuarios/application"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

// newTestServer wires the in-memory stack behind the real router for profile.
func newTestServer(t *testing.T, profile rules.Profile) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	usuarioRepo := usuariomemory.NewRepository()
	petRepo := petmemory.NewRepository()
	produtoRepo := produtomemory.NewRepository()
	sessions := authmemory.NewSessionStore()

	usuarioSvc := usuariosapp.NewService(usuarioRepo, security.NewBcryptHasher(bcrypt.MinCost),
		usuariosapp.WithPetDirectory(petRepo),
		usuariosapp.WithSessionRevoker(sessions),
		usuariosapp.WithProfile(profile),
	)
	petSvc := petsapp.NewService(petRepo, usuarioRepo,
		petsapp.WithProdutoDirectory(produtoRepo),
		petsapp.WithCreationReceipts(petmemory.NewReceipts()),
		petsapp.WithProfile(profile),
	)
	produtoSvc := produtosapp.NewService(produtoRepo, petRepo, produtosapp.WithProfile(profile))

	storage, err := disk.NewStorage(t.TempDir())
	require.NoError(t, err)

	handlers := ApiHandleFunctions{
		UsuarioAPI: NewUsuarioAPI(usuarioSvc),
		PetAPI:     NewPetAPI(petSvc, petsworkflows.NewInlinePetWorkflows(petSvc)),
		ProdutoAPI: NewProdutoAPI(produtoSvc),
		UploadAPI:  NewUploadAPI(uploadsapp.NewService(storage, "http://localhost:3000")),
		HealthAPI:  NewHealthAPI(profile.Name, nil, nil),
	}
	opts := RouterOptions{
		Profile:   profile,
		Logger:    discardLogger(),
		UploadDir: storage.Dir(),
	}
	if profile.AuthEnabled {
		signer, err := token.NewJWT(testSecret, time.Hour)
		require.NoError(t, err)
		auth := NewAuthAPI(authapp.NewService(authusuarios.NewAccounts(usuarioSvc), signer, sessions))
		handlers.AuthAPI = &auth
		opts.Chain = authapp.NewDefaultChain(signer, sessions)
	}
	return &testServer{t: t, router: NewRouter(handlers, opts)}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	return s.serve(newJSONRequest(s.t, method, path, body))
}

func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// login registers a usuario through /auth and keeps its token for later calls.
func (s *testServer) login(nome, email, senha string) int64 {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/auth/register", map[string]any{"nome": nome, "email": email, "password": senha})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]any](s.t, rec)

	rec = s.do(http.MethodPost, "/auth/login", map[string]any{"email": email, "password": senha})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	tok := decode[map[string]any](s.t, rec)
	s.token = tok["access_token"].(string)
	return int64(created["id"].(float64))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func idOf(t *testing.T, rec *httptest.ResponseRecorder) int64 {
	t.Helper()
	return int64(decode[map[string]any](t, rec)["id"].(float64))
}

//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"

	petcareserver "github.com/petcare/petcare-api/go"
	"github.com/petcare/petcare-api/internal/app/api"
	petsworkflows "github.com/petcare/petcare-api/internal/domains/pets/adapters/workflows"
	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/uploads/adapters/disk"
	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	usuariosports "github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/rules"
	pacttest "github.com/petcare/petcare-api/test/pact"
)

func TestPetcareProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOwnerExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.reset(t)
				app.seedOwner(t)
			}
			return nil, nil
		},
		pacttest.StatePetExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.reset(t)
				app.seedPet(t, app.seedOwner(t))
			}
			return nil, nil
		},
		pacttest.StatePetMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.reset(t)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

// contractProviderApp swaps in a fresh in-memory stack for every provider state.
type contractProviderApp struct {
	handler  atomic.Value
	services api.Services
	server   *httptest.Server
}

func newContractProviderApp(t *testing.T) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.handler.Load().(http.Handler).ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset(t *testing.T) {
	t.Helper()
	profile := rules.Coursework()
	repos, err := api.NewRepositories(nil)
	require.NoError(t, err)
	a.services = api.NewServices(api.Config{Profile: profile, BcryptCost: 4}, repos, nil, nil)

	storage, err := disk.NewStorage(t.TempDir())
	require.NoError(t, err)
	handlers := petcareserver.ApiHandleFunctions{
		UsuarioAPI: petcareserver.NewUsuarioAPI(a.services.Usuarios),
		PetAPI:     petcareserver.NewPetAPI(a.services.Pets, petsworkflows.NewInlinePetWorkflows(a.services.Pets)),
		ProdutoAPI: petcareserver.NewProdutoAPI(a.services.Produtos),
		UploadAPI:  petcareserver.NewUploadAPI(uploadsapp.NewService(storage, "http://localhost:3000")),
		HealthAPI:  petcareserver.NewHealthAPI(profile.Name, nil, nil),
	}
	a.handler.Store(http.Handler(petcareserver.NewRouter(handlers, petcareserver.RouterOptions{
		Profile: profile,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})))
}

func (a *contractProviderApp) seedOwner(t *testing.T) int64 {
	t.Helper()
	usuario, err := a.services.Usuarios.Create(context.Background(), usuariosports.CreateInput{
		Nome: "Ana Souza", Email: "ana@example.com", Senha: "segredo123",
	})
	require.NoError(t, err)
	require.Equal(t, pacttest.ExistingUsuarioID, usuario.Entity.ID)
	return usuario.Entity.ID
}

func (a *contractProviderApp) seedPet(t *testing.T, owner int64) {
	t.Helper()
	nome, raca, idade := pacttest.ExamplePetNome, pacttest.ExamplePetRaca, int32(3)
	pet, err := a.services.Pets.Create(context.Background(), pettypes.AddPetInput{
		PetMutationInput: pettypes.PetMutationInput{Nome: &nome, Raca: &raca, Idade: &idade, UsuarioID: &owner},
	})
	require.NoError(t, err)
	require.Equal(t, pacttest.ExistingPetID, pet.Entity.ID)
}

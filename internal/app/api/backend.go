package api

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authmemory "github.com/petcare/petcare-api/internal/domains/auth/adapters/memory"
	authpostgres "github.com/petcare/petcare-api/internal/domains/auth/adapters/persistence/postgres"
	authredis "github.com/petcare/petcare-api/internal/domains/auth/adapters/redis"
	authports "github.com/petcare/petcare-api/internal/domains/auth/ports"
	petsmemory "github.com/petcare/petcare-api/internal/domains/pets/adapters/memory"
	petsobs "github.com/petcare/petcare-api/internal/domains/pets/adapters/observability"
	petspostgres "github.com/petcare/petcare-api/internal/domains/pets/adapters/persistence/postgres"
	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	produtosmemory "github.com/petcare/petcare-api/internal/domains/produtos/adapters/memory"
	produtosobs "github.com/petcare/petcare-api/internal/domains/produtos/adapters/observability"
	produtospostgres "github.com/petcare/petcare-api/internal/domains/produtos/adapters/persistence/postgres"
	produtosapp "github.com/petcare/petcare-api/internal/domains/produtos/application"
	produtosports "github.com/petcare/petcare-api/internal/domains/produtos/ports"
	usuariosmemory "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/memory"
	usuariosobs "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/observability"
	usuariospostgres "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/persistence/postgres"
	"github.com/petcare/petcare-api/internal/domains/usuarios/adapters/security"
	usuariosapp "github.com/petcare/petcare-api/internal/domains/usuarios/application"
	usuariosports "github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/platform/migrations"
	platformobservability "github.com/petcare/petcare-api/internal/platform/observability"
)

// Repositories holds the persistence adapters of every bounded context plus the
// cross-context views each service consumes.
type Repositories struct {
	Usuarios usuariosports.Repository
	Pets     petsports.Repository
	Produtos produtosports.Repository
	Receipts petsports.CreationReceipts

	Owners      petsports.OwnerDirectory
	PetProdutos petsports.ProdutoDirectory
	UsuarioPets usuariosports.PetDirectory
	ProdutoPets produtosports.PetDirectory

	// Postgres reports whether the adapters write to the database.
	Postgres bool
}

// NewRepositories migrates db and returns the Postgres adapters, or the in-memory
// ones when db is nil.
func NewRepositories(db *gorm.DB) (Repositories, error) {
	if db == nil {
		usuarios := usuariosmemory.NewRepository()
		pets := petsmemory.NewRepository()
		produtos := produtosmemory.NewRepository()
		return Repositories{
			Usuarios:    usuarios,
			Pets:        pets,
			Produtos:    produtos,
			Receipts:    petsmemory.NewReceipts(),
			Owners:      usuarios,
			PetProdutos: produtos,
			UsuarioPets: pets,
			ProdutoPets: pets,
		}, nil
	}
	if err := migrations.Run(db); err != nil {
		return Repositories{}, fmt.Errorf("migrate schema: %w", err)
	}
	usuarios := usuariospostgres.NewRepository(db)
	pets := petspostgres.NewRepository(db)
	produtos := produtospostgres.NewRepository(db)
	return Repositories{
		Usuarios:    usuarios,
		Pets:        pets,
		Produtos:    produtos,
		Receipts:    petspostgres.NewReceipts(db),
		Owners:      usuarios,
		PetProdutos: produtos,
		UsuarioPets: pets,
		ProdutoPets: pets,
		Postgres:    true,
	}, nil
}

// NewSessionStore prefers Redis, then Postgres, then process memory.
func NewSessionStore(redis *goredis.Client, db *gorm.DB, logger *slog.Logger) authports.SessionStore {
	switch {
	case redis != nil:
		logger.Info("sessions stored in redis")
		return authredis.NewSessionStore(redis)
	case db != nil:
		logger.Info("sessions stored in postgres")
		return authpostgres.NewSessionStore(db)
	default:
		logger.Warn("sessions stored in memory, they are lost on restart")
		return authmemory.NewSessionStore()
	}
}

// Services are the decorated application services shared by the HTTP API and the worker.
type Services struct {
	Usuarios usuariosports.Service
	Pets     petsports.Service
	Produtos produtosports.Service
}

// NewServices builds every domain service for cfg.Profile and wraps it with
// logging, tracing and metrics.
func NewServices(cfg Config, repos Repositories, sessions usuariosports.SessionRevoker, instruments *platformobservability.Instruments) Services {
	if sessions == nil {
		sessions = usuariosports.NoopSessionRevoker
	}
	usuarios := usuariosapp.NewService(repos.Usuarios, security.NewBcryptHasher(cfg.BcryptCost),
		usuariosapp.WithPetDirectory(repos.UsuarioPets),
		usuariosapp.WithSessionRevoker(sessions),
		usuariosapp.WithProfile(cfg.Profile),
	)
	pets := petsapp.NewService(repos.Pets, repos.Owners,
		petsapp.WithProdutoDirectory(repos.PetProdutos),
		petsapp.WithCreationReceipts(repos.Receipts),
		petsapp.WithProfile(cfg.Profile),
	)
	produtos := produtosapp.NewService(repos.Produtos, repos.ProdutoPets, produtosapp.WithProfile(cfg.Profile))

	return Services{
		Usuarios: usuariosobs.New(usuarios, decoratorOptions(instruments, "internal.usuarios.application")...),
		Pets:     petsobs.New(pets, decoratorOptions(instruments, "internal.pets.application")...),
		Produtos: produtosobs.New(produtos, decoratorOptions(instruments, "internal.produtos.application")...),
	}
}

func decoratorOptions(instruments *platformobservability.Instruments, scope string) []platformobservability.DecoratorOption {
	if instruments == nil {
		return nil
	}
	return []platformobservability.DecoratorOption{
		platformobservability.WithLogger(instruments.Logger),
		platformobservability.WithTracer(instruments.Tracer(scope)),
		platformobservability.WithMeter(instruments.Meter(scope)),
	}
}


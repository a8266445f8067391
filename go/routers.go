package petcareserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/petcare/petcare-api/docs"
	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers mounted by NewRouter. AuthAPI is nil when the profile has no auth.
type ApiHandleFunctions struct {
	UsuarioAPI UsuarioAPI
	PetAPI     PetAPI
	ProdutoAPI ProdutoAPI
	AuthAPI    *AuthAPI
	UploadAPI  UploadAPI
	HealthAPI  HealthAPI
}

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	Profile     rules.Profile
	ServiceName string
	Logger      *slog.Logger
	CORSOrigin  string
	// RateLimitPerMinute of zero disables the limiter.
	RateLimitPerMinute int
	// UploadDir is served read-only under /uploads.
	UploadDir string
	// Chain guards every non-public route when the profile enables auth.
	Chain *authapp.Chain
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	router := gin.New()
	router.Use(
		RequestID(),
		AccessLog(logger),
		Recovery(logger),
	)
	if opts.ServiceName != "" {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}
	router.Use(
		CORS(origin),
		NewRateLimiter(opts.RateLimitPerMinute, time.Minute).Middleware(),
	)
	if opts.Profile.AuthEnabled && opts.Chain != nil {
		router.Use(Authenticate(opts.Chain))
	}

	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.UploadDir != "" {
		router.Static(uploadsapp.PublicPath, opts.UploadDir)
	}
	router.NoRoute(func(c *gin.Context) {
		respondProblem(c, notFoundRoute)
	})
	return router
}

// DefaultHandleFunc is the handler for routes that have not been implemented.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	routes := []Route{
		{"CreateUsuario", http.MethodPost, "/usuarios", handleFunctions.UsuarioAPI.CreateUsuario},
		{"ListUsuarios", http.MethodGet, "/usuarios", handleFunctions.UsuarioAPI.ListUsuarios},
		{"GetUsuario", http.MethodGet, "/usuarios/:id", handleFunctions.UsuarioAPI.GetUsuario},
		{"ListUsuarioPets", http.MethodGet, "/usuarios/:id/pets", handleFunctions.UsuarioAPI.ListUsuarioPets},
		{"UpdateUsuario", http.MethodPatch, "/usuarios/:id", handleFunctions.UsuarioAPI.UpdateUsuario},
		{"DeleteUsuario", http.MethodDelete, "/usuarios/:id", handleFunctions.UsuarioAPI.DeleteUsuario},

		{"CreatePet", http.MethodPost, "/pets", handleFunctions.PetAPI.CreatePet},
		{"ListPets", http.MethodGet, "/pets", handleFunctions.PetAPI.ListPets},
		{"GetPet", http.MethodGet, "/pets/:id", handleFunctions.PetAPI.GetPet},
		{"ListPetProdutos", http.MethodGet, "/pets/:id/produtos", handleFunctions.PetAPI.ListPetProdutos},
		{"UpdatePet", http.MethodPatch, "/pets/:id", handleFunctions.PetAPI.UpdatePet},
		{"DeletePet", http.MethodDelete, "/pets/:id", handleFunctions.PetAPI.DeletePet},

		{"CreateProduto", http.MethodPost, "/produtos", handleFunctions.ProdutoAPI.CreateProduto},
		{"ListProdutos", http.MethodGet, "/produtos", handleFunctions.ProdutoAPI.ListProdutos},
		{"GetProduto", http.MethodGet, "/produtos/:id", handleFunctions.ProdutoAPI.GetProduto},
		{"GetProdutoPet", http.MethodGet, "/produtos/:id/pet", handleFunctions.ProdutoAPI.GetProdutoPet},
		{"PatchProduto", http.MethodPatch, "/produtos/:id", handleFunctions.ProdutoAPI.UpdateProduto},
		{"PutProduto", http.MethodPut, "/produtos/:id", handleFunctions.ProdutoAPI.UpdateProduto},
		{"DeleteProduto", http.MethodDelete, "/produtos/:id", handleFunctions.ProdutoAPI.DeleteProduto},

		{"UploadImage", http.MethodPost, "/upload", handleFunctions.UploadAPI.UploadImage},
		{"Health", http.MethodGet, "/health", handleFunctions.HealthAPI.Health},
	}
	if auth := handleFunctions.AuthAPI; auth != nil {
		routes = append(routes,
			Route{"Register", http.MethodPost, "/auth/register", auth.Register},
			Route{"Login", http.MethodPost, "/auth/login", auth.Login},
			Route{"Me", http.MethodGet, "/auth/me", auth.Me},
			Route{"Logout", http.MethodPost, "/auth/logout", auth.Logout},
		)
	}
	return routes
}

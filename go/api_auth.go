package petcareserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhttpmapper "github.com/petcare/petcare-api/internal/domains/auth/adapters/http/mapper"
	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
	authports "github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuariohttpmapper "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/http/mapper"
)

// AuthAPI implements the /auth routes. It is only mounted when the profile enables auth.
type AuthAPI struct {
	service authports.Service
}

func NewAuthAPI(service authports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /auth/register
// @Summary Registra um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param usuario body authhttpmapper.Register true "Cadastro"
// @Success 201 {object} usuariohttpmapper.Usuario
// @Failure 400 {object} apierrors.ProblemDetail
// @Router /auth/register [post]
func (api *AuthAPI) Register(c *gin.Context) {
	var payload authhttpmapper.Register
	if !bindAndValidate(c, &payload) {
		return
	}
	created, err := api.service.Register(c.Request.Context(), authhttpmapper.ToRegisterInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuariohttpmapper.FromDomain(created))
}

// Post /auth/login
// @Summary Autentica um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body authhttpmapper.Login true "Credenciais"
// @Success 200 {object} authhttpmapper.Token
// @Failure 401 {object} apierrors.ProblemDetail
// @Router /auth/login [post]
func (api *AuthAPI) Login(c *gin.Context) {
	var payload authhttpmapper.Login
	if !bindAndValidate(c, &payload) {
		return
	}
	result, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authhttpmapper.FromLoginResult(result))
}

// Get /auth/me
// @Summary Retorna o usuário autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} usuariohttpmapper.Usuario
// @Failure 401 {object} apierrors.ProblemDetail
// @Router /auth/me [get]
func (api *AuthAPI) Me(c *gin.Context) {
	identity, ok := authapp.IdentityFromContext(c.Request.Context())
	if !ok {
		respondError(c, authapp.ErrMissingToken)
		return
	}
	usuario, err := api.service.Me(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuariohttpmapper.FromDomain(usuario))
}

// Post /auth/logout
// @Summary Encerra a sessão do token apresentado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} apierrors.ProblemDetail
// @Router /auth/logout [post]
func (api *AuthAPI) Logout(c *gin.Context) {
	identity, ok := authapp.IdentityFromContext(c.Request.Context())
	if !ok {
		respondError(c, authapp.ErrMissingToken)
		return
	}
	if err := api.service.Logout(c.Request.Context(), identity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logout realizado com sucesso"})
}

package petcareserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/petcare/petcare-api/internal/domains/pets/adapters/http/mapper"
	usuariohttpmapper "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/http/mapper"
	usuariosports "github.com/petcare/petcare-api/internal/domains/usuarios/ports"
)

// UsuarioAPI implements the /usuarios routes.
type UsuarioAPI struct {
	service usuariosports.Service
}

// NewUsuarioAPI wires dependencies.
func NewUsuarioAPI(service usuariosports.Service) UsuarioAPI {
	return UsuarioAPI{service: service}
}

// Post /usuarios
// @Summary Cria um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body usuariohttpmapper.CreateUsuario true "Usuário"
// @Success 201 {object} usuariohttpmapper.Usuario
// @Failure 400 {object} apierrors.ProblemDetail
// @Failure 409 {object} apierrors.ProblemDetail
// @Router /usuarios [post]
func (api *UsuarioAPI) CreateUsuario(c *gin.Context) {
	var payload usuariohttpmapper.CreateUsuario
	if !bindAndValidate(c, &payload) {
		return
	}
	created, err := api.service.Create(c.Request.Context(), usuariohttpmapper.ToCreateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuariohttpmapper.FromDomain(created))
}

// Get /usuarios
// @Summary Lista os usuários
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} usuariohttpmapper.Usuario
// @Router /usuarios [get]
func (api *UsuarioAPI) ListUsuarios(c *gin.Context) {
	list, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuariohttpmapper.FromDomainList(list))
}

// Get /usuarios/:id
// @Summary Busca um usuário
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} usuariohttpmapper.Usuario
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /usuarios/{id} [get]
func (api *UsuarioAPI) GetUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	found, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuariohttpmapper.FromDomain(found))
}

// Get /usuarios/:id/pets
// @Summary Lista os pets de um usuário
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {array} pethttpmapper.Pet
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /usuarios/{id}/pets [get]
func (api *UsuarioAPI) ListUsuarioPets(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pets, err := api.service.ListPets(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainList(pets))
}

// Patch /usuarios/:id
// @Summary Atualiza parcialmente um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param usuario body usuariohttpmapper.UpdateUsuario true "Campos alterados"
// @Success 200 {object} usuariohttpmapper.Usuario
// @Failure 400 {object} apierrors.ProblemDetail
// @Failure 404 {object} apierrors.ProblemDetail
// @Failure 409 {object} apierrors.ProblemDetail
// @Router /usuarios/{id} [patch]
func (api *UsuarioAPI) UpdateUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload usuariohttpmapper.UpdateUsuario
	if !bindAndValidate(c, &payload) {
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, usuariohttpmapper.ToUpdateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuariohttpmapper.FromDomain(updated))
}

// Delete /usuarios/:id
// @Summary Remove um usuário
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apierrors.ProblemDetail
// @Failure 409 {object} apierrors.ProblemDetail
// @Router /usuarios/{id} [delete]
func (api *UsuarioAPI) DeleteUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Usuário deletado com sucesso"})
}

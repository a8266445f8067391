package petcareserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/petcare/petcare-api/internal/domains/pets/adapters/http/mapper"
	produtohttpmapper "github.com/petcare/petcare-api/internal/domains/produtos/adapters/http/mapper"
	produtosports "github.com/petcare/petcare-api/internal/domains/produtos/ports"
	apierrors "github.com/petcare/petcare-api/internal/shared/errors"
)

// ProdutoAPI implements the /produtos routes.
type ProdutoAPI struct {
	service produtosports.Service
}

func NewProdutoAPI(service produtosports.Service) ProdutoAPI {
	return ProdutoAPI{service: service}
}

// Post /produtos
// @Summary Cadastra um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param produto body produtohttpmapper.CreateProduto true "Produto"
// @Success 201 {object} produtohttpmapper.Produto
// @Failure 400 {object} apierrors.ProblemDetail
// @Router /produtos [post]
func (api *ProdutoAPI) CreateProduto(c *gin.Context) {
	var payload produtohttpmapper.CreateProduto
	if !bindAndValidate(c, &payload) {
		return
	}
	created, err := api.service.Create(c.Request.Context(), produtohttpmapper.ToCreateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, produtohttpmapper.FromDomain(created))
}

// Get /produtos
// @Summary Lista os produtos, opcionalmente de um pet
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param petId query int false "Filtra pelo pet"
// @Success 200 {array} produtohttpmapper.Produto
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /produtos [get]
func (api *ProdutoAPI) ListProdutos(c *gin.Context) {
	raw, filtered := c.GetQuery("petId")
	if !filtered {
		list, err := api.service.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, produtohttpmapper.FromDomainList(list))
		return
	}
	petID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || petID <= 0 {
		respondProblem(c, apierrors.NewValidationProblem(detailInvalidPayload, map[string]string{"petId": "deve ser maior que 0"}))
		return
	}
	list, err := api.service.ListByPet(c.Request.Context(), petID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtohttpmapper.FromDomainList(list))
}

// Get /produtos/:id
// @Summary Busca um produto
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} produtohttpmapper.Produto
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /produtos/{id} [get]
func (api *ProdutoAPI) GetProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	found, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtohttpmapper.FromDomain(found))
}

// Get /produtos/:id/pet
// @Summary Busca o pet dono do produto
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} pethttpmapper.Pet
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /produtos/{id}/pet [get]
func (api *ProdutoAPI) GetProdutoPet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pet, err := api.service.GetPet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(pet))
}

// Patch /produtos/:id
// Put /produtos/:id
// Both verbs apply a partial update.
// @Summary Atualiza um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Param produto body produtohttpmapper.UpdateProduto true "Campos alterados"
// @Success 200 {object} produtohttpmapper.Produto
// @Failure 400 {object} apierrors.ProblemDetail
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /produtos/{id} [patch]
// @Router /produtos/{id} [put]
func (api *ProdutoAPI) UpdateProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload produtohttpmapper.UpdateProduto
	if !bindAndValidate(c, &payload) {
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, produtohttpmapper.ToUpdateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtohttpmapper.FromDomain(updated))
}

// Delete /produtos/:id
// @Summary Remove um produto
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /produtos/{id} [delete]
func (api *ProdutoAPI) DeleteProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Produto deletado com sucesso"})
}

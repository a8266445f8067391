package petcareserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/petcare/petcare-api/internal/domains/pets/adapters/http/mapper"
	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	produtohttpmapper "github.com/petcare/petcare-api/internal/domains/produtos/adapters/http/mapper"
	apierrors "github.com/petcare/petcare-api/internal/shared/errors"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// IdempotencyKeyHeader lets clients retry POST /pets safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// MessageResponse is the body of successful deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

// PetAPI wires HTTP transport with the pets service and its creation workflow.
type PetAPI struct {
	service   petsports.Service
	workflows petsports.WorkflowOrchestrator
}

// NewPetAPI creates a PetAPI; a nil orchestrator creates pets through the service directly.
func NewPetAPI(service petsports.Service, workflows petsports.WorkflowOrchestrator) PetAPI {
	return PetAPI{service: service, workflows: workflows}
}

// Post /pets
// @Summary Cadastra um pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Chave de idempotência"
// @Param pet body pethttpmapper.CreatePet true "Pet"
// @Success 201 {object} pethttpmapper.Pet
// @Failure 400 {object} apierrors.ProblemDetail
// @Failure 409 {object} apierrors.ProblemDetail
// @Router /pets [post]
func (api *PetAPI) CreatePet(c *gin.Context) {
	var payload pethttpmapper.CreatePet
	if !bindAndValidate(c, &payload) {
		return
	}
	input := pethttpmapper.ToAddInput(payload, c.GetHeader(IdempotencyKeyHeader))
	saved, err := api.createPet(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pethttpmapper.FromDomain(saved))
}

func (api *PetAPI) createPet(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error) {
	if api.workflows != nil {
		return api.workflows.CreatePet(ctx, input)
	}
	return api.service.Create(ctx, input)
}

// Get /pets
// @Summary Lista os pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} pethttpmapper.Pet
// @Router /pets [get]
func (api *PetAPI) ListPets(c *gin.Context) {
	list, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainList(list))
}

// Get /pets/:id
// @Summary Busca um pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pet"
// @Success 200 {object} pethttpmapper.Pet
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /pets/{id} [get]
func (api *PetAPI) GetPet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pet, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(pet))
}

// Get /pets/:id/produtos
// @Summary Lista os produtos de um pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pet"
// @Success 200 {array} produtohttpmapper.Produto
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /pets/{id}/produtos [get]
func (api *PetAPI) ListPetProdutos(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	produtos, err := api.service.ListProdutos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, produtohttpmapper.FromDomainList(produtos))
}

// Patch /pets/:id
// @Summary Atualiza parcialmente um pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pet"
// @Param pet body pethttpmapper.UpdatePet true "Campos alterados"
// @Success 200 {object} pethttpmapper.Pet
// @Failure 400 {object} apierrors.ProblemDetail
// @Failure 404 {object} apierrors.ProblemDetail
// @Router /pets/{id} [patch]
func (api *PetAPI) UpdatePet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload pethttpmapper.UpdatePet
	if !bindAndValidate(c, &payload) {
		return
	}
	updated, err := api.service.Update(c.Request.Context(), pethttpmapper.ToUpdateInput(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomain(updated))
}

// Delete /pets/:id
// @Summary Remove um pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pet"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} apierrors.ProblemDetail
// @Failure 409 {object} apierrors.ProblemDetail
// @Router /pets/{id} [delete]
func (api *PetAPI) DeletePet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Pet deletado com sucesso"})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("ID inválido"))
		return 0, false
	}
	return id, true
}

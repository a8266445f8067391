package petcareserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/petcare/petcare-api/internal/shared/errors"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

func TestEndToEndCoursework(t *testing.T) {
	s := newTestServer(t, rules.Coursework())

	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Dono do Pet", "email": "dono@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	usuario := decode[map[string]any](t, rec)
	assert.Equal(t, "dono@email.com", usuario["email"])
	assert.Equal(t, "Dono do Pet", usuario["nome"])
	assert.NotContains(t, usuario, "senha")
	usuarioID := int64(usuario["id"].(float64))

	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	petID := idOf(t, rec)

	rec = s.do(http.MethodGet, fmt.Sprintf("/pets/%d", petID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pet := decode[map[string]any](t, rec)
	assert.Equal(t, "Rex", pet["nome"])
	assert.Equal(t, "Labrador", pet["raca"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/pets/%d", petID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pet deletado com sucesso", decode[map[string]any](t, rec)["message"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/usuarios/%d", usuarioID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Usuário deletado com sucesso", decode[map[string]any](t, rec)["message"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/usuarios/%d", usuarioID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEndMainRequiresToken(t *testing.T) {
	s := newTestServer(t, rules.Main())

	rec := s.do(http.MethodGet, "/pets", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, "Token de autenticação ausente", decode[apierrors.ProblemDetail](t, rec).Detail)

	usuarioID := s.login("Dono do Pet", "dono@email.com", "senha123")

	rec = s.do(http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dono@email.com", decode[map[string]any](t, rec)["email"])

	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	petID := idOf(t, rec)

	rec = s.do(http.MethodGet, fmt.Sprintf("/pets/%d", petID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/pets/%d", petID), nil).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/usuarios/%d", usuarioID), nil).Code)

	// Deleting the usuario revoked its sessions.
	rec = s.do(http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t, rules.Main())
	s.login("Ana", "ana@email.com", "senha123")

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/auth/logout", nil).Code)
	rec := s.do(http.MethodGet, "/usuarios", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.token = "not-a-jwt"
	rec = s.do(http.MethodGet, "/usuarios", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token inválido ou expirado", decode[apierrors.ProblemDetail](t, rec).Detail)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t, rules.Main())
	s.login("Ana", "ana@email.com", "senha123")

	rec := s.do(http.MethodPost, "/auth/login", map[string]any{"email": "ana@email.com", "password": "errada99"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Credenciais inválidas", decode[apierrors.ProblemDetail](t, rec).Detail)

	rec = s.do(http.MethodPost, "/auth/login", map[string]any{"email": "ninguem@email.com", "password": "senha123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCourseworkHasNoAuthRoutes(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/auth/login", map[string]any{"email": "a@b.com", "password": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDuplicateEmail(t *testing.T) {
	s := newTestServer(t, rules.Main())
	payload := map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"}

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/usuarios", payload).Code)
	rec := s.do(http.MethodPost, "/usuarios", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Este email já está cadastrado.", decode[apierrors.ProblemDetail](t, rec).Detail)

	rec = s.do(http.MethodPost, "/auth/register", map[string]any{"nome": "Outra", "email": "ana@email.com", "password": "senha123"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email já cadastrado", decode[apierrors.ProblemDetail](t, rec).Detail)
}

func TestDuplicateNomeInCoursework(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "a1@email.com", "senha": "senha123"}).Code)

	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "a2@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Este nome já está cadastrado.", decode[apierrors.ProblemDetail](t, rec).Detail)
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	cases := []struct {
		path   string
		detail string
	}{
		{"/usuarios/999", "Usuário não encontrado"},
		{"/pets/999", "Pet não encontrado"},
		{"/produtos/999", "Produto não encontrado"},
	}
	for _, tc := range cases {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			var body any
			if method == http.MethodPatch {
				body = map[string]any{}
			}
			rec := s.do(method, tc.path, body)
			require.Equal(t, http.StatusNotFound, rec.Code, "%s %s", method, tc.path)
			assert.Equal(t, tc.detail, decode[apierrors.ProblemDetail](t, rec).Detail, "%s %s", method, tc.path)
		}
	}
}

func TestMalformedIDAndUnknownRoute(t *testing.T) {
	s := newTestServer(t, rules.Main())
	s.login("Ana", "ana@email.com", "senha123")

	rec := s.do(http.MethodGet, "/pets/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID inválido", decode[apierrors.ProblemDetail](t, rec).Detail)

	s.token = ""
	rec = s.do(http.MethodGet, "/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidProdutoPayload(t *testing.T) {
	for _, profile := range []rules.Profile{rules.Main(), rules.Coursework()} {
		t.Run(string(profile.Name), func(t *testing.T) {
			s := newTestServer(t, profile)
			if profile.AuthEnabled {
				s.login("Ana", "ana@email.com", "senha123")
			}
			rec := s.do(http.MethodPost, "/produtos", map[string]any{"nome": "", "tipo": "", "preco": -10})
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
		})
	}
}

func TestValidationFieldsUseAPINames(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/pets", map[string]any{"idade": -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decode[apierrors.ProblemDetail](t, rec)
	fields, ok := problem.Extensions["fields"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	assert.Contains(t, fields, "nome")
	assert.Contains(t, fields, "raca")
	assert.Contains(t, fields, "usuarioId")
	assert.Contains(t, fields, "idade")
}

func TestMedicinalProdutoRulesPerProfile(t *testing.T) {
	mainSrv := newTestServer(t, rules.Main())
	usuarioID := mainSrv.login("Ana", "ana@email.com", "senha123")
	rec := mainSrv.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code)
	petID := idOf(t, rec)

	medicinal := map[string]any{"nome": "Vermífugo", "tipo": "medicinal", "preco": "30.50", "petId": petID, "data_compra": "2024-05-01"}
	rec = mainSrv.do(http.MethodPost, "/produtos", medicinal)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	medicinal["quantidade_vezes"] = 2
	medicinal["quando_consumir"] = "após as refeições"
	rec = mainSrv.do(http.MethodPost, "/produtos", medicinal)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	produto := decode[map[string]any](t, rec)
	assert.Equal(t, float64(petID), produto["petId"])
	assert.Equal(t, "2024-05-01", produto["data_compra"])

	coursework := newTestServer(t, rules.Coursework())
	rec = coursework.do(http.MethodPost, "/produtos", map[string]any{"nome": "Vermífugo", "tipo": "medicinal", "preco": 30})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestProdutoPetNavigation(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	usuarioID := idOf(t, rec)
	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code)
	petID := idOf(t, rec)

	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Ração", "tipo": "alimenticio", "preco": 89.9, "petId": petID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	produtoID := idOf(t, rec)
	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Bola", "tipo": "brinquedo", "preco": 10})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	orphanID := idOf(t, rec)

	rec = s.do(http.MethodGet, fmt.Sprintf("/produtos/%d/pet", produtoID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rex", decode[map[string]any](t, rec)["nome"])

	rec = s.do(http.MethodGet, fmt.Sprintf("/produtos/%d/pet", orphanID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/pets/%d/produtos", petID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, fmt.Sprintf("/produtos?petId=%d", petID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, "/produtos?petId=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/pets/%d", petID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/usuarios/%d", usuarioID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Osso", "tipo": "brinquedo", "preco": 5, "petId": 999})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Pet informado não existe", decode[apierrors.ProblemDetail](t, rec).Detail)
}

func TestPatchChangesOnlySuppliedFields(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	usuarioID := idOf(t, rec)
	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "idade": 3, "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code)
	petID := idOf(t, rec)

	rec = s.do(http.MethodPatch, fmt.Sprintf("/pets/%d", petID), map[string]any{"idade": 4})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, fmt.Sprintf("/pets/%d", petID), nil)
	pet := decode[map[string]any](t, rec)
	assert.Equal(t, float64(4), pet["idade"])
	assert.Equal(t, "Rex", pet["nome"])
	assert.Equal(t, "Labrador", pet["raca"])

	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Ração", "tipo": "alimenticio", "preco": 50})
	require.Equal(t, http.StatusCreated, rec.Code)
	produtoID := idOf(t, rec)
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		rec = s.do(method, fmt.Sprintf("/produtos/%d", produtoID), map[string]any{"preco": "55.5"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		produto := decode[map[string]any](t, rec)
		assert.Equal(t, "Ração", produto["nome"])
		assert.Equal(t, 55.5, produto["preco"])
	}

	rec = s.do(http.MethodPatch, fmt.Sprintf("/usuarios/%d", usuarioID), map[string]any{"nome": "Ana Maria"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@email.com", decode[map[string]any](t, rec)["email"])
}

func TestPetOwnerMustExist(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": 42})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Usuário informado não existe", decode[apierrors.ProblemDetail](t, rec).Detail)
}

func TestCourseworkLettersOnlyPetText(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex 2", "raca": "Labrador", "usuarioId": idOf(t, rec)})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[apierrors.ProblemDetail](t, rec).Detail, "apenas letras e espaços")
}

func TestIdempotentPetCreation(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	usuarioID := idOf(t, rec)

	create := func(nome string) (int, map[string]any) {
		req := newJSONRequest(t, http.MethodPost, "/pets", map[string]any{"nome": nome, "raca": "Labrador", "usuarioId": usuarioID})
		req.Header.Set(IdempotencyKeyHeader, "chave-1")
		rec := s.serve(req)
		if rec.Code != http.StatusCreated {
			return rec.Code, nil
		}
		return rec.Code, decode[map[string]any](t, rec)
	}

	code, first := create("Rex")
	require.Equal(t, http.StatusCreated, code)
	code, replay := create("Rex")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, first["id"], replay["id"])

	code, _ = create("Bob")
	assert.Equal(t, http.StatusConflict, code)
}

func TestHealthReportsProfile(t *testing.T) {
	s := newTestServer(t, rules.Main())
	rec := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.True(t, health.OK)
	assert.Equal(t, "main", health.Profile)
	assert.Equal(t, "disabled", health.DB)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestProdutoPrecoIsJSONNumber(t *testing.T) {
	s := newTestServer(t, rules.Coursework())

	rec := s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Ração", "tipo": "alimenticio", "preco": 99.90})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"preco":99.9`)
	preco, ok := decode[map[string]any](t, rec)["preco"].(float64)
	require.True(t, ok, "preco must decode as a number")
	assert.Equal(t, 99.9, preco)

	rec = s.do(http.MethodGet, fmt.Sprintf("/produtos/%d", idOf(t, rec)), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 99.9, decode[map[string]any](t, rec)["preco"])
}

func TestUsuarioEmailEchoesInput(t *testing.T) {
	s := newTestServer(t, rules.Coursework())

	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Dono do Pet", "email": "Dono@Email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Dono@Email.com", decode[map[string]any](t, rec)["email"])

	rec = s.do(http.MethodGet, fmt.Sprintf("/usuarios/%d", idOf(t, rec)), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dono@Email.com", decode[map[string]any](t, rec)["email"])

	rec = s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Outro Dono", "email": "dono@email.COM", "senha": "senha123"})
	assert.Equal(t, http.StatusConflict, rec.Code, "uniqueness ignores case")
}

func TestProdutoPetIDNullUnlinks(t *testing.T) {
	s := newTestServer(t, rules.Coursework())
	rec := s.do(http.MethodPost, "/usuarios", map[string]any{"nome": "Ana", "email": "ana@email.com", "senha": "senha123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": idOf(t, rec)})
	require.Equal(t, http.StatusCreated, rec.Code)
	petID := idOf(t, rec)
	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Ração", "tipo": "alimenticio", "preco": 50, "petId": petID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	path := fmt.Sprintf("/produtos/%d", idOf(t, rec))

	rec = s.do(http.MethodPatch, path, map[string]any{"nome": "Ração Premium"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(petID), decode[map[string]any](t, rec)["petId"], "an absent petId keeps the link")

	rec = s.do(http.MethodPatch, path, map[string]any{"petId": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, path, map[string]any{"petId": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	produto := decode[map[string]any](t, rec)
	assert.Nil(t, produto["petId"])
	assert.Equal(t, "Ração Premium", produto["nome"])
}

func TestProdutoPetIDNullRejectedWhenPetRequired(t *testing.T) {
	s := newTestServer(t, rules.Main())
	usuarioID := s.login("Ana", "ana@email.com", "senha123")
	rec := s.do(http.MethodPost, "/pets", map[string]any{"nome": "Rex", "raca": "Labrador", "usuarioId": usuarioID})
	require.Equal(t, http.StatusCreated, rec.Code)
	petID := idOf(t, rec)
	rec = s.do(http.MethodPost, "/produtos", map[string]any{"nome": "Ração", "tipo": "alimenticio", "preco": 50, "petId": petID, "data_compra": "2024-05-01"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPatch, fmt.Sprintf("/produtos/%d", idOf(t, rec)), map[string]any{"petId": nil})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[apierrors.ProblemDetail](t, rec).Detail, "petId")
}

package petcareserver

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
	authports "github.com/petcare/petcare-api/internal/domains/auth/ports"
	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	produtosapp "github.com/petcare/petcare-api/internal/domains/produtos/application"
	produtosports "github.com/petcare/petcare-api/internal/domains/produtos/ports"
	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	uploadsdomain "github.com/petcare/petcare-api/internal/domains/uploads/domain"
	usuariosapp "github.com/petcare/petcare-api/internal/domains/usuarios/application"
	usuariosports "github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	apierrors "github.com/petcare/petcare-api/internal/shared/errors"
)

// Auth runs first: a duplicate email on register also carries the usuario conflict.
var responder = apierrors.NewChainedResponder("",
	authProblem,
	usuarioProblem,
	petProblem,
	produtoProblem,
	uploadProblem,
)

var notFoundRoute = apierrors.ErrNotFound.WithDetail("Rota não encontrada")

// respondProblem sends problem through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError maps err to a problem; unmapped errors become a logged 500.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func authProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, authapp.ErrRegistration):
		return apierrors.ErrBadRequest.WithDetail("Email já cadastrado"), true
	case errors.Is(err, authports.ErrInvalidCredentials):
		return apierrors.ErrUnauthorized.WithDetail("Credenciais inválidas"), true
	case errors.Is(err, authapp.ErrMissingToken):
		return apierrors.ErrUnauthorized.WithDetail("Token de autenticação ausente"), true
	case errors.Is(err, authapp.ErrUnauthorized):
		return apierrors.ErrUnauthorized.WithDetail("Token inválido ou expirado"), true
	}
	return apierrors.ProblemDetail{}, false
}

func usuarioProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, usuariosports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail("Usuário não encontrado"), true
	case errors.Is(err, usuariosports.ErrDuplicateEmail):
		return apierrors.NewConflictProblem("Este email já está cadastrado.", "email"), true
	case errors.Is(err, usuariosports.ErrDuplicateNome):
		return apierrors.NewConflictProblem("Este nome já está cadastrado.", "nome"), true
	case errors.Is(err, usuariosports.ErrReferenced):
		return apierrors.NewConflictProblem("Usuário possui pets cadastrados", ""), true
	case errors.Is(err, usuariosapp.ErrInvalidCredentials):
		return apierrors.ErrUnauthorized.WithDetail("Credenciais inválidas"), true
	case errors.Is(err, usuariosapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(causeDetail(err, usuariosapp.ErrInvalidInput)), true
	}
	return apierrors.ProblemDetail{}, false
}

func petProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, petsports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail("Pet não encontrado"), true
	case errors.Is(err, petsapp.ErrReference):
		return apierrors.ErrBadRequest.WithDetail("Usuário informado não existe"), true
	case errors.Is(err, petsports.ErrIdempotencyConflict):
		return apierrors.NewConflictProblem("Idempotency-Key já utilizada com outro conteúdo", "Idempotency-Key"), true
	case errors.Is(err, petsports.ErrReferenced):
		return apierrors.NewConflictProblem("Pet possui produtos cadastrados", ""), true
	case errors.Is(err, petsapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(causeDetail(err, petsapp.ErrInvalidInput)), true
	}
	return apierrors.ProblemDetail{}, false
}

func produtoProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, produtosports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail("Produto não encontrado"), true
	case errors.Is(err, produtosports.ErrNoPet):
		return apierrors.ErrNotFound.WithDetail("Produto não possui pet associado"), true
	case errors.Is(err, produtosapp.ErrReference):
		return apierrors.ErrBadRequest.WithDetail("Pet informado não existe"), true
	case errors.Is(err, produtosports.ErrPetMissing):
		// Unwrapped only when filtering by a pet that does not exist.
		return apierrors.ErrNotFound.WithDetail("Pet não encontrado"), true
	case errors.Is(err, produtosapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(causeDetail(err, produtosapp.ErrInvalidInput)), true
	}
	return apierrors.ProblemDetail{}, false
}

func uploadProblem(err error) (apierrors.ProblemDetail, bool) {
	if !errors.Is(err, uploadsapp.ErrInvalidUpload) {
		return apierrors.ProblemDetail{}, false
	}
	for _, known := range []error{uploadsdomain.ErrMissingFile, uploadsdomain.ErrNotAnImage, uploadsdomain.ErrFileTooLarge} {
		if errors.Is(err, known) {
			return apierrors.ErrBadRequest.WithDetail(capitalize(known.Error())), true
		}
	}
	return apierrors.ErrBadRequest.WithDetail(causeDetail(err, uploadsapp.ErrInvalidUpload)), true
}

// causeDetail strips the application sentinel from err and returns the domain message.
func causeDetail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

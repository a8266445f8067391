// Package errors provides RFC 7807 Problem Details for HTTP APIs.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Extensions holds additional problem-specific properties.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with an additional extension property.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

// Common problem types as URI references.
const (
	TypeValidation      = "/problems/validation-error"
	TypeNotFound        = "/problems/not-found"
	TypeConflict        = "/problems/conflict"
	TypeInternal        = "/problems/internal-error"
	TypeUnauthorized    = "/problems/unauthorized"
	TypeBadRequest      = "/problems/bad-request"
	TypeTooManyRequests = "/problems/too-many-requests"
	TypeUnavailable     = "/problems/service-unavailable"
)

// DetailInternal is the only detail ever returned for unexpected failures.
const DetailInternal = "Erro interno do servidor"

// Pre-defined problem templates for common scenarios.
var (
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Recurso não encontrado",
		Status: http.StatusNotFound,
	}

	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Erro de validação",
		Status: http.StatusBadRequest,
	}

	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Requisição inválida",
		Status: http.StatusBadRequest,
	}

	ErrConflict = ProblemDetail{
		Type:   TypeConflict,
		Title:  "Conflito",
		Status: http.StatusConflict,
	}

	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Erro interno",
		Status: http.StatusInternalServerError,
		Detail: DetailInternal,
	}

	ErrUnauthorized = ProblemDetail{
		Type:   TypeUnauthorized,
		Title:  "Não autorizado",
		Status: http.StatusUnauthorized,
	}

	ErrTooManyRequests = ProblemDetail{
		Type:   TypeTooManyRequests,
		Title:  "Muitas requisições",
		Status: http.StatusTooManyRequests,
	}

	ErrUnavailable = ProblemDetail{
		Type:   TypeUnavailable,
		Title:  "Serviço indisponível",
		Status: http.StatusServiceUnavailable,
	}
)

// NewValidationProblem creates a validation error with field-level details.
func NewValidationProblem(detail string, fieldErrors map[string]string) ProblemDetail {
	problem := ErrValidation.WithDetail(detail)
	if len(fieldErrors) == 0 {
		return problem
	}
	return problem.WithExtension("fields", fieldErrors)
}

// NewNotFoundProblem creates a not found error for a specific resource.
func NewNotFoundProblem(detail, resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(detail).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}

// NewConflictProblem creates a conflict error naming the colliding field.
func NewConflictProblem(detail, field string) ProblemDetail {
	problem := ErrConflict.WithDetail(detail)
	if field == "" {
		return problem
	}
	return problem.WithExtension("field", field)
}

package petcareserver

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	produtohttpmapper "github.com/petcare/petcare-api/internal/domains/produtos/adapters/http/mapper"
	apierrors "github.com/petcare/petcare-api/internal/shared/errors"
)

const detailInvalidPayload = "Dados inválidos"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Field errors are reported under the JSON name the client sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ref, ok := field.Interface().(produtohttpmapper.PetRef); ok && ref.ID != nil {
			return *ref.ID
		}
		return nil
	}, produtohttpmapper.PetRef{})
	return v
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
// It writes the 400 response itself and returns false when the payload is rejected.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("JSON inválido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respondProblem(c, apierrors.ErrBadRequest.WithDetail(detailInvalidPayload))
			return false
		}
		respondProblem(c, apierrors.NewValidationProblem(detailInvalidPayload, fieldErrors(verrs)))
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "deve ter no mínimo " + fe.Param()
	case "max":
		return "deve ter no máximo " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	default:
		return fe.Tag()
	}
}

// Package rules holds the entity validation profiles shared by the deployment targets.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Name identifies a validation profile.
type Name string

const (
	// ProfileMain is the rule set of the main application.
	ProfileMain Name = "main"
	// ProfileCoursework is the rule set of the coursework application.
	ProfileCoursework Name = "coursework"
)

// TipoMedicinal is the produto kind that carries dosage details.
const TipoMedicinal = "medicinal"

// ProdutoTipos lists the produto kinds accepted when the enum is enforced.
var ProdutoTipos = []string{"alimenticio", TipoMedicinal, "higiene", "alimentacao", "brinquedo", "outros"}

var (
	ErrUnknownProfile  = errors.New("unknown validation profile")
	ErrLettersOnly     = errors.New("por favor, insira apenas letras e espaços")
	ErrInvalidTipo     = fmt.Errorf("tipo deve ser um dos valores: %s", strings.Join(ProdutoTipos, ", "))
	ErrMedicinalFields = errors.New("produtos medicinais exigem quantidade_vezes e quando_consumir")
)

var lettersAndSpaces = regexp.MustCompile(`^[\p{L}\s]+$`)

// Profile toggles the constraints that differ between deployment targets.
type Profile struct {
	Name                      Name
	AuthEnabled               bool
	UniqueUsuarioNome         bool
	LettersOnlyPetText        bool
	ProdutoTipoEnum           bool
	ProdutoPetRequired        bool
	ProdutoDataCompraRequired bool
	MedicinalDetailsRequired  bool
}

// Main returns the rule set of the main application.
func Main() Profile {
	return Profile{
		Name:                      ProfileMain,
		AuthEnabled:               true,
		ProdutoTipoEnum:           true,
		ProdutoPetRequired:        true,
		ProdutoDataCompraRequired: true,
		MedicinalDetailsRequired:  true,
	}
}

// Coursework returns the rule set of the coursework application.
func Coursework() Profile {
	return Profile{
		Name:               ProfileCoursework,
		UniqueUsuarioNome:  true,
		LettersOnlyPetText: true,
	}
}

// All returns every profile a process may be asked to enforce.
func All() []Profile {
	return []Profile{Main(), Coursework()}
}

// Lookup resolves a profile by name; an empty name selects the main profile.
func Lookup(name string) (Profile, error) {
	switch Name(strings.ToLower(strings.TrimSpace(name))) {
	case "", ProfileMain:
		return Main(), nil
	case ProfileCoursework:
		return Coursework(), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// CheckPetText validates free text fields of a pet such as nome and raca.
func (p Profile) CheckPetText(value string) error {
	if !p.LettersOnlyPetText {
		return nil
	}
	if !lettersAndSpaces.MatchString(value) {
		return ErrLettersOnly
	}
	return nil
}

// CheckProdutoTipo validates the produto kind against the enum when enforced.
func (p Profile) CheckProdutoTipo(tipo string) error {
	if !p.ProdutoTipoEnum {
		return nil
	}
	if !IsProdutoTipo(tipo) {
		return ErrInvalidTipo
	}
	return nil
}

// RequiresMedicinalDetails reports whether dosage fields are mandatory for tipo.
func (p Profile) RequiresMedicinalDetails(tipo string) bool {
	return p.MedicinalDetailsRequired && strings.EqualFold(strings.TrimSpace(tipo), TipoMedicinal)
}

// IsProdutoTipo reports whether tipo belongs to ProdutoTipos.
func IsProdutoTipo(tipo string) bool {
	for _, candidate := range ProdutoTipos {
		if candidate == tipo {
			return true
		}
	}
	return false
}

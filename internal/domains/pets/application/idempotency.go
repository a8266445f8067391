package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
)

type normalizedAddPetInput struct {
	Nome       *string `json:"nome"`
	Raca       *string `json:"raca"`
	Especie    *string `json:"especie"`
	Idade      *int32  `json:"idade"`
	Sexo       *string `json:"sexo"`
	CorPelagem *string `json:"corPelagem"`
	Castrado   *bool   `json:"castrado"`
	FotoURL    *string `json:"foto_url"`
	UsuarioID  *int64  `json:"usuarioId"`
}

// FingerprintAddPet builds a deterministic hash of the add-pet request payload (excluding the idempotency key).
func FingerprintAddPet(input pettypes.AddPetInput) (string, error) {
	m := input.PetMutationInput
	payload, err := json.Marshal(normalizedAddPetInput{
		Nome:       m.Nome,
		Raca:       m.Raca,
		Especie:    m.Especie,
		Idade:      m.Idade,
		Sexo:       m.Sexo,
		CorPelagem: m.CorPelagem,
		Castrado:   m.Castrado,
		FotoURL:    m.FotoURL,
		UsuarioID:  m.UsuarioID,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

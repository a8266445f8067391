package types

// PetMutationInput captures inbound pet fields while preserving presence.
type PetMutationInput struct {
	Nome       *string
	Raca       *string
	Especie    *string
	Idade      *int32
	Sexo       *string
	CorPelagem *string
	Castrado   *bool
	FotoURL    *string
	UsuarioID  *int64
}

// AddPetInput is the create command. IdempotencyKey is optional.
type AddPetInput struct {
	PetMutationInput
	IdempotencyKey string
}

// UpdatePetInput is a partial update of an existing pet.
type UpdatePetInput struct {
	ID int64
	PetMutationInput
}

// Package fieldmap translates API field names to storage column names.
//
// Every entity has exactly one Table. Mappers and persistence adapters look
// names up here instead of renaming fields ad hoc.
package fieldmap

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a name is not part of a table.
var ErrUnknownField = errors.New("unknown field")

// Field pairs an API name with its storage column.
type Field struct {
	API    string
	Column string
}

// Table is an immutable bidirectional field translation table.
type Table struct {
	entity   string
	byAPI    map[string]string
	byColumn map[string]string
	order    []Field
}

// New builds a table. Duplicate names panic since tables are package-level fixtures.
func New(entity string, fields ...Field) Table {
	t := Table{
		entity:   entity,
		byAPI:    make(map[string]string, len(fields)),
		byColumn: make(map[string]string, len(fields)),
		order:    append([]Field(nil), fields...),
	}
	for _, f := range fields {
		if _, dup := t.byAPI[f.API]; dup {
			panic(fmt.Sprintf("fieldmap: duplicate api field %s.%s", entity, f.API))
		}
		if _, dup := t.byColumn[f.Column]; dup {
			panic(fmt.Sprintf("fieldmap: duplicate column %s.%s", entity, f.Column))
		}
		t.byAPI[f.API] = f.Column
		t.byColumn[f.Column] = f.API
	}
	return t
}

// Entity returns the entity name the table belongs to.
func (t Table) Entity() string { return t.entity }

// Column returns the storage column for an API field.
func (t Table) Column(api string) (string, error) {
	column, ok := t.byAPI[api]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, t.entity, api)
	}
	return column, nil
}

// MustColumn is Column for names known at compile time.
func (t Table) MustColumn(api string) string {
	column, err := t.Column(api)
	if err != nil {
		panic(err)
	}
	return column
}

// API returns the API field for a storage column.
func (t Table) API(column string) (string, error) {
	api, ok := t.byColumn[column]
	if !ok {
		return "", fmt.Errorf("%w: %s column %s", ErrUnknownField, t.entity, column)
	}
	return api, nil
}

// Columns translates a list of API fields, preserving order.
func (t Table) Columns(apiFields []string) ([]string, error) {
	columns := make([]string, 0, len(apiFields))
	for _, name := range apiFields {
		column, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	return columns, nil
}

// Fields returns the table entries in declaration order.
func (t Table) Fields() []Field {
	return append([]Field(nil), t.order...)
}

// Usuarios is the usuario translation table. senha is write-only and maps onto the hash column.
var Usuarios = New("usuario",
	Field{API: "id", Column: "id"},
	Field{API: "nome", Column: "nome"},
	Field{API: "email", Column: "email"},
	Field{API: "senha", Column: "senha_hash"},
	Field{API: "createdAt", Column: "created_at"},
	Field{API: "updatedAt", Column: "updated_at"},
)

// Pets is the pet translation table.
var Pets = New("pet",
	Field{API: "id", Column: "id"},
	Field{API: "nome", Column: "nome"},
	Field{API: "raca", Column: "raca"},
	Field{API: "especie", Column: "especie"},
	Field{API: "idade", Column: "idade"},
	Field{API: "sexo", Column: "sexo"},
	Field{API: "corPelagem", Column: "cor_pelagem"},
	Field{API: "castrado", Column: "castrado"},
	Field{API: "foto_url", Column: "foto_url"},
	Field{API: "usuarioId", Column: "usuario_id"},
	Field{API: "createdAt", Column: "created_at"},
	Field{API: "updatedAt", Column: "updated_at"},
)

// Produtos is the produto translation table. The pet reference column is petid.
var Produtos = New("produto",
	Field{API: "id", Column: "id"},
	Field{API: "nome", Column: "nome"},
	Field{API: "descricao", Column: "descricao"},
	Field{API: "tipo", Column: "tipo"},
	Field{API: "preco", Column: "preco"},
	Field{API: "imagem", Column: "imagem"},
	Field{API: "petId", Column: "petid"},
	Field{API: "data_compra", Column: "data_compra"},
	Field{API: "observacoes", Column: "observacoes"},
	Field{API: "quantidade_vezes", Column: "quantidade_vezes"},
	Field{API: "quando_consumir", Column: "quando_consumir"},
	Field{API: "createdAt", Column: "created_at"},
	Field{API: "updatedAt", Column: "updated_at"},
)

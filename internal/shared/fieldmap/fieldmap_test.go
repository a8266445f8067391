package fieldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProdutosPetReference(t *testing.T) {
	column, err := Produtos.Column("petId")
	require.NoError(t, err)
	assert.Equal(t, "petid", column)

	api, err := Produtos.API("petid")
	require.NoError(t, err)
	assert.Equal(t, "petId", api)
}

func TestColumnsPreservesOrder(t *testing.T) {
	columns, err := Pets.Columns([]string{"usuarioId", "nome", "corPelagem"})
	require.NoError(t, err)
	assert.Equal(t, []string{"usuario_id", "nome", "cor_pelagem"}, columns)
}

func TestUnknownField(t *testing.T) {
	_, err := Produtos.Column("petid")
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = Usuarios.Columns([]string{"nome", "password"})
	require.ErrorIs(t, err, ErrUnknownField)

	assert.Panics(t, func() { Pets.MustColumn("owner") })
}

func TestNewRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		New("x", Field{API: "a", Column: "a"}, Field{API: "b", Column: "a"})
	})
}

func TestTablesAreBijective(t *testing.T) {
	for _, table := range []Table{Usuarios, Pets, Produtos} {
		for _, f := range table.Fields() {
			api, err := table.API(f.Column)
			require.NoError(t, err, table.Entity())
			assert.Equal(t, f.API, api)
		}
	}
}

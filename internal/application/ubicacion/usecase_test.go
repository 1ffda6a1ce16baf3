package ubicacion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/memory"
)

func TestCatalogo(t *testing.T) {
	uc := NewUbicacionUseCase(memory.NewStore().Ubicaciones())
	ctx := context.Background()

	deps, err := uc.ListDepartamentos(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, deps)
	assert.Equal(t, "15", deps[0].Codigo)

	muns, err := uc.ListMunicipios(ctx, " 15 ")
	require.NoError(t, err)
	require.NotEmpty(t, muns)
	for _, m := range muns {
		assert.Equal(t, "15", m.CodigoDepartamento)
	}

	muns, err = uc.ListMunicipios(ctx, "99")
	require.NoError(t, err)
	assert.Empty(t, muns)
	assert.NotNil(t, muns)
}

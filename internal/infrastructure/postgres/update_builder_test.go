package postgres

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

func TestBuildUpdate_SoloColumnasPresentes(t *testing.T) {
	raza := "Normando"
	peso := decimal.RequireFromString("415.5")
	patch := entity.BovinoPatch{Raza: &raza, Peso: &peso}

	sql, args, err := buildUpdate("bovinos", bovinoSets(patch), sq.Eq{"id": int64(3), "propietario_id": int64(9), "activo": true})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE bovinos SET raza = $1, peso = $2 WHERE activo = $3 AND id = $4 AND propietario_id = $5", sql)
	assert.Equal(t, []any{"Normando", peso, true, int64(3), int64(9)}, args)
}

func TestBuildUpdate_SinCampos(t *testing.T) {
	_, _, err := buildUpdate("bovinos", bovinoSets(entity.BovinoPatch{}), sq.Eq{"id": 1})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, _, err = buildUpdate("publicaciones", publicacionSets(entity.PublicacionPatch{}), sq.Eq{"id": 1})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestPublicacionSets_Orden(t *testing.T) {
	titulo := "Vaca lechera"
	activo := false
	sets := publicacionSets(entity.PublicacionPatch{Activo: &activo, Titulo: &titulo})

	require.Len(t, sets, 2)
	assert.Equal(t, "titulo", sets[0].name)
	assert.Equal(t, "activo", sets[1].name)
	assert.Equal(t, false, sets[1].value)
}

func TestContainsPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, `%holstein%`, containsPattern("holstein"))
	assert.Equal(t, `%100\%\_puro%`, containsPattern("100%_puro"))
}

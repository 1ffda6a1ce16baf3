package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

func TestGenerateFicha(t *testing.T) {
	nombre := "Lucera"
	edad := 4
	peso := decimal.NewFromInt(450)
	producto := "Aftosa"
	data := ports.FichaData{
		Bovino: &entity.Bovino{
			ID: 1, Nombre: &nombre, Raza: "Holstein", Sexo: entity.SexoHembra, Edad: &edad, Peso: &peso,
			UbicacionDepartamento: entity.DepartamentoDefault,
		},
		Propietario: &entity.User{Nombre: "Ana", Apellidos: "Rojas", Email: "ana@finca.co", Municipio: "Paipa", Departamento: "Boyacá"},
		Sanitarios: []*entity.RegistroSanitario{
			{Fecha: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), TipoRegistro: entity.TipoVacuna, Producto: &producto},
		},
		GeneradaEn: time.Now(),
	}

	out, err := NewFichaGenerator().GenerateFicha(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateFicha_SinBovino(t *testing.T) {
	_, err := NewFichaGenerator().GenerateFicha(context.Background(), ports.FichaData{})
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "950", formatMoney("950"))
	uno := 1
	assert.Equal(t, "1 año", edadLabel(&uno))
	assert.Equal(t, "—", edadLabel(nil))
	mun := "Duitama"
	assert.Equal(t, "Duitama, Boyacá", ubicacionLabel(&entity.Bovino{UbicacionMunicipio: &mun, UbicacionDepartamento: "Boyacá"}))
}

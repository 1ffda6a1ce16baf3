package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sexo de un bovino.
const (
	SexoMacho  = "M"
	SexoHembra = "F"
)

// ValidSexo indica si s es uno de los dos valores aceptados.
func ValidSexo(s string) bool {
	return s == SexoMacho || s == SexoHembra
}

// Bovino ficha de un animal. Edad en años y peso en kg (representación canónica).
// Activo=false es el borrado lógico.
type Bovino struct {
	ID                    int64
	PropietarioID         int64
	Nombre                *string
	CodigoInterno         *string
	Raza                  string
	Sexo                  string
	Edad                  *int
	Peso                  *decimal.Decimal
	UbicacionMunicipio    *string
	UbicacionDepartamento string
	EstadoSanitario       *string
	ValorEstimado         *decimal.Decimal
	FotoPrincipal         *string
	Descripcion           *string
	Activo                bool
	RegistroFecha         time.Time
}

// BovinoFoto foto asociada a un bovino; a lo sumo una principal por bovino.
type BovinoFoto struct {
	ID          int64
	BovinoID    int64
	Ruta        string
	EsPrincipal bool
	FechaSubida time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro sanitario.
const (
	TipoVacuna          = "vacuna"
	TipoDesparasitacion = "desparasitacion"
	TipoDiagnostico     = "diagnostico"
	TipoTratamiento     = "tratamiento"
)

// Tipos de evento reproductivo.
const (
	EventoParto        = "parto"
	EventoServicio     = "servicio"
	EventoInseminacion = "inseminacion"
)

var (
	tiposSanitarios      = map[string]bool{TipoVacuna: true, TipoDesparasitacion: true, TipoDiagnostico: true, TipoTratamiento: true}
	eventosReproductivos = map[string]bool{EventoParto: true, EventoServicio: true, EventoInseminacion: true}
)

// ValidTipoSanitario t debe venir ya normalizado (minúsculas, sin tildes).
func ValidTipoSanitario(t string) bool { return tiposSanitarios[t] }

// ValidEventoReproductivo e debe venir ya normalizado (minúsculas, sin tildes).
func ValidEventoReproductivo(e string) bool { return eventosReproductivos[e] }

// RegistroSanitario entrada del historial sanitario (solo se agrega).
type RegistroSanitario struct {
	ID            int64
	BovinoID      int64
	Fecha         time.Time
	TipoRegistro  string
	Producto      *string
	Dosis         *string
	Veterinario   *string
	Costo         *decimal.Decimal
	Observaciones *string
	CreadoEn      time.Time
}

// RegistroReproductivo entrada del historial reproductivo (solo se agrega).
type RegistroReproductivo struct {
	ID            int64
	BovinoID      int64
	Fecha         time.Time
	TipoEvento    string
	Detalles      *string
	Resultado     *string
	Observaciones *string
	CreadoEn      time.Time
}

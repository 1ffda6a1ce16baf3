package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBovinoRequest entrada para registrar un bovino. Raza y sexo son obligatorios.
type CreateBovinoRequest struct {
	Nombre                *string          `json:"nombre" validate:"omitempty,max=100"`
	CodigoInterno         *string          `json:"codigo_interno" validate:"omitempty,max=50"`
	Raza                  string           `json:"raza" validate:"required,notblank,max=100"`
	Sexo                  string           `json:"sexo" validate:"required,oneof=M F"`
	Edad                  *int             `json:"edad" validate:"omitempty,min=0,max=40"`
	Peso                  *decimal.Decimal `json:"peso" validate:"omitempty,gt=0"`
	UbicacionMunicipio    *string          `json:"ubicacion_municipio" validate:"omitempty,max=100"`
	UbicacionDepartamento string           `json:"ubicacion_departamento" validate:"omitempty,max=100"`
	EstadoSanitario       *string          `json:"estado_sanitario" validate:"omitempty,max=255"`
	ValorEstimado         *decimal.Decimal `json:"valor_estimado" validate:"omitempty,gte=0"`
	Descripcion           *string          `json:"descripcion"`
}

// UpdateBovinoRequest actualización parcial: los campos ausentes no se tocan.
type UpdateBovinoRequest struct {
	Nombre                *string          `json:"nombre" validate:"omitempty,max=100"`
	CodigoInterno         *string          `json:"codigo_interno" validate:"omitempty,max=50"`
	Raza                  *string          `json:"raza" validate:"omitempty,notblank,max=100"`
	Sexo                  *string          `json:"sexo" validate:"omitempty,oneof=M F"`
	Edad                  *int             `json:"edad" validate:"omitempty,min=0,max=40"`
	Peso                  *decimal.Decimal `json:"peso" validate:"omitempty,gt=0"`
	UbicacionMunicipio    *string          `json:"ubicacion_municipio" validate:"omitempty,max=100"`
	UbicacionDepartamento *string          `json:"ubicacion_departamento" validate:"omitempty,notblank,max=100"`
	EstadoSanitario       *string          `json:"estado_sanitario" validate:"omitempty,max=255"`
	ValorEstimado         *decimal.Decimal `json:"valor_estimado" validate:"omitempty,gte=0"`
	Descripcion           *string          `json:"descripcion"`
}

// BovinoResponse salida de un bovino.
type BovinoResponse struct {
	ID                    int64            `json:"id"`
	PropietarioID         int64            `json:"propietario_id"`
	Nombre                *string          `json:"nombre"`
	CodigoInterno         *string          `json:"codigo_interno"`
	Raza                  string           `json:"raza"`
	Sexo                  string           `json:"sexo"`
	Edad                  *int             `json:"edad"`
	Peso                  *decimal.Decimal `json:"peso"`
	UbicacionMunicipio    *string          `json:"ubicacion_municipio"`
	UbicacionDepartamento string           `json:"ubicacion_departamento"`
	EstadoSanitario       *string          `json:"estado_sanitario"`
	ValorEstimado         *decimal.Decimal `json:"valor_estimado"`
	FotoPrincipal         *string          `json:"foto_principal"`
	Descripcion           *string          `json:"descripcion"`
	Activo                bool             `json:"activo"`
	RegistroFecha         time.Time        `json:"registro_fecha"`
}

// BovinoListResponse data de GET /api/bovinos.
type BovinoListResponse struct {
	Bovinos []BovinoResponse `json:"bovinos"`
}

// BovinoEnvelope data de get, create y update.
type BovinoEnvelope struct {
	ID     int64          `json:"id,omitempty"`
	Bovino BovinoResponse `json:"bovino"`
}

// FotoResponse salida de una foto.
type FotoResponse struct {
	ID          int64     `json:"id"`
	BovinoID    int64     `json:"bovino_id"`
	Ruta        string    `json:"ruta"`
	EsPrincipal bool      `json:"es_principal"`
	FechaSubida time.Time `json:"fecha_subida"`
}

// FotosResponse data de la subida múltiple y del listado de fotos.
type FotosResponse struct {
	Message string         `json:"message,omitempty"`
	Fotos   []FotoResponse `json:"fotos"`
}

// FotoPrincipalResponse data de la subida de foto principal.
type FotoPrincipalResponse struct {
	Message string       `json:"message"`
	Foto    FotoResponse `json:"foto"`
}

// CreateRegistroSanitarioRequest entrada del historial sanitario. Fecha en formato AAAA-MM-DD.
type CreateRegistroSanitarioRequest struct {
	Fecha         string           `json:"fecha" validate:"required,datetime=2006-01-02"`
	TipoRegistro  string           `json:"tipo_registro" validate:"required"`
	Producto      *string          `json:"producto" validate:"omitempty,max=150"`
	Dosis         *string          `json:"dosis" validate:"omitempty,max=100"`
	Veterinario   *string          `json:"veterinario" validate:"omitempty,max=150"`
	Costo         *decimal.Decimal `json:"costo" validate:"omitempty,gte=0"`
	Observaciones *string          `json:"observaciones"`
}

// RegistroSanitarioResponse salida de un registro sanitario.
type RegistroSanitarioResponse struct {
	ID            int64            `json:"id"`
	BovinoID      int64            `json:"bovino_id"`
	Fecha         string           `json:"fecha"`
	TipoRegistro  string           `json:"tipo_registro"`
	Producto      *string          `json:"producto"`
	Dosis         *string          `json:"dosis"`
	Veterinario   *string          `json:"veterinario"`
	Costo         *decimal.Decimal `json:"costo"`
	Observaciones *string          `json:"observaciones"`
	CreadoEn      time.Time        `json:"creado_en"`
}

// CreateRegistroReproductivoRequest entrada del historial reproductivo. Fecha en formato AAAA-MM-DD.
type CreateRegistroReproductivoRequest struct {
	Fecha         string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	TipoEvento    string  `json:"tipo_evento" validate:"required"`
	Detalles      *string `json:"detalles"`
	Resultado     *string `json:"resultado" validate:"omitempty,max=100"`
	Observaciones *string `json:"observaciones"`
}

// RegistroReproductivoResponse salida de un evento reproductivo.
type RegistroReproductivoResponse struct {
	ID            int64     `json:"id"`
	BovinoID      int64     `json:"bovino_id"`
	Fecha         string    `json:"fecha"`
	TipoEvento    string    `json:"tipo_evento"`
	Detalles      *string   `json:"detalles"`
	Resultado     *string   `json:"resultado"`
	Observaciones *string   `json:"observaciones"`
	CreadoEn      time.Time `json:"creado_en"`
}

// RegistroEnvelope data al crear un registro de cualquier historial.
type RegistroEnvelope struct {
	Registro any `json:"registro"`
}

// HistorialSanitarioResponse data de GET /api/bovinos/:id/sanitario.
type HistorialSanitarioResponse struct {
	Historial []RegistroSanitarioResponse `json:"historial"`
}

// HistorialReproductivoResponse data de GET /api/bovinos/:id/reproductivo.
type HistorialReproductivoResponse struct {
	Historial []RegistroReproductivoResponse `json:"historial"`
}

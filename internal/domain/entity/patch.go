package entity

import "github.com/shopspring/decimal"

// BovinoPatch actualización parcial: solo los campos no nil se escriben.
// Activo y FotoPrincipal no son editables por esta vía (borrado lógico y operaciones de fotos).
type BovinoPatch struct {
	Nombre                *string
	CodigoInterno         *string
	Raza                  *string
	Sexo                  *string
	Edad                  *int
	Peso                  *decimal.Decimal
	UbicacionMunicipio    *string
	UbicacionDepartamento *string
	EstadoSanitario       *string
	ValorEstimado         *decimal.Decimal
	Descripcion           *string
}

// IsEmpty true si no trae ningún campo.
func (p BovinoPatch) IsEmpty() bool {
	return p.Nombre == nil && p.CodigoInterno == nil && p.Raza == nil && p.Sexo == nil &&
		p.Edad == nil && p.Peso == nil && p.UbicacionMunicipio == nil &&
		p.UbicacionDepartamento == nil && p.EstadoSanitario == nil &&
		p.ValorEstimado == nil && p.Descripcion == nil
}

// Apply copia sobre b los campos presentes.
func (p BovinoPatch) Apply(b *Bovino) {
	if p.Nombre != nil {
		b.Nombre = p.Nombre
	}
	if p.CodigoInterno != nil {
		b.CodigoInterno = p.CodigoInterno
	}
	if p.Raza != nil {
		b.Raza = *p.Raza
	}
	if p.Sexo != nil {
		b.Sexo = *p.Sexo
	}
	if p.Edad != nil {
		b.Edad = p.Edad
	}
	if p.Peso != nil {
		b.Peso = p.Peso
	}
	if p.UbicacionMunicipio != nil {
		b.UbicacionMunicipio = p.UbicacionMunicipio
	}
	if p.UbicacionDepartamento != nil {
		b.UbicacionDepartamento = *p.UbicacionDepartamento
	}
	if p.EstadoSanitario != nil {
		b.EstadoSanitario = p.EstadoSanitario
	}
	if p.ValorEstimado != nil {
		b.ValorEstimado = p.ValorEstimado
	}
	if p.Descripcion != nil {
		b.Descripcion = p.Descripcion
	}
}

// PublicacionPatch actualización parcial de una publicación.
type PublicacionPatch struct {
	Titulo      *string
	Descripcion *string
	Precio      *decimal.Decimal
	Activo      *bool
}

// IsEmpty true si no trae ningún campo.
func (p PublicacionPatch) IsEmpty() bool {
	return p.Titulo == nil && p.Descripcion == nil && p.Precio == nil && p.Activo == nil
}

// Activates true si el patch deja la publicación activa.
func (p PublicacionPatch) Activates() bool {
	return p.Activo != nil && *p.Activo
}

// Apply copia sobre pub los campos presentes.
func (p PublicacionPatch) Apply(pub *Publicacion) {
	if p.Titulo != nil {
		pub.Titulo = *p.Titulo
	}
	if p.Descripcion != nil {
		pub.Descripcion = p.Descripcion
	}
	if p.Precio != nil {
		pub.Precio = *p.Precio
	}
	if p.Activo != nil {
		pub.Activo = *p.Activo
	}
}

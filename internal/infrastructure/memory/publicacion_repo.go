package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

const vacunasAlDia = "vacunas al día"

type publicacionRepo Store

func (r *publicacionRepo) detalle(p entity.Publicacion) *entity.PublicacionDetalle {
	return &entity.PublicacionDetalle{
		Publicacion: p,
		Bovino:      r.bovinos[p.BovinoID],
		Vendedor:    r.usuarios[p.VendedorID],
	}
}

func containsFold(field *string, needle string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), needle)
}

func matches(d *entity.PublicacionDetalle, f entity.FiltrosMarketplace) bool {
	b := d.Bovino
	if !d.Activo {
		return false
	}
	if f.Raza != nil && b.Raza != *f.Raza {
		return false
	}
	if f.Sexo != nil && b.Sexo != *f.Sexo {
		return false
	}
	if f.EdadMin != nil && (b.Edad == nil || *b.Edad < *f.EdadMin) {
		return false
	}
	if f.EdadMax != nil && (b.Edad == nil || *b.Edad > *f.EdadMax) {
		return false
	}
	if f.PesoMin != nil && (b.Peso == nil || b.Peso.LessThan(*f.PesoMin)) {
		return false
	}
	if f.PesoMax != nil && (b.Peso == nil || b.Peso.GreaterThan(*f.PesoMax)) {
		return false
	}
	if f.PrecioMin != nil && d.Precio.LessThan(*f.PrecioMin) {
		return false
	}
	if f.PrecioMax != nil && d.Precio.GreaterThan(*f.PrecioMax) {
		return false
	}
	if f.Municipio != nil && (b.UbicacionMunicipio == nil || *b.UbicacionMunicipio != *f.Municipio) {
		return false
	}
	if f.Departamento != nil && b.UbicacionDepartamento != *f.Departamento {
		return false
	}
	if f.VacunasAlDia && !containsFold(b.EstadoSanitario, vacunasAlDia) {
		return false
	}
	if f.Busqueda != nil && *f.Busqueda != "" {
		q := strings.ToLower(*f.Busqueda)
		raza := b.Raza
		titulo := d.Titulo
		if !containsFold(&titulo, q) && !containsFold(d.Descripcion, q) && !containsFold(&raza, q) && !containsFold(b.Nombre, q) {
			return false
		}
	}
	return true
}

func sortDetalles(list []*entity.PublicacionDetalle, by string, asc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		var cmp int
		if by == entity.OrdenPrecio {
			cmp = a.Precio.Cmp(b.Precio)
		} else {
			cmp = a.FechaCreacion.Compare(b.FechaCreacion)
		}
		if cmp == 0 {
			return a.ID > b.ID
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
}

func (r *publicacionRepo) Search(ctx context.Context, f entity.FiltrosMarketplace) ([]*entity.PublicacionDetalle, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.PublicacionDetalle, 0)
	for _, p := range r.publicaciones {
		d := r.detalle(p)
		if matches(d, f) {
			all = append(all, d)
		}
	}
	sortDetalles(all, f.OrdenarPor, f.Ascendente)

	total := len(all)
	start := f.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + f.PorPagina
	if end < start || end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *publicacionRepo) FindDetalle(ctx context.Context, id int64) (*entity.PublicacionDetalle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.publicaciones[id]
	if !ok {
		return nil, nil
	}
	return r.detalle(p), nil
}

func (r *publicacionRepo) FindOwned(ctx context.Context, id, vendedorID int64) (*entity.PublicacionDetalle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.publicaciones[id]
	if !ok || p.VendedorID != vendedorID {
		return nil, nil
	}
	return r.detalle(p), nil
}

func (r *publicacionRepo) hasActive(bovinoID, excludeID int64) bool {
	for _, p := range r.publicaciones {
		if p.BovinoID == bovinoID && p.Activo && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *publicacionRepo) HasActiveForBovino(ctx context.Context, bovinoID, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasActive(bovinoID, excludeID), nil
}

func (r *publicacionRepo) Create(ctx context.Context, p *entity.Publicacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Mismo efecto que el índice parcial ux_publicaciones_bovino_activa.
	if p.Activo && r.hasActive(p.BovinoID, 0) {
		return domain.ErrAlreadyListed
	}
	s := (*Store)(r)
	p.ID = s.nextID()
	p.FechaCreacion = s.now()
	r.publicaciones[p.ID] = *p
	return nil
}

func (r *publicacionRepo) Update(ctx context.Context, id, vendedorID int64, patch entity.PublicacionPatch) error {
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.publicaciones[id]
	if !ok || p.VendedorID != vendedorID {
		return domain.ErrPublicacionNotFound
	}
	if patch.Activates() && r.hasActive(p.BovinoID, id) {
		return domain.ErrAlreadyListed
	}
	patch.Apply(&p)
	r.publicaciones[id] = p
	return nil
}

func (r *publicacionRepo) Delete(ctx context.Context, id, vendedorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.publicaciones[id]
	if !ok || p.VendedorID != vendedorID {
		return domain.ErrPublicacionNotFound
	}
	delete(r.publicaciones, id)
	return nil
}

func (r *publicacionRepo) ListBySeller(ctx context.Context, vendedorID int64) ([]*entity.PublicacionDetalle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.PublicacionDetalle, 0)
	for _, p := range r.publicaciones {
		if p.VendedorID == vendedorID {
			out = append(out, r.detalle(p))
		}
	}
	sortDetalles(out, entity.OrdenFechaCreacion, false)
	return out, nil
}

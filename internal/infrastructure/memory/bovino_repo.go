package memory

import (
	"context"
	"sort"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

type bovinoRepo Store

func (r *bovinoRepo) owned(id, ownerID int64) (entity.Bovino, bool) {
	b, ok := r.bovinos[id]
	if !ok || !b.Activo || b.PropietarioID != ownerID {
		return entity.Bovino{}, false
	}
	return b, true
}

func (r *bovinoRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Bovino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Bovino, 0)
	for _, b := range r.bovinos {
		if b.PropietarioID == ownerID && b.Activo {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RegistroFecha.Equal(out[j].RegistroFecha) {
			return out[i].ID > out[j].ID
		}
		return out[i].RegistroFecha.After(out[j].RegistroFecha)
	})
	return out, nil
}

func (r *bovinoRepo) FindOwned(ctx context.Context, id, ownerID int64) (*entity.Bovino, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.owned(id, ownerID)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *bovinoRepo) Create(ctx context.Context, b *entity.Bovino) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := (*Store)(r)
	b.ID = s.nextID()
	b.RegistroFecha = s.now()
	b.Activo = true
	if b.UbicacionDepartamento == "" {
		b.UbicacionDepartamento = entity.DepartamentoDefault
	}
	r.bovinos[b.ID] = *b
	return nil
}

func (r *bovinoRepo) Update(ctx context.Context, id, ownerID int64, patch entity.BovinoPatch) error {
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.owned(id, ownerID)
	if !ok {
		return domain.ErrBovinoNotFound
	}
	patch.Apply(&b)
	r.bovinos[id] = b
	return nil
}

func (r *bovinoRepo) SoftDelete(ctx context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.owned(id, ownerID)
	if !ok {
		return domain.ErrBovinoNotFound
	}
	b.Activo = false
	r.bovinos[id] = b
	return nil
}

func (r *bovinoRepo) AddFotos(ctx context.Context, bovinoID int64, rutas []string, setPrincipal bool) ([]*entity.BovinoFoto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := (*Store)(r)
	out := make([]*entity.BovinoFoto, 0, len(rutas))
	for i, ruta := range rutas {
		f := entity.BovinoFoto{
			ID:          s.nextID(),
			BovinoID:    bovinoID,
			Ruta:        ruta,
			EsPrincipal: setPrincipal && i == 0,
			FechaSubida: s.now(),
		}
		r.fotos[bovinoID] = append(r.fotos[bovinoID], f)
		out = append(out, &f)
	}
	if setPrincipal && len(rutas) > 0 {
		if b, ok := r.bovinos[bovinoID]; ok {
			ruta := rutas[0]
			b.FotoPrincipal = &ruta
			r.bovinos[bovinoID] = b
		}
	}
	return out, nil
}

func (r *bovinoRepo) AddFotoPrincipal(ctx context.Context, bovinoID int64, ruta string) (*entity.BovinoFoto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := (*Store)(r)
	fotos := r.fotos[bovinoID]
	for i := range fotos {
		fotos[i].EsPrincipal = false
	}
	f := entity.BovinoFoto{ID: s.nextID(), BovinoID: bovinoID, Ruta: ruta, EsPrincipal: true, FechaSubida: s.now()}
	r.fotos[bovinoID] = append(fotos, f)
	if b, ok := r.bovinos[bovinoID]; ok {
		b.FotoPrincipal = &ruta
		r.bovinos[bovinoID] = b
	}
	return &f, nil
}

func (r *bovinoRepo) ListFotos(ctx context.Context, bovinoID int64) ([]*entity.BovinoFoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.BovinoFoto, 0, len(r.fotos[bovinoID]))
	for _, f := range r.fotos[bovinoID] {
		f := f
		out = append(out, &f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EsPrincipal != out[j].EsPrincipal {
			return out[i].EsPrincipal
		}
		return out[i].FechaSubida.After(out[j].FechaSubida)
	})
	return out, nil
}

func (r *bovinoRepo) AddRegistroSanitario(ctx context.Context, reg *entity.RegistroSanitario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := (*Store)(r)
	reg.ID = s.nextID()
	reg.CreadoEn = s.now()
	r.sanitarios[reg.BovinoID] = append(r.sanitarios[reg.BovinoID], *reg)
	return nil
}

func (r *bovinoRepo) ListRegistrosSanitarios(ctx context.Context, bovinoID int64) ([]*entity.RegistroSanitario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.RegistroSanitario, 0)
	for _, reg := range r.sanitarios[bovinoID] {
		reg := reg
		out = append(out, &reg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].ID > out[j].ID
		}
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out, nil
}

func (r *bovinoRepo) AddRegistroReproductivo(ctx context.Context, reg *entity.RegistroReproductivo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := (*Store)(r)
	reg.ID = s.nextID()
	reg.CreadoEn = s.now()
	r.reproductivos[reg.BovinoID] = append(r.reproductivos[reg.BovinoID], *reg)
	return nil
}

func (r *bovinoRepo) ListRegistrosReproductivos(ctx context.Context, bovinoID int64) ([]*entity.RegistroReproductivo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.RegistroReproductivo, 0)
	for _, reg := range r.reproductivos[bovinoID] {
		reg := reg
		out = append(out, &reg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].ID > out[j].ID
		}
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out, nil
}

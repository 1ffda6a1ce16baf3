package marketplace

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/memory"
)

type recorder struct {
	mu     sync.Mutex
	events []ports.ListingEvent
	err    error
}

func (r *recorder) Publish(_ context.Context, evt ports.ListingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return r.err
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	uc     *MarketplaceUseCase
	store  *memory.Store
	events *recorder
	seller int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	u := &entity.User{Nombre: "Ana", Apellidos: "Rojas", Email: "ana@finca.co", Municipio: "Paipa", Departamento: "Boyacá", Activo: true}
	require.NoError(t, store.Usuarios().Create(context.Background(), u))
	rec := &recorder{}
	uc := NewMarketplaceUseCase(store.Publicaciones(), store.Bovinos(), store.TxRunner(), rec, nil)
	return &fixture{uc: uc, store: store, events: rec, seller: u.ID}
}

func (f *fixture) bovino(t *testing.T, ownerID int64, raza string) int64 {
	t.Helper()
	b := &entity.Bovino{PropietarioID: ownerID, Raza: raza, Sexo: entity.SexoHembra}
	require.NoError(t, f.store.Bovinos().Create(context.Background(), b))
	return b.ID
}

func (f *fixture) publicar(t *testing.T, bovinoID int64, precio int64) *dto.PublicacionResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), f.seller, dto.CreatePublicacionRequest{
		BovinoID:    bovinoID,
		Titulo:      "Vaca en venta",
		Descripcion: "Buena productora",
		Precio:      decimal.NewFromInt(precio),
	})
	require.NoError(t, err)
	return out
}

func TestCreate_DevuelveDetalle(t *testing.T) {
	f := newFixture(t)
	out := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 5000000)

	assert.True(t, out.Activo)
	assert.Equal(t, "Holstein", out.Bovino.Raza)
	assert.Equal(t, "Ana", out.Vendedor.Nombre)
	assert.Equal(t, []string{ports.EventPublicacionCreada}, f.events.types())
}

func TestCreate_BovinoAjeno(t *testing.T) {
	f := newFixture(t)
	ajeno := f.bovino(t, f.seller+50, "Normando")

	_, err := f.uc.Create(context.Background(), f.seller, dto.CreatePublicacionRequest{
		BovinoID: ajeno, Titulo: "x", Descripcion: "y", Precio: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrBovinoNotOwned)
	assert.Empty(t, f.events.types())
}

func TestCreate_UnaActivaPorBovino(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bid := f.bovino(t, f.seller, "Holstein")
	first := f.publicar(t, bid, 5000000)

	_, err := f.uc.Create(ctx, f.seller, dto.CreatePublicacionRequest{
		BovinoID: bid, Titulo: "Otra", Descripcion: "z", Precio: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyListed)

	_, err = f.uc.Toggle(ctx, first.ID, f.seller)
	require.NoError(t, err)
	second := f.publicar(t, bid, 4500000)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = f.uc.Toggle(ctx, first.ID, f.seller)
	assert.ErrorIs(t, err, domain.ErrAlreadyListed, "no se reactiva mientras otra está activa")

	on := true
	_, err = f.uc.Update(ctx, first.ID, f.seller, dto.UpdatePublicacionRequest{Activo: &on})
	assert.ErrorIs(t, err, domain.ErrAlreadyListed)
}

func TestCreate_PrecioNoPositivo(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), f.seller, dto.CreatePublicacionRequest{
		BovinoID: f.bovino(t, f.seller, "Holstein"), Titulo: "x", Descripcion: "y", Precio: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TituloEnBlanco(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bovinoID := f.bovino(t, f.seller, "Holstein")
	_, err := f.uc.Create(ctx, f.seller, dto.CreatePublicacionRequest{
		BovinoID: bovinoID, Titulo: "   ", Descripcion: "y", Precio: decimal.NewFromInt(1000000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pub := f.publicar(t, bovinoID, 1000000)
	blank := " \t "
	_, err = f.uc.Update(ctx, pub.ID, f.seller, dto.UpdatePublicacionRequest{Titulo: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.GetOne(ctx, pub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vaca en venta", got.Titulo)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pub := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 5000000)

	precio := decimal.NewFromInt(4800000)
	out, err := f.uc.Update(ctx, pub.ID, f.seller, dto.UpdatePublicacionRequest{Precio: &precio})
	require.NoError(t, err)
	assert.True(t, out.Precio.Equal(precio))
	assert.Equal(t, "Vaca en venta", out.Titulo)

	_, err = f.uc.Update(ctx, pub.ID, f.seller, dto.UpdatePublicacionRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = f.uc.Update(ctx, pub.ID, f.seller+1, dto.UpdatePublicacionRequest{Precio: &precio})
	assert.ErrorIs(t, err, domain.ErrPublicacionNotFound)

	off := false
	out, err = f.uc.Update(ctx, pub.ID, f.seller, dto.UpdatePublicacionRequest{Activo: &off})
	require.NoError(t, err)
	assert.False(t, out.Activo)

	assert.Equal(t, []string{
		ports.EventPublicacionCreada,
		ports.EventPublicacionActualizada,
		ports.EventPublicacionEstadoCambiado,
	}, f.events.types())
}

func TestToggle_ReactivarBovinoEliminado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bid := f.bovino(t, f.seller, "Holstein")
	pub := f.publicar(t, bid, 5000000)

	_, err := f.uc.Toggle(ctx, pub.ID, f.seller)
	require.NoError(t, err)
	require.NoError(t, f.store.Bovinos().SoftDelete(ctx, bid, f.seller))

	_, err = f.uc.Toggle(ctx, pub.ID, f.seller)
	assert.ErrorIs(t, err, domain.ErrBovinoNotOwned)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pub := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 5000000)

	assert.ErrorIs(t, f.uc.Delete(ctx, pub.ID, f.seller+1), domain.ErrPublicacionNotFound)
	require.NoError(t, f.uc.Delete(ctx, pub.ID, f.seller))

	_, err := f.uc.GetOne(ctx, pub.ID)
	assert.ErrorIs(t, err, domain.ErrPublicacionNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, pub.ID, f.seller), domain.ErrPublicacionNotFound)
}

func TestGetOne_IncluyeInactivas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pub := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 5000000)

	got, err := f.uc.GetOne(ctx, pub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Holstein", got.Bovino.Raza)

	_, err = f.uc.Toggle(ctx, pub.ID, f.seller)
	require.NoError(t, err)
	got, err = f.uc.GetOne(ctx, pub.ID)
	require.NoError(t, err)
	assert.False(t, got.Activo)
	assert.Equal(t, pub.ID, got.ID)

	_, err = f.uc.GetOne(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrPublicacionNotFound)
}

func TestSearch_RangoDePrecioYPaginacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, precio := range []int64{800000, 1000000, 2500000, 5000000, 7000000} {
		f.publicar(t, f.bovino(t, f.seller, "Holstein"), precio)
	}

	lo, hi := decimal.NewFromInt(1000000), decimal.NewFromInt(5000000)
	out, err := f.uc.Search(ctx, dto.SearchRequest{PrecioMin: &lo, PrecioMax: &hi, PorPagina: 2, OrdenarPor: "precio", Direccion: "asc"})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Paginacion.Total)
	assert.Equal(t, 2, out.Paginacion.TotalPaginas)
	assert.Equal(t, 1, out.Paginacion.Pagina)
	require.Len(t, out.Publicaciones, 2)
	assert.True(t, out.Publicaciones[0].Precio.Equal(lo))
	for _, p := range out.Publicaciones {
		assert.True(t, p.Precio.GreaterThanOrEqual(lo) && p.Precio.LessThanOrEqual(hi))
	}

	out, err = f.uc.Search(ctx, dto.SearchRequest{PrecioMin: &lo, PrecioMax: &hi, PorPagina: 2, Pagina: 2, OrdenarPor: "precio", Direccion: "asc"})
	require.NoError(t, err)
	require.Len(t, out.Publicaciones, 1)
	assert.True(t, out.Publicaciones[0].Precio.Equal(hi))
}

func TestSearch_PorDefecto(t *testing.T) {
	f := newFixture(t)
	f.publicar(t, f.bovino(t, f.seller, "Holstein"), 1000000)
	f.publicar(t, f.bovino(t, f.seller, "Normando"), 2000000)

	vacio := "  "
	out, err := f.uc.Search(context.Background(), dto.SearchRequest{Raza: &vacio, OrdenarPor: "desconocido"})
	require.NoError(t, err)
	assert.Equal(t, entity.PorPaginaDefault, out.Paginacion.PorPagina)
	require.Len(t, out.Publicaciones, 2)
	assert.Equal(t, "Normando", out.Publicaciones[0].Bovino.Raza, "fecha de creación descendente")
}

func TestMyListings_IncluyeInactivas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 1000000)
	f.publicar(t, f.bovino(t, f.seller, "Normando"), 2000000)
	_, err := f.uc.Toggle(ctx, a.ID, f.seller)
	require.NoError(t, err)

	list, err := f.uc.MyListings(ctx, f.seller)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Normando", list[0].Bovino.Raza)
	assert.False(t, list[1].Activo)
}

func TestPublish_FallaNoRompeLaOperacion(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("broker caído")

	out := f.publicar(t, f.bovino(t, f.seller, "Holstein"), 1000000)
	assert.NotZero(t, out.ID)
	assert.Len(t, f.events.types(), 1)
}

package marketplace

import (
	"context"
	"strings"
	"time"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
)

// MarketplaceUseCase publicaciones de venta. Un bovino tiene a lo sumo una publicación activa;
// solo el vendedor puede modificar, activar/desactivar o eliminar la suya.
type MarketplaceUseCase struct {
	publicaciones repository.PublicacionRepository
	bovinos       repository.BovinoRepository
	tx            repository.TxRunner
	events        ports.EventPublisher
	log           *logger.Logger
	now           func() time.Time
}

// NewMarketplaceUseCase construye el caso de uso. log puede ser nil.
func NewMarketplaceUseCase(
	publicaciones repository.PublicacionRepository,
	bovinos repository.BovinoRepository,
	tx repository.TxRunner,
	events ports.EventPublisher,
	log *logger.Logger,
) *MarketplaceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MarketplaceUseCase{
		publicaciones: publicaciones,
		bovinos:       bovinos,
		tx:            tx,
		events:        events,
		log:           log.Named("marketplace"),
		now:           time.Now,
	}
}

// Search búsqueda pública paginada. Solo publicaciones activas.
func (uc *MarketplaceUseCase) Search(ctx context.Context, in dto.SearchRequest) (*dto.SearchResponse, error) {
	f := entity.FiltrosMarketplace{
		Raza:         nonEmpty(in.Raza),
		Sexo:         nonEmpty(in.Sexo),
		EdadMin:      in.EdadMin,
		EdadMax:      in.EdadMax,
		PesoMin:      in.PesoMin,
		PesoMax:      in.PesoMax,
		PrecioMin:    in.PrecioMin,
		PrecioMax:    in.PrecioMax,
		Municipio:    nonEmpty(in.Municipio),
		Departamento: nonEmpty(in.Departamento),
		VacunasAlDia: in.VacunasAlDia,
		Busqueda:     nonEmpty(in.Busqueda),
		OrdenarPor:   strings.ToLower(strings.TrimSpace(in.OrdenarPor)),
		Ascendente:   strings.EqualFold(strings.TrimSpace(in.Direccion), "asc"),
		Pagina:       in.Pagina,
		PorPagina:    in.PorPagina,
	}
	if f.OrdenarPor == "" {
		f.OrdenarPor = entity.OrdenFechaCreacion
	}
	f.Normalize()

	list, total, err := uc.publicaciones.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.SearchResponse{
		Publicaciones: toResponses(list),
		Paginacion: dto.PaginacionResponse{
			Pagina:       f.Pagina,
			PorPagina:    f.PorPagina,
			Total:        total,
			TotalPaginas: entity.TotalPaginas(total, f.PorPagina),
		},
	}
	return out, nil
}

// GetOne publicación con bovino y vendedor, activa o no.
func (uc *MarketplaceUseCase) GetOne(ctx context.Context, id int64) (*dto.PublicacionResponse, error) {
	d, err := uc.publicaciones.FindDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrPublicacionNotFound
	}
	out := ToPublicacionResponse(d)
	return &out, nil
}

// Create publica un bovino propio y activo que no tenga otra publicación activa.
func (uc *MarketplaceUseCase) Create(ctx context.Context, sellerID int64, in dto.CreatePublicacionRequest) (*dto.PublicacionResponse, error) {
	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" || !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	pub := &entity.Publicacion{
		BovinoID:    in.BovinoID,
		VendedorID:  sellerID,
		Titulo:      titulo,
		Descripcion: optional(in.Descripcion),
		Precio:      in.Precio,
		Activo:      true,
	}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.bovinos.FindOwned(ctx, in.BovinoID, sellerID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrBovinoNotOwned
		}
		active, err := uc.publicaciones.HasActiveForBovino(ctx, in.BovinoID, 0)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrAlreadyListed
		}
		return uc.publicaciones.Create(ctx, pub)
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.EventPublicacionCreada, pub)
	return uc.reload(ctx, pub.ID, sellerID)
}

// Update actualización parcial (título, descripción, precio, activo) de una publicación propia.
func (uc *MarketplaceUseCase) Update(ctx context.Context, id, sellerID int64, in dto.UpdatePublicacionRequest) (*dto.PublicacionResponse, error) {
	patch := entity.PublicacionPatch{
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Activo:      in.Activo,
	}
	if in.Titulo != nil {
		titulo := strings.TrimSpace(*in.Titulo)
		if titulo == "" {
			return nil, domain.ErrInvalidInput
		}
		patch.Titulo = &titulo
	}
	var before entity.Publicacion
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		cur, err := uc.mutable(ctx, id, sellerID)
		if err != nil {
			return err
		}
		before = cur.Publicacion
		if patch.IsEmpty() {
			return domain.ErrNoFieldsToUpdate
		}
		if patch.Precio != nil && !patch.Precio.IsPositive() {
			return domain.ErrInvalidInput
		}
		if patch.Activates() && !cur.Activo {
			if err := uc.checkActivable(ctx, &cur.Publicacion); err != nil {
				return err
			}
		}
		return uc.publicaciones.Update(ctx, id, sellerID, patch)
	})
	if err != nil {
		return nil, err
	}

	after := before
	patch.Apply(&after)
	evt := ports.EventPublicacionActualizada
	if after.Activo != before.Activo {
		evt = ports.EventPublicacionEstadoCambiado
	}
	uc.publish(ctx, evt, &after)
	return uc.reload(ctx, id, sellerID)
}

// Toggle invierte el estado activo de una publicación propia.
func (uc *MarketplaceUseCase) Toggle(ctx context.Context, id, sellerID int64) (*dto.PublicacionResponse, error) {
	var after entity.Publicacion
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		cur, err := uc.mutable(ctx, id, sellerID)
		if err != nil {
			return err
		}
		next := !cur.Activo
		if next {
			if err := uc.checkActivable(ctx, &cur.Publicacion); err != nil {
				return err
			}
		}
		after = cur.Publicacion
		after.Activo = next
		return uc.publicaciones.Update(ctx, id, sellerID, entity.PublicacionPatch{Activo: &next})
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.EventPublicacionEstadoCambiado, &after)
	return uc.reload(ctx, id, sellerID)
}

// Delete borra físicamente la publicación propia.
func (uc *MarketplaceUseCase) Delete(ctx context.Context, id, sellerID int64) error {
	cur, err := uc.mutable(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if err := uc.publicaciones.Delete(ctx, id, sellerID); err != nil {
		return err
	}
	uc.publish(ctx, ports.EventPublicacionEliminada, &cur.Publicacion)
	return nil
}

// MyListings todas las publicaciones del vendedor (activas o no), más recientes primero.
func (uc *MarketplaceUseCase) MyListings(ctx context.Context, sellerID int64) ([]dto.PublicacionResponse, error) {
	list, err := uc.publicaciones.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

func (uc *MarketplaceUseCase) mutable(ctx context.Context, id, sellerID int64) (*entity.PublicacionDetalle, error) {
	d, err := uc.publicaciones.FindOwned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrPublicacionNotFound
	}
	return d, nil
}

// checkActivable reactivar exige que el bovino siga activo y sin otra publicación activa.
func (uc *MarketplaceUseCase) checkActivable(ctx context.Context, p *entity.Publicacion) error {
	b, err := uc.bovinos.FindOwned(ctx, p.BovinoID, p.VendedorID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBovinoNotOwned
	}
	active, err := uc.publicaciones.HasActiveForBovino(ctx, p.BovinoID, p.ID)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrAlreadyListed
	}
	return nil
}

func (uc *MarketplaceUseCase) reload(ctx context.Context, id, sellerID int64) (*dto.PublicacionResponse, error) {
	d, err := uc.mutable(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	out := ToPublicacionResponse(d)
	return &out, nil
}

// publish notifica el cambio; si el broker falla se registra y la operación sigue siendo exitosa.
func (uc *MarketplaceUseCase) publish(ctx context.Context, kind string, p *entity.Publicacion) {
	if uc.events == nil {
		return
	}
	evt := ports.ListingEvent{
		Type:          kind,
		PublicacionID: p.ID,
		BovinoID:      p.BovinoID,
		VendedorID:    p.VendedorID,
		Precio:        p.Precio,
		Activo:        p.Activo,
		OccurredAt:    uc.now().UTC(),
	}
	if err := uc.events.Publish(ctx, evt); err != nil {
		uc.log.Warn().Err(err).Str("event", kind).Int64("publicacion_id", p.ID).Msg("no se pudo publicar el evento")
	}
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func optional(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

func toResponses(list []*entity.PublicacionDetalle) []dto.PublicacionResponse {
	out := make([]dto.PublicacionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToPublicacionResponse(d))
	}
	return out
}

// ToPublicacionResponse mapea el detalle a la salida con bovino y vendedor anidados.
func ToPublicacionResponse(d *entity.PublicacionDetalle) dto.PublicacionResponse {
	b, v := d.Bovino, d.Vendedor
	return dto.PublicacionResponse{
		ID:            d.ID,
		VendedorID:    d.VendedorID,
		BovinoID:      d.BovinoID,
		Titulo:        d.Titulo,
		Descripcion:   d.Descripcion,
		Precio:        d.Precio,
		FechaCreacion: d.FechaCreacion,
		Activo:        d.Activo,
		Bovino: dto.BovinoResumen{
			ID:                    d.BovinoID,
			Nombre:                b.Nombre,
			Raza:                  b.Raza,
			Sexo:                  b.Sexo,
			Edad:                  b.Edad,
			Peso:                  b.Peso,
			Descripcion:           b.Descripcion,
			FotoPrincipal:         b.FotoPrincipal,
			UbicacionMunicipio:    b.UbicacionMunicipio,
			UbicacionDepartamento: b.UbicacionDepartamento,
			EstadoSanitario:       b.EstadoSanitario,
		},
		Vendedor: dto.VendedorResumen{
			ID:           d.VendedorID,
			Nombre:       v.Nombre,
			Apellidos:    v.Apellidos,
			Email:        v.Email,
			Telefono:     v.Telefono,
			Municipio:    v.Municipio,
			Departamento: v.Departamento,
			FotoPerfil:   v.FotoPerfil,
		},
	}
}

package bovino

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
	"github.com/ganadoboy/ganadoboy-api/pkg/textnorm"
)

const fechaLayout = "2006-01-02"

// PhotoUpload archivo recibido para un bovino. Filename solo se usa para la extensión.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Deps dependencias del caso de uso de bovinos.
type Deps struct {
	Bovinos       repository.BovinoRepository
	Publicaciones repository.PublicacionRepository
	Usuarios      repository.UsuarioRepository
	Tx            repository.TxRunner
	Photos        ports.PhotoStorage
	Ficha         ports.FichaGenerator
	// NewKey genera la clave de almacenamiento a partir de la extensión ("jpg").
	NewKey func(ext string) string
	Log    *logger.Logger
}

// BovinoUseCase registro de bovinos del propietario autenticado: ficha, fotos e historiales.
// Todas las operaciones filtran por propietario; un bovino ajeno se trata igual que uno inexistente.
type BovinoUseCase struct {
	bovinos       repository.BovinoRepository
	publicaciones repository.PublicacionRepository
	usuarios      repository.UsuarioRepository
	tx            repository.TxRunner
	photos        ports.PhotoStorage
	ficha         ports.FichaGenerator
	newKey        func(ext string) string
	log           *logger.Logger
	now           func() time.Time
}

// NewBovinoUseCase construye el caso de uso.
func NewBovinoUseCase(d Deps) *BovinoUseCase {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &BovinoUseCase{
		bovinos:       d.Bovinos,
		publicaciones: d.Publicaciones,
		usuarios:      d.Usuarios,
		tx:            d.Tx,
		photos:        d.Photos,
		ficha:         d.Ficha,
		newKey:        d.NewKey,
		log:           log.Named("bovino"),
		now:           time.Now,
	}
}

// List bovinos activos del propietario, más recientes primero.
func (uc *BovinoUseCase) List(ctx context.Context, ownerID int64) (*dto.BovinoListResponse, error) {
	list, err := uc.bovinos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := &dto.BovinoListResponse{Bovinos: make([]dto.BovinoResponse, 0, len(list))}
	for _, b := range list {
		out.Bovinos = append(out.Bovinos, ToBovinoResponse(b))
	}
	return out, nil
}

// Get bovino del propietario o ErrBovinoNotFound.
func (uc *BovinoUseCase) Get(ctx context.Context, id, ownerID int64) (*dto.BovinoResponse, error) {
	b, err := uc.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	out := ToBovinoResponse(b)
	return &out, nil
}

// Create registra el bovino y devuelve lo persistido.
func (uc *BovinoUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateBovinoRequest) (*dto.BovinoResponse, error) {
	raza := strings.TrimSpace(in.Raza)
	if raza == "" || !entity.ValidSexo(in.Sexo) {
		return nil, domain.ErrInvalidInput
	}
	b := &entity.Bovino{
		PropietarioID:         ownerID,
		Nombre:                in.Nombre,
		CodigoInterno:         in.CodigoInterno,
		Raza:                  raza,
		Sexo:                  in.Sexo,
		Edad:                  in.Edad,
		Peso:                  in.Peso,
		UbicacionMunicipio:    in.UbicacionMunicipio,
		UbicacionDepartamento: strings.TrimSpace(in.UbicacionDepartamento),
		EstadoSanitario:       in.EstadoSanitario,
		ValorEstimado:         in.ValorEstimado,
		Descripcion:           in.Descripcion,
	}
	if b.UbicacionDepartamento == "" {
		b.UbicacionDepartamento = entity.DepartamentoDefault
	}
	if err := uc.bovinos.Create(ctx, b); err != nil {
		return nil, err
	}
	return uc.Get(ctx, b.ID, ownerID)
}

// Update aplica solo los campos presentes y devuelve el bovino releído.
func (uc *BovinoUseCase) Update(ctx context.Context, id, ownerID int64, in dto.UpdateBovinoRequest) (*dto.BovinoResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	patch := toPatch(in)
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if patch.Sexo != nil && !entity.ValidSexo(*patch.Sexo) {
		return nil, domain.ErrInvalidInput
	}
	if patch.Raza != nil && *patch.Raza == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.bovinos.Update(ctx, id, ownerID, patch); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id, ownerID)
}

// Delete borrado lógico; falla si el bovino tiene una publicación activa.
func (uc *BovinoUseCase) Delete(ctx context.Context, id, ownerID int64) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.owned(ctx, id, ownerID); err != nil {
			return err
		}
		active, err := uc.publicaciones.HasActiveForBovino(ctx, id, 0)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrHasActiveListings
		}
		return uc.bovinos.SoftDelete(ctx, id, ownerID)
	})
}

// AddPhotos guarda los archivos y registra una foto por archivo. Si el bovino no tenía
// foto principal, la primera del lote pasa a serlo.
func (uc *BovinoUseCase) AddPhotos(ctx context.Context, id, ownerID int64, files []PhotoUpload) (*dto.FotosResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.ErrSinFotos
	}
	keys, err := uc.store(ctx, files)
	if err != nil {
		return nil, err
	}

	var fotos []*entity.BovinoFoto
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.owned(ctx, id, ownerID)
		if err != nil {
			return err
		}
		fotos, err = uc.bovinos.AddFotos(ctx, id, keys, b.FotoPrincipal == nil)
		return err
	})
	if err != nil {
		uc.discard(keys)
		return nil, err
	}

	out := &dto.FotosResponse{Message: "Fotos subidas correctamente", Fotos: make([]dto.FotoResponse, 0, len(fotos))}
	for _, f := range fotos {
		out.Fotos = append(out.Fotos, toFotoResponse(f))
	}
	return out, nil
}

// SetPrincipalPhoto guarda el archivo como nueva foto principal del bovino.
func (uc *BovinoUseCase) SetPrincipalPhoto(ctx context.Context, id, ownerID int64, file PhotoUpload) (*dto.FotoPrincipalResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	keys, err := uc.store(ctx, []PhotoUpload{file})
	if err != nil {
		return nil, err
	}
	foto, err := uc.bovinos.AddFotoPrincipal(ctx, id, keys[0])
	if err != nil {
		uc.discard(keys)
		return nil, err
	}
	return &dto.FotoPrincipalResponse{
		Message: "Foto subida y establecida como principal",
		Foto:    toFotoResponse(foto),
	}, nil
}

// ListPhotos fotos del bovino, la principal primero.
func (uc *BovinoUseCase) ListPhotos(ctx context.Context, id, ownerID int64) (*dto.FotosResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	fotos, err := uc.bovinos.ListFotos(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.FotosResponse{Fotos: make([]dto.FotoResponse, 0, len(fotos))}
	for _, f := range fotos {
		out.Fotos = append(out.Fotos, toFotoResponse(f))
	}
	return out, nil
}

// AddSanitaryRecord agrega una entrada al historial sanitario. El tipo admite tildes y mayúsculas.
func (uc *BovinoUseCase) AddSanitaryRecord(ctx context.Context, id, ownerID int64, in dto.CreateRegistroSanitarioRequest) (*dto.RegistroSanitarioResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	tipo := textnorm.Fold(in.TipoRegistro)
	if !entity.ValidTipoSanitario(tipo) {
		return nil, domain.ErrTipoSanitario
	}
	reg := &entity.RegistroSanitario{
		BovinoID:      id,
		Fecha:         fecha,
		TipoRegistro:  tipo,
		Producto:      in.Producto,
		Dosis:         in.Dosis,
		Veterinario:   in.Veterinario,
		Costo:         in.Costo,
		Observaciones: in.Observaciones,
	}
	if err := uc.bovinos.AddRegistroSanitario(ctx, reg); err != nil {
		return nil, err
	}
	out := toSanitarioResponse(reg)
	return &out, nil
}

// GetSanitaryHistory historial sanitario, fecha descendente.
func (uc *BovinoUseCase) GetSanitaryHistory(ctx context.Context, id, ownerID int64) (*dto.HistorialSanitarioResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	regs, err := uc.bovinos.ListRegistrosSanitarios(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.HistorialSanitarioResponse{Historial: make([]dto.RegistroSanitarioResponse, 0, len(regs))}
	for _, r := range regs {
		out.Historial = append(out.Historial, toSanitarioResponse(r))
	}
	return out, nil
}

// AddReproductiveRecord agrega un evento al historial reproductivo.
func (uc *BovinoUseCase) AddReproductiveRecord(ctx context.Context, id, ownerID int64, in dto.CreateRegistroReproductivoRequest) (*dto.RegistroReproductivoResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	evento := textnorm.Fold(in.TipoEvento)
	if !entity.ValidEventoReproductivo(evento) {
		return nil, domain.ErrTipoEvento
	}
	reg := &entity.RegistroReproductivo{
		BovinoID:      id,
		Fecha:         fecha,
		TipoEvento:    evento,
		Detalles:      in.Detalles,
		Resultado:     in.Resultado,
		Observaciones: in.Observaciones,
	}
	if err := uc.bovinos.AddRegistroReproductivo(ctx, reg); err != nil {
		return nil, err
	}
	out := toReproductivoResponse(reg)
	return &out, nil
}

// GetReproductiveHistory historial reproductivo, fecha descendente.
func (uc *BovinoUseCase) GetReproductiveHistory(ctx context.Context, id, ownerID int64) (*dto.HistorialReproductivoResponse, error) {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	regs, err := uc.bovinos.ListRegistrosReproductivos(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.HistorialReproductivoResponse{Historial: make([]dto.RegistroReproductivoResponse, 0, len(regs))}
	for _, r := range regs {
		out.Historial = append(out.Historial, toReproductivoResponse(r))
	}
	return out, nil
}

// Ficha PDF con los datos del bovino, su propietario y ambos historiales.
// Devuelve también el nombre sugerido del archivo.
func (uc *BovinoUseCase) Ficha(ctx context.Context, id, ownerID int64) ([]byte, string, error) {
	b, err := uc.owned(ctx, id, ownerID)
	if err != nil {
		return nil, "", err
	}
	owner, err := uc.usuarios.FindByID(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	sanitarios, err := uc.bovinos.ListRegistrosSanitarios(ctx, id)
	if err != nil {
		return nil, "", err
	}
	reproductivos, err := uc.bovinos.ListRegistrosReproductivos(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.ficha.GenerateFicha(ctx, ports.FichaData{
		Bovino:        b,
		Propietario:   owner,
		Sanitarios:    sanitarios,
		Reproductivos: reproductivos,
		GeneradaEn:    uc.now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("bovino: ficha %d: %w", id, err)
	}
	return pdf, fmt.Sprintf("ficha-bovino-%d.pdf", id), nil
}

func (uc *BovinoUseCase) owned(ctx context.Context, id, ownerID int64) (*entity.Bovino, error) {
	b, err := uc.bovinos.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBovinoNotFound
	}
	return b, nil
}

// store guarda los archivos en orden; si uno falla borra los ya guardados.
func (uc *BovinoUseCase) store(ctx context.Context, files []PhotoUpload) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, f := range files {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(f.Filename)), ".")
		key := uc.newKey(ext)
		if err := uc.photos.Save(ctx, key, f.Body, f.Size, f.ContentType); err != nil {
			uc.discard(keys)
			return nil, fmt.Errorf("bovino: guardar foto: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// discard borra archivos que quedaron sin fila en la base de datos.
func (uc *BovinoUseCase) discard(keys []string) {
	for _, k := range keys {
		if err := uc.photos.Delete(context.Background(), k); err != nil {
			uc.log.Warn().Err(err).Str("key", k).Msg("no se pudo borrar foto huérfana")
		}
	}
}

func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse(fechaLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.ErrFechaInvalida
	}
	return t, nil
}

func toPatch(in dto.UpdateBovinoRequest) entity.BovinoPatch {
	p := entity.BovinoPatch{
		Nombre:                in.Nombre,
		CodigoInterno:         in.CodigoInterno,
		Sexo:                  in.Sexo,
		Edad:                  in.Edad,
		Peso:                  in.Peso,
		UbicacionMunicipio:    in.UbicacionMunicipio,
		UbicacionDepartamento: in.UbicacionDepartamento,
		EstadoSanitario:       in.EstadoSanitario,
		ValorEstimado:         in.ValorEstimado,
		Descripcion:           in.Descripcion,
	}
	if in.Raza != nil {
		raza := strings.TrimSpace(*in.Raza)
		p.Raza = &raza
	}
	return p
}

// ToBovinoResponse mapea la entidad a su salida.
func ToBovinoResponse(b *entity.Bovino) dto.BovinoResponse {
	return dto.BovinoResponse{
		ID:                    b.ID,
		PropietarioID:         b.PropietarioID,
		Nombre:                b.Nombre,
		CodigoInterno:         b.CodigoInterno,
		Raza:                  b.Raza,
		Sexo:                  b.Sexo,
		Edad:                  b.Edad,
		Peso:                  b.Peso,
		UbicacionMunicipio:    b.UbicacionMunicipio,
		UbicacionDepartamento: b.UbicacionDepartamento,
		EstadoSanitario:       b.EstadoSanitario,
		ValorEstimado:         b.ValorEstimado,
		FotoPrincipal:         b.FotoPrincipal,
		Descripcion:           b.Descripcion,
		Activo:                b.Activo,
		RegistroFecha:         b.RegistroFecha,
	}
}

func toFotoResponse(f *entity.BovinoFoto) dto.FotoResponse {
	return dto.FotoResponse{
		ID:          f.ID,
		BovinoID:    f.BovinoID,
		Ruta:        f.Ruta,
		EsPrincipal: f.EsPrincipal,
		FechaSubida: f.FechaSubida,
	}
}

func toSanitarioResponse(r *entity.RegistroSanitario) dto.RegistroSanitarioResponse {
	return dto.RegistroSanitarioResponse{
		ID:            r.ID,
		BovinoID:      r.BovinoID,
		Fecha:         r.Fecha.Format(fechaLayout),
		TipoRegistro:  r.TipoRegistro,
		Producto:      r.Producto,
		Dosis:         r.Dosis,
		Veterinario:   r.Veterinario,
		Costo:         r.Costo,
		Observaciones: r.Observaciones,
		CreadoEn:      r.CreadoEn,
	}
}

func toReproductivoResponse(r *entity.RegistroReproductivo) dto.RegistroReproductivoResponse {
	return dto.RegistroReproductivoResponse{
		ID:            r.ID,
		BovinoID:      r.BovinoID,
		Fecha:         r.Fecha.Format(fechaLayout),
		TipoEvento:    r.TipoEvento,
		Detalles:      r.Detalles,
		Resultado:     r.Resultado,
		Observaciones: r.Observaciones,
		CreadoEn:      r.CreadoEn,
	}
}

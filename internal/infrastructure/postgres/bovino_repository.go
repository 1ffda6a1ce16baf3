package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
)

var _ repository.BovinoRepository = (*BovinoRepo)(nil)

const bovinoColumns = `id, propietario_id, nombre, codigo_interno, raza, sexo, edad, peso, ubicacion_municipio,
	ubicacion_departamento, estado_sanitario, valor_estimado, foto_principal, descripcion, activo, registro_fecha`

// BovinoRepo implementación del puerto BovinoRepository sobre PostgreSQL.
// Las escrituras de fotos corren dentro de una transacción (tx).
type BovinoRepo struct {
	q  Querier
	tx repository.TxRunner
}

// NewBovinoRepository construye el adaptador. tx abre las transacciones de fotos.
func NewBovinoRepository(q Querier, tx repository.TxRunner) *BovinoRepo {
	return &BovinoRepo{q: q, tx: tx}
}

func scanBovino(row pgx.Row) (*entity.Bovino, error) {
	var b entity.Bovino
	err := row.Scan(
		&b.ID, &b.PropietarioID, &b.Nombre, &b.CodigoInterno, &b.Raza, &b.Sexo, &b.Edad, &b.Peso,
		&b.UbicacionMunicipio, &b.UbicacionDepartamento, &b.EstadoSanitario, &b.ValorEstimado,
		&b.FotoPrincipal, &b.Descripcion, &b.Activo, &b.RegistroFecha,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner bovinos activos del propietario, más recientes primero.
func (r *BovinoRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Bovino, error) {
	query := `SELECT ` + bovinoColumns + ` FROM bovinos
		WHERE propietario_id = $1 AND activo ORDER BY registro_fecha DESC, id DESC`
	rows, err := conn(ctx, r.q).Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bovinos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Bovino, 0)
	for rows.Next() {
		b, err := scanBovino(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bovino: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// FindOwned bovino activo del propietario.
func (r *BovinoRepo) FindOwned(ctx context.Context, id, ownerID int64) (*entity.Bovino, error) {
	query := `SELECT ` + bovinoColumns + ` FROM bovinos WHERE id = $1 AND propietario_id = $2 AND activo`
	b, err := scanBovino(conn(ctx, r.q).QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bovino: %w", err)
	}
	return b, nil
}

// Create persiste el bovino y lo recarga (defaults de la base incluidos).
func (r *BovinoRepo) Create(ctx context.Context, b *entity.Bovino) error {
	query := `
		INSERT INTO bovinos (propietario_id, nombre, codigo_interno, raza, sexo, edad, peso, ubicacion_municipio,
			ubicacion_departamento, estado_sanitario, valor_estimado, foto_principal, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + bovinoColumns
	created, err := scanBovino(conn(ctx, r.q).QueryRow(ctx, query,
		b.PropietarioID, b.Nombre, b.CodigoInterno, b.Raza, b.Sexo, b.Edad, b.Peso, b.UbicacionMunicipio,
		b.UbicacionDepartamento, b.EstadoSanitario, b.ValorEstimado, b.FotoPrincipal, b.Descripcion,
	))
	if err != nil {
		return fmt.Errorf("insert bovino: %w", err)
	}
	*b = *created
	return nil
}

// Update escribe solo los campos presentes del patch.
func (r *BovinoRepo) Update(ctx context.Context, id, ownerID int64, patch entity.BovinoPatch) error {
	query, args, err := buildUpdate("bovinos", bovinoSets(patch), sq.Eq{"id": id, "propietario_id": ownerID, "activo": true})
	if err != nil {
		return err
	}
	tag, err := conn(ctx, r.q).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update bovino: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBovinoNotFound
	}
	return nil
}

// SoftDelete marca el bovino como inactivo.
func (r *BovinoRepo) SoftDelete(ctx context.Context, id, ownerID int64) error {
	tag, err := conn(ctx, r.q).Exec(ctx,
		`UPDATE bovinos SET activo = FALSE WHERE id = $1 AND propietario_id = $2 AND activo`, id, ownerID)
	if err != nil {
		return fmt.Errorf("soft delete bovino: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBovinoNotFound
	}
	return nil
}

func (r *BovinoRepo) insertFoto(ctx context.Context, bovinoID int64, ruta string, principal bool) (*entity.BovinoFoto, error) {
	f := entity.BovinoFoto{BovinoID: bovinoID, Ruta: ruta, EsPrincipal: principal}
	err := conn(ctx, r.q).QueryRow(ctx,
		`INSERT INTO bovino_fotos (bovino_id, ruta, es_principal) VALUES ($1, $2, $3) RETURNING id, fecha_subida`,
		bovinoID, ruta, principal,
	).Scan(&f.ID, &f.FechaSubida)
	if err != nil {
		return nil, fmt.Errorf("insert foto: %w", err)
	}
	return &f, nil
}

func (r *BovinoRepo) setFotoPrincipal(ctx context.Context, bovinoID int64, ruta string) error {
	if _, err := conn(ctx, r.q).Exec(ctx, `UPDATE bovinos SET foto_principal = $2 WHERE id = $1`, bovinoID, ruta); err != nil {
		return fmt.Errorf("update foto principal: %w", err)
	}
	return nil
}

// AddFotos inserta el lote; con setPrincipal la primera pasa a ser la principal del bovino.
func (r *BovinoRepo) AddFotos(ctx context.Context, bovinoID int64, rutas []string, setPrincipal bool) ([]*entity.BovinoFoto, error) {
	fotos := make([]*entity.BovinoFoto, 0, len(rutas))
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i, ruta := range rutas {
			principal := setPrincipal && i == 0
			f, err := r.insertFoto(ctx, bovinoID, ruta, principal)
			if err != nil {
				return err
			}
			fotos = append(fotos, f)
		}
		if setPrincipal && len(rutas) > 0 {
			return r.setFotoPrincipal(ctx, bovinoID, rutas[0])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fotos, nil
}

// AddFotoPrincipal reemplaza la foto principal por una nueva.
func (r *BovinoRepo) AddFotoPrincipal(ctx context.Context, bovinoID int64, ruta string) (*entity.BovinoFoto, error) {
	var foto *entity.BovinoFoto
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := conn(ctx, r.q).Exec(ctx,
			`UPDATE bovino_fotos SET es_principal = FALSE WHERE bovino_id = $1 AND es_principal`, bovinoID); err != nil {
			return fmt.Errorf("clear foto principal: %w", err)
		}
		f, err := r.insertFoto(ctx, bovinoID, ruta, true)
		if err != nil {
			return err
		}
		foto = f
		return r.setFotoPrincipal(ctx, bovinoID, ruta)
	})
	if err != nil {
		return nil, err
	}
	return foto, nil
}

// ListFotos principal primero y luego las más recientes.
func (r *BovinoRepo) ListFotos(ctx context.Context, bovinoID int64) ([]*entity.BovinoFoto, error) {
	rows, err := conn(ctx, r.q).Query(ctx, `
		SELECT id, bovino_id, ruta, es_principal, fecha_subida FROM bovino_fotos
		WHERE bovino_id = $1 ORDER BY es_principal DESC, fecha_subida DESC, id DESC`, bovinoID)
	if err != nil {
		return nil, fmt.Errorf("list fotos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.BovinoFoto, 0)
	for rows.Next() {
		var f entity.BovinoFoto
		if err := rows.Scan(&f.ID, &f.BovinoID, &f.Ruta, &f.EsPrincipal, &f.FechaSubida); err != nil {
			return nil, fmt.Errorf("scan foto: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// AddRegistroSanitario agrega una entrada al historial sanitario.
func (r *BovinoRepo) AddRegistroSanitario(ctx context.Context, s *entity.RegistroSanitario) error {
	err := conn(ctx, r.q).QueryRow(ctx, `
		INSERT INTO historial_sanitario (bovino_id, fecha, tipo_registro, producto, dosis, veterinario, costo, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, creado_en`,
		s.BovinoID, s.Fecha, s.TipoRegistro, s.Producto, s.Dosis, s.Veterinario, s.Costo, s.Observaciones,
	).Scan(&s.ID, &s.CreadoEn)
	if err != nil {
		return fmt.Errorf("insert registro sanitario: %w", err)
	}
	return nil
}

// ListRegistrosSanitarios historial sanitario por fecha descendente.
func (r *BovinoRepo) ListRegistrosSanitarios(ctx context.Context, bovinoID int64) ([]*entity.RegistroSanitario, error) {
	rows, err := conn(ctx, r.q).Query(ctx, `
		SELECT id, bovino_id, fecha, tipo_registro, producto, dosis, veterinario, costo, observaciones, creado_en
		FROM historial_sanitario WHERE bovino_id = $1 ORDER BY fecha DESC, id DESC`, bovinoID)
	if err != nil {
		return nil, fmt.Errorf("list historial sanitario: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.RegistroSanitario, 0)
	for rows.Next() {
		var s entity.RegistroSanitario
		if err := rows.Scan(&s.ID, &s.BovinoID, &s.Fecha, &s.TipoRegistro, &s.Producto, &s.Dosis,
			&s.Veterinario, &s.Costo, &s.Observaciones, &s.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan registro sanitario: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AddRegistroReproductivo agrega una entrada al historial reproductivo.
func (r *BovinoRepo) AddRegistroReproductivo(ctx context.Context, e *entity.RegistroReproductivo) error {
	err := conn(ctx, r.q).QueryRow(ctx, `
		INSERT INTO historial_reproductivo (bovino_id, fecha, tipo_evento, detalles, resultado, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, creado_en`,
		e.BovinoID, e.Fecha, e.TipoEvento, e.Detalles, e.Resultado, e.Observaciones,
	).Scan(&e.ID, &e.CreadoEn)
	if err != nil {
		return fmt.Errorf("insert registro reproductivo: %w", err)
	}
	return nil
}

// ListRegistrosReproductivos historial reproductivo por fecha descendente.
func (r *BovinoRepo) ListRegistrosReproductivos(ctx context.Context, bovinoID int64) ([]*entity.RegistroReproductivo, error) {
	rows, err := conn(ctx, r.q).Query(ctx, `
		SELECT id, bovino_id, fecha, tipo_evento, detalles, resultado, observaciones, creado_en
		FROM historial_reproductivo WHERE bovino_id = $1 ORDER BY fecha DESC, id DESC`, bovinoID)
	if err != nil {
		return nil, fmt.Errorf("list historial reproductivo: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.RegistroReproductivo, 0)
	for rows.Next() {
		var e entity.RegistroReproductivo
		if err := rows.Scan(&e.ID, &e.BovinoID, &e.Fecha, &e.TipoEvento, &e.Detalles, &e.Resultado,
			&e.Observaciones, &e.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan registro reproductivo: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

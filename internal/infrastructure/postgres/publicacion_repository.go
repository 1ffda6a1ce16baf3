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

var _ repository.PublicacionRepository = (*PublicacionRepo)(nil)

const activaPorBovinoConstraint = "ux_publicaciones_bovino_activa"

// PublicacionRepo implementación del puerto PublicacionRepository sobre PostgreSQL.
type PublicacionRepo struct {
	q Querier
}

// NewPublicacionRepository construye el adaptador de persistencia del marketplace.
func NewPublicacionRepository(q Querier) *PublicacionRepo {
	return &PublicacionRepo{q: q}
}

func scanDetalle(row pgx.Row) (*entity.PublicacionDetalle, error) {
	var d entity.PublicacionDetalle
	err := row.Scan(
		&d.ID, &d.BovinoID, &d.VendedorID, &d.Titulo, &d.Descripcion, &d.Precio, &d.Activo, &d.FechaCreacion,
		&d.Bovino.Nombre, &d.Bovino.Raza, &d.Bovino.Sexo, &d.Bovino.Edad, &d.Bovino.Peso, &d.Bovino.Descripcion,
		&d.Bovino.FotoPrincipal, &d.Bovino.UbicacionMunicipio, &d.Bovino.UbicacionDepartamento, &d.Bovino.EstadoSanitario,
		&d.Vendedor.Nombre, &d.Vendedor.Apellidos, &d.Vendedor.Email, &d.Vendedor.Telefono,
		&d.Vendedor.Municipio, &d.Vendedor.Departamento, &d.Vendedor.FotoPerfil,
	)
	if err != nil {
		return nil, err
	}
	d.Bovino.ID = d.BovinoID
	d.Bovino.PropietarioID = d.VendedorID
	d.Vendedor.ID = d.VendedorID
	return &d, nil
}

func (r *PublicacionRepo) queryDetalles(ctx context.Context, query string, args []any) ([]*entity.PublicacionDetalle, error) {
	rows, err := conn(ctx, r.q).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query publicaciones: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.PublicacionDetalle, 0)
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publicacion: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Search página de publicaciones activas que cumplen los filtros y el total sin paginar.
func (r *PublicacionRepo) Search(ctx context.Context, f entity.FiltrosMarketplace) ([]*entity.PublicacionDetalle, int, error) {
	q, err := buildSearch(f)
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := conn(ctx, r.q).QueryRow(ctx, q.countSQL, q.countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count publicaciones: %w", err)
	}
	list, err := r.queryDetalles(ctx, q.rowsSQL, q.rowsArgs)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindDetalle publicación, activa o no, con su bovino y vendedor.
func (r *PublicacionRepo) FindDetalle(ctx context.Context, id int64) (*entity.PublicacionDetalle, error) {
	query, args, err := detalleFrom(psql.Select(detalleColumns...)).
		Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get publicacion: %w", err)
	}
	d, err := scanDetalle(conn(ctx, r.q).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publicacion: %w", err)
	}
	return d, nil
}

// FindOwned publicación del vendedor, activa o no.
func (r *PublicacionRepo) FindOwned(ctx context.Context, id, vendedorID int64) (*entity.PublicacionDetalle, error) {
	query, args, err := detalleFrom(psql.Select(detalleColumns...)).
		Where(sq.Eq{"p.id": id, "p.vendedor_id": vendedorID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get publicacion propia: %w", err)
	}
	d, err := scanDetalle(conn(ctx, r.q).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publicacion propia: %w", err)
	}
	return d, nil
}

// HasActiveForBovino true si el bovino tiene una publicación activa distinta de excludeID.
func (r *PublicacionRepo) HasActiveForBovino(ctx context.Context, bovinoID, excludeID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.q).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM publicaciones WHERE bovino_id = $1 AND activo AND id <> $2)`,
		bovinoID, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("publicacion activa: %w", err)
	}
	return exists, nil
}

// Create inserta la publicación activa. El índice parcial rechaza una segunda activa del mismo bovino.
func (r *PublicacionRepo) Create(ctx context.Context, p *entity.Publicacion) error {
	err := conn(ctx, r.q).QueryRow(ctx, `
		INSERT INTO publicaciones (bovino_id, vendedor_id, titulo, descripcion, precio, activo)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, fecha_creacion`,
		p.BovinoID, p.VendedorID, p.Titulo, p.Descripcion, p.Precio, p.Activo,
	).Scan(&p.ID, &p.FechaCreacion)
	if err != nil {
		return mapPublicacionErr("insert publicacion", err)
	}
	return nil
}

// Update escribe solo los campos presentes del patch.
func (r *PublicacionRepo) Update(ctx context.Context, id, vendedorID int64, patch entity.PublicacionPatch) error {
	query, args, err := buildUpdate("publicaciones", publicacionSets(patch), sq.Eq{"id": id, "vendedor_id": vendedorID})
	if err != nil {
		return err
	}
	tag, err := conn(ctx, r.q).Exec(ctx, query, args...)
	if err != nil {
		return mapPublicacionErr("update publicacion", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPublicacionNotFound
	}
	return nil
}

// Delete borra físicamente la publicación.
func (r *PublicacionRepo) Delete(ctx context.Context, id, vendedorID int64) error {
	tag, err := conn(ctx, r.q).Exec(ctx, `DELETE FROM publicaciones WHERE id = $1 AND vendedor_id = $2`, id, vendedorID)
	if err != nil {
		return fmt.Errorf("delete publicacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPublicacionNotFound
	}
	return nil
}

// ListBySeller todas las publicaciones del vendedor, más recientes primero.
func (r *PublicacionRepo) ListBySeller(ctx context.Context, vendedorID int64) ([]*entity.PublicacionDetalle, error) {
	query, args, err := detalleFrom(psql.Select(detalleColumns...)).
		Where(sq.Eq{"p.vendedor_id": vendedorID}).
		OrderBy("p.fecha_creacion DESC", "p.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mis publicaciones: %w", err)
	}
	return r.queryDetalles(ctx, query, args)
}

func mapPublicacionErr(op string, err error) error {
	if isUniqueViolation(err) && constraintName(err) == activaPorBovinoConstraint {
		return domain.ErrAlreadyListed
	}
	return fmt.Errorf("%s: %w", op, err)
}

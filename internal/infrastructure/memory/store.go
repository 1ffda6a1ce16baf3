// Package memory implementa los repositorios en proceso (DB_DRIVER=memory y tests).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
)

// Store estado compartido de todos los repositorios en memoria, protegido por un único mutex.
type Store struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	seq   int64
	clock time.Time

	usuarios      map[int64]entity.User
	refreshTokens map[int64]string
	bovinos       map[int64]entity.Bovino
	fotos         map[int64][]entity.BovinoFoto
	sanitarios    map[int64][]entity.RegistroSanitario
	reproductivos map[int64][]entity.RegistroReproductivo
	publicaciones map[int64]entity.Publicacion

	departamentos []entity.Departamento
	municipios    []entity.Municipio
}

// NewStore crea un store vacío con el catálogo de Boyacá precargado.
func NewStore() *Store {
	return &Store{
		usuarios:      make(map[int64]entity.User),
		refreshTokens: make(map[int64]string),
		bovinos:       make(map[int64]entity.Bovino),
		fotos:         make(map[int64][]entity.BovinoFoto),
		sanitarios:    make(map[int64][]entity.RegistroSanitario),
		reproductivos: make(map[int64][]entity.RegistroReproductivo),
		publicaciones: make(map[int64]entity.Publicacion),
		departamentos: []entity.Departamento{{Codigo: "15", Nombre: "Boyacá"}},
		municipios: []entity.Municipio{
			{Codigo: "15001", Nombre: "Tunja", CodigoDepartamento: "15"},
			{Codigo: "15176", Nombre: "Chiquinquirá", CodigoDepartamento: "15"},
			{Codigo: "15238", Nombre: "Duitama", CodigoDepartamento: "15"},
			{Codigo: "15516", Nombre: "Paipa", CodigoDepartamento: "15"},
			{Codigo: "15759", Nombre: "Sogamoso", CodigoDepartamento: "15"},
		},
	}
}

// nextID y now requieren mu tomado en escritura.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// now es estrictamente creciente para que el orden por fecha sea determinista.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.clock) {
		t = s.clock.Add(time.Microsecond)
	}
	s.clock = t
	return t
}

// Usuarios repositorio de usuarios sobre el store.
func (s *Store) Usuarios() repository.UsuarioRepository { return (*usuarioRepo)(s) }

// Bovinos repositorio de bovinos sobre el store.
func (s *Store) Bovinos() repository.BovinoRepository { return (*bovinoRepo)(s) }

// Publicaciones repositorio del marketplace sobre el store.
func (s *Store) Publicaciones() repository.PublicacionRepository { return (*publicacionRepo)(s) }

// Ubicaciones catálogo DANE sobre el store.
func (s *Store) Ubicaciones() repository.UbicacionRepository { return (*ubicacionRepo)(s) }

// TxRunner serializa los bloques transaccionales entre sí.
func (s *Store) TxRunner() repository.TxRunner { return (*txRunner)(s) }

type txRunner Store

type txActiveKey struct{}

func (r *txRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txActiveKey{}) != nil {
		return fn(ctx)
	}
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(context.WithValue(ctx, txActiveKey{}, true))
}

package ports

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound la clave no existe en el almacenamiento.
var ErrObjectNotFound = errors.New("archivo no encontrado")

// PhotoStorage define el puerto de salida para guardar y servir fotos de bovinos.
// Las claves son relativas ("bovinos/<uuid>.jpg") y no deben salir del espacio del driver.
type PhotoStorage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open retorna el contenido y su content type; ErrObjectNotFound si no existe.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

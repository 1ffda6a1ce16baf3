// Package storage implementa ports.PhotoStorage en disco local y en S3/MinIO.
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// BovinoPrefix prefijo de las claves de fotos de bovinos.
const BovinoPrefix = "bovinos"

// NewKey clave única "bovinos/<uuid>.<ext>" para una foto nueva.
func NewKey(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return path.Join(BovinoPrefix, uuid.NewString()+"."+ext)
}

// cleanKey normaliza la clave y rechaza rutas absolutas o que salgan del directorio base.
func cleanKey(key string) (string, error) {
	k := path.Clean("/" + strings.ReplaceAll(key, `\`, "/"))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." || strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	return k, nil
}

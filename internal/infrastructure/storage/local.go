package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
)

var _ ports.PhotoStorage = (*Local)(nil)

// Local guarda las fotos bajo un directorio del disco (UPLOAD_DIR).
type Local struct {
	root string
}

// NewLocal crea el directorio base si no existe.
func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolver %s: %w", root, err)
	}
	if err := os.MkdirAll(filepath.Join(abs, BovinoPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", abs, err)
	}
	return &Local{root: abs}, nil
}

func (l *Local) path(key string) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, filepath.FromSlash(k)), nil
}

// Save escribe el archivo de forma atómica (temporal + rename).
func (l *Local) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("storage: crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("storage: mover %s: %w", key, err)
	}
	return nil
}

// Open abre el archivo; el content type se deduce de la extensión.
func (l *Local) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, "", ports.ErrObjectNotFound
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ports.ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("storage: abrir %s: %w", key, err)
	}
	if info, err := f.Stat(); err != nil || info.IsDir() {
		f.Close()
		return nil, "", ports.ErrObjectNotFound
	}
	return f, mime.TypeByExtension(filepath.Ext(p)), nil
}

// Delete borra el archivo; no falla si ya no existe.
func (l *Local) Delete(_ context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: borrar %s: %w", key, err)
	}
	return nil
}

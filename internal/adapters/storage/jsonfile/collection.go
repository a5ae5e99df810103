package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Collection persiste una colección completa como un array JSON con
// sangría (el formato de los archivos de datos heredados). LoadAll trata
// el archivo ausente como colección vacía; un archivo ilegible o corrupto
// es error, para no confundir "sin datos" con "lectura fallida".
//
// No hay locking ni versionado: dos secuencias load→mutate→replace
// concurrentes sobre el mismo archivo compiten y gana el último escritor.
// Es una limitación conocida del diseño heredado (ver DESIGN.md); lo
// único que se garantiza es que el reemplazo es atómico a nivel archivo.
type Collection[T any] struct {
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	b, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ReplaceAll escribe la colección entera. Usa archivo temporal + rename
// para que el snapshot anterior siga legible hasta que el nuevo esté
// completo; nunca se observa una escritura parcial.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}

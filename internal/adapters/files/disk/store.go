package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"petweb/internal/ports/files"
)

type store struct {
	dir string
	now func() time.Time
}

// NewStore crea el directorio destino si no existe.
func NewStore(dir string) (files.Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &store{dir: dir, now: time.Now}, nil
}

// Save escribe los bytes bajo <unix-millis>-<nombre original saneado>.
// El prefijo de timestamp hace que subidas concurrentes no colisionen
// salvo mismo nombre en el mismo milisegundo.
func (s *store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitize(originalName))

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing upload file: %w", err)
	}
	return name, nil
}

// sanitize se queda con el nombre base y descarta separadores de path
// para que el nombre original no pueda escapar del directorio.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	return name
}

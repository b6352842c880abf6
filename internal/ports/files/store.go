package files

import (
	"context"
	"io"
)

// Store persiste archivos subidos y devuelve el nombre bajo el cual
// quedaron guardados (ese nombre es lo que referencia cats.Cat.Image).
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

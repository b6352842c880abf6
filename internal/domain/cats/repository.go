package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c Cat) error
	GetByID(ctx context.Context, id string) (Cat, error)
	List(ctx context.Context) ([]Cat, error)
	Update(ctx context.Context, c Cat) error
	Delete(ctx context.Context, id string) (Cat, error)
}

package messages

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) error
	GetByID(ctx context.Context, id string) (Message, error)
	List(ctx context.Context) ([]Message, error)
	Update(ctx context.Context, m Message) error
	Delete(ctx context.Context, id string) (Message, error)
}

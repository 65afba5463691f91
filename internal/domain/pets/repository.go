package pets

import "context"

// Repository es el puerto de persistencia. Las implementaciones devuelven
// ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, f Filter) ([]Pet, error)
}

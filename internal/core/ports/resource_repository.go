package ports

import "context"

// ResourceRepository is the uniform data-access contract shared by all seven
// league resources. Each entity is backed by one instantiation parameterized
// with its table, key column and mutable column set.
//
// Update semantics are a per-entity policy of the implementation: most
// entities use full-replace (omitted field -> NULL), Coach uses a coalescing
// partial update (omitted field keeps its stored value).
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, id int64, e *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

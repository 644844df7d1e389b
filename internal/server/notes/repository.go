package notes

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, note *Note) (*Note, error)

	// GetOwned returns the note only when it belongs to ownerID. This is the
	// sole authorization mechanism for per-note operations.
	GetOwned(ctx context.Context, id, ownerID string) (*Note, error)

	// Update persists the current state of an already-fetched owned note.
	Update(ctx context.Context, note *Note) (*Note, error)

	Delete(ctx context.Context, id, ownerID string) error

	// ListByOwner returns all notes of ownerID, pinned notes first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Note, error)

	// SearchByOwner returns the owner's notes whose title or content contains
	// query as a case-insensitive substring.
	SearchByOwner(ctx context.Context, ownerID, query string) ([]*Note, error)
}

package db

import (
	"context"

	"github.com/akosarev/notekeeper/internal/server/notes"
	"github.com/akosarev/notekeeper/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Notes() notes.Repository
	Close(ctx context.Context) error
}

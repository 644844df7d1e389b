package db

import (
	"context"

	"github.com/akosarev/notekeeper/internal/server/notes"
	"github.com/akosarev/notekeeper/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users users.Repository
	notes notes.Repository
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func (m *InMemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		notes: notes.NewInMemoryRepository(),
	}
}

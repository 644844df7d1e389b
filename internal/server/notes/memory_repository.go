package notes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akosarev/notekeeper/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without a database. Listing preserves insertion order
// within the pinned and unpinned groups.
type InMemoryRepository struct {
	mu    sync.RWMutex
	notes map[string]*Note
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{notes: make(map[string]*Note)}
}

func (r *InMemoryRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = primitive.NewObjectID()
	if note.Tags == nil {
		note.Tags = []string{}
	}
	note.CreatedOn = time.Now().UTC()

	stored := *note
	r.notes[note.ID.Hex()] = &stored
	r.order = append(r.order, note.ID.Hex())

	return note, nil
}

func (r *InMemoryRepository) GetOwned(ctx context.Context, id, ownerID string) (*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != ownerID {
		return nil, common.ErrorNotFound
	}

	found := *n
	return &found, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, note *Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[note.ID.Hex()]
	if !ok || n.UserID != note.UserID {
		return nil, common.ErrorNotFound
	}

	stored := *note
	r.notes[note.ID.Hex()] = &stored

	return note, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != ownerID {
		return common.ErrorNotFound
	}

	delete(r.notes, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.owned(ownerID)

	// pinned first, insertion order within each group
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsPinned && !result[j].IsPinned
	})

	return result, nil
}

func (r *InMemoryRepository) SearchByOwner(ctx context.Context, ownerID, query string) ([]*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)

	result := []*Note{}
	for _, n := range r.owned(ownerID) {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			result = append(result, n)
		}
	}

	return result, nil
}

func (r *InMemoryRepository) owned(ownerID string) []*Note {
	result := []*Note{}
	for _, id := range r.order {
		n := r.notes[id]
		if n.UserID == ownerID {
			found := *n
			result = append(result, &found)
		}
	}
	return result
}

package notes

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, ownerID, title, content string, tags []string) (*Note, error) {

	if tags == nil {
		tags = []string{}
	}

	note := &Note{
		Title:   title,
		Content: content,
		Tags:    tags,
		UserID:  ownerID,
	}

	note, err := s.repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return note, nil
}

// Edit fetches the owned note, applies the patch and writes the result back.
// The fetch and the write are two store calls with no transaction around
// them, so concurrent edits of the same note can lose updates.
func (s *Service) Edit(ctx context.Context, noteID, ownerID string, patch Patch) (*Note, error) {

	note, err := s.repo.GetOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	patch.apply(note)

	return s.repo.Update(ctx, note)
}

// SetPinned sets the pinned flag to the supplied value unconditionally,
// unlike Edit which ignores a false flag.
func (s *Service) SetPinned(ctx context.Context, noteID, ownerID string, pinned bool) (*Note, error) {

	note, err := s.repo.GetOwned(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	note.IsPinned = pinned

	return s.repo.Update(ctx, note)
}

func (s *Service) Delete(ctx context.Context, noteID, ownerID string) error {

	if _, err := s.repo.GetOwned(ctx, noteID, ownerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, noteID, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Note, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Search(ctx context.Context, ownerID, query string) ([]*Note, error) {
	return s.repo.SearchByOwner(ctx, ownerID, query)
}

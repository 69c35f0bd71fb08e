package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateName is returned when a vocabulary already holds the name
// (case-insensitively).
var ErrDuplicateName = errors.New("an entry with this name already exists")

type ReferenceService interface {
	ListEntries(ctx context.Context, t Type) ([]Entry, error)
	CreateEntry(ctx context.Context, t Type, name string) (*Entry, error)
	UpdateEntry(ctx context.Context, t Type, id, name string) (*Entry, error)
	DeleteEntry(ctx context.Context, t Type, id string) error
}

type ReferenceServiceImpl struct {
	Repo ReferenceRepository
}

func NewReferenceService(repo ReferenceRepository) ReferenceService {
	return &ReferenceServiceImpl{Repo: repo}
}

func (s *ReferenceServiceImpl) ListEntries(ctx context.Context, t Type) ([]Entry, error) {
	return s.Repo.List(ctx, t)
}

func (s *ReferenceServiceImpl) CreateEntry(ctx context.Context, t Type, name string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	_, err := s.Repo.FindByName(ctx, t, name)
	switch {
	case err == nil:
		return nil, ErrDuplicateName
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("lookup %s: %w", t, err)
	}

	now := time.Now()
	entry := Entry{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, t, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ReferenceServiceImpl) UpdateEntry(ctx context.Context, t Type, id, name string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	existing, err := s.Repo.FindByName(ctx, t, name)
	if err == nil && existing.ID.Hex() != id {
		return nil, ErrDuplicateName
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("lookup %s: %w", t, err)
	}

	entry := Entry{
		Name:      name,
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.Update(ctx, t, id, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ReferenceServiceImpl) DeleteEntry(ctx context.Context, t Type, id string) error {
	return s.Repo.Delete(ctx, t, id)
}

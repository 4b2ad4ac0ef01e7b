package entry

import (
	"context"
	"strings"
	"time"

	"github.com/scode24/dsa-tracker-backend/internal/domain"
	"github.com/scode24/dsa-tracker-backend/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldQuestion   = "question"
	fieldTopic      = "topic"
	fieldNote       = "note"
	fieldComplexity = "complexity"
	fieldStatus     = "status"
)

type Service interface {
	Save(ctx context.Context, userID string, req domain.SaveEntryRequest) (*domain.LogEntry, error)
	// Update applies a partial update scoped to {entryID, userID}: an entry
	// owned by someone else behaves as if it did not exist.
	Update(ctx context.Context, userID, entryID string, req domain.UpdateEntryRequest) error
	Delete(ctx context.Context, userID, entryID string) error
	List(ctx context.Context, userID string) ([]domain.LogEntry, error)
	// Search returns the caller's entries whose question, topic, complexity,
	// note or status contains term, case-insensitively.
	Search(ctx context.Context, userID, term string) ([]domain.LogEntry, error)
}

type entryStore interface {
	Put(ctx context.Context, e *domain.LogEntry) error
	UpdateOwned(ctx context.Context, entryID, userID string, updates map[string]interface{}) error
	DeleteOwned(ctx context.Context, entryID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.LogEntry, error)
}

type service struct {
	repo entryStore
}

func NewService(repo entryStore) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, userID string, req domain.SaveEntryRequest) (*domain.LogEntry, error) {
	now := time.Now().UTC()
	e := &domain.LogEntry{
		EntryID:    id.New(),
		UserID:     userID,
		Question:   req.Question,
		Link:       req.Link,
		Topic:      req.Topic,
		Complexity: req.Complexity,
		Note:       req.Note,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, userID, entryID string, req domain.UpdateEntryRequest) error {
	// The web client sends "category" and "notes"; they land on the stored
	// topic and note attributes.
	updates := map[string]interface{}{}
	if req.Question != nil {
		updates[fieldQuestion] = *req.Question
	}
	if req.Category != nil {
		updates[fieldTopic] = *req.Category
	}
	if req.Notes != nil {
		updates[fieldNote] = *req.Notes
	}
	if req.Complexity != nil {
		updates[fieldComplexity] = *req.Complexity
	}
	if req.Status != nil {
		updates[fieldStatus] = *req.Status
	}
	return s.repo.UpdateOwned(ctx, entryID, userID, updates)
}

func (s *service) Delete(ctx context.Context, userID, entryID string) error {
	return s.repo.DeleteOwned(ctx, entryID, userID)
}

func (s *service) List(ctx context.Context, userID string) ([]domain.LogEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Search(ctx context.Context, userID, term string) ([]domain.LogEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	matched := make([]domain.LogEntry, 0, len(entries))
	for _, e := range entries {
		for _, field := range []string{e.Question, e.Topic, e.Complexity, e.Note, e.Status} {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}

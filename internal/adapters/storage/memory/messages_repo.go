package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petweb/internal/domain/messages"
)

type messageRepo struct {
	mu   sync.RWMutex
	byID map[string]messages.Message
}

func NewMessageRepo() messages.Repository {
	return &messageRepo{
		byID: make(map[string]messages.Message),
	}
}

func (r *messageRepo) Create(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("message already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.Message{}, messages.ErrNotFound
	}
	return m, nil
}

func (r *messageRepo) List(ctx context.Context) ([]messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messages.Message, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

func (r *messageRepo) Update(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return messages.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id string) (messages.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.Message{}, messages.ErrNotFound
	}
	delete(r.byID, id)
	return m, nil
}

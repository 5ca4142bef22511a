package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/yoockh/konselor/internal/models"
)

type fakeSessionRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []models.Session
	err    error
}

func (f *fakeSessionRepo) Create(_ context.Context, s *models.Session) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	f.rows = append(f.rows, *s)
	return nil
}

type fakeInteractionRepo struct {
	mu   sync.Mutex
	rows []models.Interaction
	err  error
}

func (f *fakeInteractionRepo) Insert(_ context.Context, i *models.Interaction) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *i)
	return nil
}

type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	out     json.RawMessage
	err     error
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

func (f *fakeProvider) Close() error { return nil }

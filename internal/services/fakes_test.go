package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"linebot-admin/internal/models"
)

type memoryStore struct {
	mu      sync.Mutex
	order   []uuid.UUID
	configs map[uuid.UUID]models.LineBotConfig
	failAll error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{configs: map[uuid.UUID]models.LineBotConfig{}}
}

func (m *memoryStore) Find(_ context.Context, id uuid.UUID) (*models.LineBotConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	cfg, ok := m.configs[id]
	if !ok {
		return nil, models.Err(models.ErrNotFound, nil, "line bot config %s", id)
	}
	return &cfg, nil
}

func (m *memoryStore) FindAll(_ context.Context) ([]models.LineBotConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	out := make([]models.LineBotConfig, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.configs[id])
	}
	return out, nil
}

func (m *memoryStore) FindEnabled(ctx context.Context) ([]models.LineBotConfig, error) {
	all, err := m.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.LineBotConfig
	for _, cfg := range all {
		if cfg.Enabled {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (m *memoryStore) Insert(_ context.Context, cfg *models.LineBotConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	cfg.ID = uuid.New()
	cfg.CreatedAt = time.Now()
	cfg.UpdatedAt = cfg.CreatedAt
	m.configs[cfg.ID] = *cfg
	m.order = append(m.order, cfg.ID)
	return nil
}

func (m *memoryStore) Update(_ context.Context, cfg *models.LineBotConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[cfg.ID]; !ok {
		return models.ErrNotFound
	}
	m.configs[cfg.ID] = *cfg
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.configs, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type sentMessage struct {
	AccessToken string
	RecipientID string
	Text        string
}

// fakeSender fails for every recipient listed in failFor.
type fakeSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]bool
}

func newFakeSender(failFor ...string) *fakeSender {
	f := &fakeSender{failFor: map[string]bool{}}
	for _, r := range failFor {
		f.failFor[r] = true
	}
	return f
}

func (f *fakeSender) SendMessage(_ context.Context, accessToken, recipientID, text string) models.SendResult {
	f.mu.Lock()
	f.sent = append(f.sent, sentMessage{accessToken, recipientID, text})
	f.mu.Unlock()
	if f.failFor[recipientID] {
		return models.SendFailed("send failed: status 401: invalid token")
	}
	return models.SendOK("message sent")
}

func (f *fakeSender) Sent() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

var errStoreDown = errors.New("connection refused")

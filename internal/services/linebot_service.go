package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"linebot-admin/internal/models"
)

const DefaultTestMessage = "This is a test notification message 🔔"

// LineBotConfigStore is the persistence the service needs. Find and Delete
// MUST return an error matching models.ErrNotFound for unknown ids.
type LineBotConfigStore interface {
	Find(ctx context.Context, id uuid.UUID) (*models.LineBotConfig, error)
	FindAll(ctx context.Context) ([]models.LineBotConfig, error)
	FindEnabled(ctx context.Context) ([]models.LineBotConfig, error)
	Insert(ctx context.Context, cfg *models.LineBotConfig) error
	Update(ctx context.Context, cfg *models.LineBotConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageSender delivers a single text message. Implementations report
// failures in the result instead of returning errors.
type MessageSender interface {
	SendMessage(ctx context.Context, accessToken, recipientID, text string) models.SendResult
}

// StructValidator checks tagged input structs.
type StructValidator interface {
	Validate(i interface{}) error
}

type LineBotService struct {
	store       LineBotConfigStore
	sender      MessageSender
	validator   StructValidator
	concurrency int
	now         func() time.Time
}

func NewLineBotService(store LineBotConfigStore, sender MessageSender, validator StructValidator, concurrency int) *LineBotService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &LineBotService{
		store:       store,
		sender:      sender,
		validator:   validator,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (s *LineBotService) ListAll(ctx context.Context) ([]models.LineBotConfig, error) {
	return s.store.FindAll(ctx)
}

func (s *LineBotService) GetByID(ctx context.Context, id uuid.UUID) (*models.LineBotConfig, error) {
	return s.store.Find(ctx, id)
}

func (s *LineBotService) ListEnabled(ctx context.Context) ([]models.LineBotConfig, error) {
	return s.store.FindEnabled(ctx)
}

func (s *LineBotService) Create(ctx context.Context, in models.LineBotConfigInput) (*models.LineBotConfig, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, models.Err(models.ErrValidation, err, "")
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	cfg := &models.LineBotConfig{
		Name:          in.Name,
		AccessToken:   in.AccessToken,
		ChannelSecret: in.ChannelSecret,
		RecipientID:   in.RecipientID,
		Enabled:       enabled,
		Description:   in.Description,
	}
	if err := s.store.Insert(ctx, cfg); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": cfg.ID, "name": cfg.Name}).Info("line bot config created")
	return cfg, nil
}

// Update merges the non-nil fields of patch into the stored config.
func (s *LineBotService) Update(ctx context.Context, id uuid.UUID, patch models.LineBotConfigPatch) (*models.LineBotConfig, error) {
	if err := s.validator.Validate(patch); err != nil {
		return nil, models.Err(models.ErrValidation, err, "")
	}

	cfg, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(cfg)
	cfg.UpdatedAt = s.now()
	if err := s.store.Update(ctx, cfg); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": cfg.ID, "name": cfg.Name}).Info("line bot config updated")
	return cfg, nil
}

func (s *LineBotService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Find(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.WithField("id", id).Info("line bot config deleted")
	return nil
}

// TestConfig sends message through a single config. An unknown id is a
// failed result, not an error; only store failures are returned as errors.
func (s *LineBotService) TestConfig(ctx context.Context, id uuid.UUID, message string) (models.SendResult, error) {
	cfg, err := s.store.Find(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.SendFailed("line bot config not found"), nil
	}
	if err != nil {
		return models.SendResult{}, err
	}

	return s.sender.SendMessage(ctx, cfg.AccessToken, cfg.RecipientID, withDefaultMessage(message)), nil
}

// Broadcast sends message through every enabled config. There is exactly one
// result per enabled config, in store order, whatever the individual outcome.
func (s *LineBotService) Broadcast(ctx context.Context, message string) ([]models.BroadcastResult, error) {
	configs, err := s.store.FindEnabled(ctx)
	if err != nil {
		return nil, err
	}

	text := withDefaultMessage(message)
	results := make([]models.BroadcastResult, len(configs))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, cfg := range configs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cfg models.LineBotConfig) {
			defer wg.Done()
			defer func() { <-sem }()

			res := s.sender.SendMessage(ctx, cfg.AccessToken, cfg.RecipientID, text)
			if !res.Success {
				log.WithFields(log.Fields{"id": cfg.ID, "name": cfg.Name}).Warnf("broadcast send failed: %s", res.Message)
			}
			results[i] = models.BroadcastResult{
				ID:      cfg.ID,
				Name:    cfg.Name,
				Success: res.Success,
				Message: res.Message,
			}
		}(i, cfg)
	}
	wg.Wait()

	log.WithFields(log.Fields{"total": len(results), "successful": CountSuccessful(results)}).Info("broadcast completed")
	return results, nil
}

func CountSuccessful(results []models.BroadcastResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}

func withDefaultMessage(message string) string {
	if message == "" {
		return DefaultTestMessage
	}
	return message
}

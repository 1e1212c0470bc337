package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linebot-admin/internal/models"
)

// LineBotConfigStore persists LINE bot configs through GORM.
type LineBotConfigStore struct {
	db *gorm.DB
}

func NewLineBotConfigStore(db *gorm.DB) *LineBotConfigStore {
	return &LineBotConfigStore{db: db}
}

func (s *LineBotConfigStore) Find(ctx context.Context, id uuid.UUID) (*models.LineBotConfig, error) {
	var cfg models.LineBotConfig
	err := s.db.WithContext(ctx).First(&cfg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.Err(models.ErrNotFound, err, "line bot config %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *LineBotConfigStore) FindAll(ctx context.Context) ([]models.LineBotConfig, error) {
	var configs []models.LineBotConfig
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&configs).Error
	return configs, err
}

func (s *LineBotConfigStore) FindEnabled(ctx context.Context) ([]models.LineBotConfig, error) {
	var configs []models.LineBotConfig
	err := s.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("created_at asc").
		Find(&configs).Error
	return configs, err
}

func (s *LineBotConfigStore) Insert(ctx context.Context, cfg *models.LineBotConfig) error {
	return s.db.WithContext(ctx).Create(cfg).Error
}

func (s *LineBotConfigStore) Update(ctx context.Context, cfg *models.LineBotConfig) error {
	return s.db.WithContext(ctx).Save(cfg).Error
}

// Delete removes the row permanently.
func (s *LineBotConfigStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.LineBotConfig{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.Err(models.ErrNotFound, nil, "line bot config %s", id)
	}
	return nil
}

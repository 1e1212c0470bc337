package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"linebot-admin/internal/models"
)

// PortalAppService keeps the portal tiles in a single JSON file. Every call
// loads the whole file; updates rewrite it.
type PortalAppService struct {
	mu   sync.Mutex
	path string
}

func NewPortalAppService(path string) *PortalAppService {
	return &PortalAppService{path: path}
}

func (s *PortalAppService) List() ([]models.PortalAppTile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *PortalAppService) Update(id int, patch models.PortalAppPatch) (*models.PortalAppTile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID != id {
			continue
		}
		patch.Apply(&apps[i])
		if err := s.save(apps); err != nil {
			return nil, err
		}
		app := apps[i]
		return &app, nil
	}
	return nil, models.Err(models.ErrNotFound, nil, "app %d", id)
}

// load seeds the default tiles when the file does not exist yet.
func (s *PortalAppService) load() ([]models.PortalAppTile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		apps := models.DefaultPortalApps()
		if err := s.save(apps); err != nil {
			return nil, err
		}
		log.WithField("path", s.path).Info("seeded default portal apps")
		return apps, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read apps file: %w", err)
	}

	var apps []models.PortalAppTile
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("decode apps file: %w", err)
	}
	return apps, nil
}

func (s *PortalAppService) save(apps []models.PortalAppTile) error {
	data, err := json.MarshalIndent(apps, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write apps file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

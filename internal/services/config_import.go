package services

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	log "github.com/sirupsen/logrus"

	"linebot-admin/internal/models"
)

// LineBotConfigFile is the layout of a seed file:
//
//	configs:
//	  - name: Main
//	    accessToken: xxx
//	    channelSecret: yyy
//	    recipientId: U123
//	    enabled: true
type LineBotConfigFile struct {
	Configs []models.LineBotConfigInput `yaml:"configs"`
}

// ImportLineBotConfigs creates every config listed in the YAML file at path.
// It stops at the first entry that fails and reports its index.
func ImportLineBotConfigs(ctx context.Context, svc *LineBotService, path string) ([]models.LineBotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file LineBotConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	created := make([]models.LineBotConfig, 0, len(file.Configs))
	for i, in := range file.Configs {
		cfg, err := svc.Create(ctx, in)
		if err != nil {
			return created, fmt.Errorf("config #%d (%q): %w", i, in.Name, err)
		}
		created = append(created, *cfg)
	}

	log.WithFields(log.Fields{"path": path, "count": len(created)}).Info("line bot configs imported")
	return created, nil
}

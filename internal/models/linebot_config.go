package models

import (
	"fmt"

	"github.com/google/uuid"
)

// LineBotConfig is one outbound LINE notification target.
//
// ChannelSecret is persisted for webhook signature verification but no code
// path reads it yet.
type LineBotConfig struct {
	Base
	Name          string  `gorm:"not null;index" json:"name"`
	AccessToken   string  `gorm:"not null" json:"accessToken"`
	ChannelSecret string  `json:"channelSecret"`
	RecipientID   string  `gorm:"not null" json:"recipientId"`
	Enabled       bool    `gorm:"not null" json:"enabled"`
	Description   *string `gorm:"type:text" json:"description"`
}

// LineBotConfigInput is the create payload.
type LineBotConfigInput struct {
	Name          string  `json:"name" yaml:"name" validate:"required"`
	AccessToken   string  `json:"accessToken" yaml:"accessToken" validate:"required"`
	ChannelSecret string  `json:"channelSecret" yaml:"channelSecret" validate:"required"`
	RecipientID   string  `json:"recipientId" yaml:"recipientId" validate:"required"`
	Enabled       *bool   `json:"enabled" yaml:"enabled"`
	Description   *string `json:"description" yaml:"description"`
}

// LineBotConfigPatch is the merge-patch update payload. Nil fields are left
// untouched.
type LineBotConfigPatch struct {
	Name          *string `json:"name" validate:"omitnil,min=1"`
	AccessToken   *string `json:"accessToken" validate:"omitnil,min=1"`
	ChannelSecret *string `json:"channelSecret" validate:"omitnil,min=1"`
	RecipientID   *string `json:"recipientId" validate:"omitnil,min=1"`
	Enabled       *bool   `json:"enabled"`
	Description   *string `json:"description"`
}

// Apply copies every non-nil field of the patch onto cfg.
func (p LineBotConfigPatch) Apply(cfg *LineBotConfig) {
	if p.Name != nil {
		cfg.Name = *p.Name
	}
	if p.AccessToken != nil {
		cfg.AccessToken = *p.AccessToken
	}
	if p.ChannelSecret != nil {
		cfg.ChannelSecret = *p.ChannelSecret
	}
	if p.RecipientID != nil {
		cfg.RecipientID = *p.RecipientID
	}
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.Description != nil {
		cfg.Description = p.Description
	}
}

// SendResult is the outcome of one push. Failures are values, not errors.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SendOK(message string) SendResult {
	return SendResult{Success: true, Message: message}
}

func SendFailed(format string, args ...any) SendResult {
	return SendResult{Success: false, Message: fmt.Sprintf(format, args...)}
}

// BroadcastResult tags a SendResult with the config it was sent through.
type BroadcastResult struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Success bool      `json:"success"`
	Message string    `json:"message"`
}

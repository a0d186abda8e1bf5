package service

import (
	"context"
	"time"
)

// IdentityMigratedEvent is published after every identity migration run
type IdentityMigratedEvent struct {
	RequestID       string         `json:"request_id,omitempty"` // For distributed tracing
	OldEmail        string         `json:"old_email"`
	NewEmail        string         `json:"new_email"`
	AlreadyMigrated bool           `json:"already_migrated"`
	Migrated        map[string]int `json:"migrated"`
	FailedRecords   int            `json:"failed_records"`
	Error           string         `json:"error,omitempty"`
	FinishedAt      time.Time      `json:"finished_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIdentityMigrated publishes the outcome of an identity migration
	PublishIdentityMigrated(ctx context.Context, event *IdentityMigratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// MigrationAuditModel mirrors the 'identity_migration_audits' table.
type MigrationAuditModel struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	OldEmail        string         `gorm:"type:varchar(320);not null;index"`
	NewEmail        string         `gorm:"type:varchar(320);not null;index"`
	AlreadyMigrated bool           `gorm:"not null;default:false"`
	Migrated        int            `gorm:"not null;default:0"`
	Failed          int            `gorm:"not null;default:0"`
	Error           string         `gorm:"type:text"`
	Report          datatypes.JSON `gorm:"type:jsonb"`
	StartedAt       time.Time      `gorm:"not null"`
	FinishedAt      time.Time      `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MigrationAuditModel) TableName() string {
	return "identity_migration_audits"
}

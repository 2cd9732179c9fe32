package model

import "time"

// MigrationVersion is one applied schema version. Rows are append-only.
type MigrationVersion struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Version    string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Details    string    `gorm:"type:text"`
	DurationMs int64     `gorm:"not null;default:0"`
	AppliedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "schema_versions"
}

// Package models contains database model definitions.
package models

import (
	"time"
)

// Setting represents a runtime configuration override stored in the
// database. Values stored here are layered above the file configuration
// and editable through the admin API without a restart.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"unique"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

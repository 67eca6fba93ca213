// Package model defines storage models for the persistence layer.
package model

import "time"

// SlotModel represents the slots table: one row per named slot, holding the
// whole serialized collection as its payload.
type SlotModel struct {
	Name      string `gorm:"primaryKey;type:varchar(64)"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for the SlotModel.
func (SlotModel) TableName() string {
	return "slots"
}

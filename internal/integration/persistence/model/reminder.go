// Package model defines storage models for the persistence layer.
package model

// ReminderStateRecord is the JSON document stored in the reminders slot.
// It tracks the last month for which a reminder email went out, so the
// worker sends at most one per calendar month.
type ReminderStateRecord struct {
	LastNotifiedMonth string `json:"lastNotifiedMonth"`
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Slot names for the persisted collections.
const (
	SlotTransactions = "transactions"
	SlotCategories   = "categories"
	SlotGoals        = "goals"
	SlotReminders    = "reminders"
)

// SlotStore persists named slots to a durable local key-value medium.
// Each slot holds one serialized collection written as a whole.
type SlotStore interface {
	// Load reads the raw payload of a slot. It returns
	// domainerror.ErrSlotNotFound when the slot has never been written.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save writes the raw payload of a slot synchronously, replacing any
	// previous value. Failures are surfaced to the caller.
	Save(ctx context.Context, slot string, payload []byte) error
}

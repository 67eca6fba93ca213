// Package persistence implements the slot store backends and the ledger
// holding the in-memory collections.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

// sqliteStore implements adapter.SlotStore on a local SQLite database with a
// single slots table.
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore creates a new SQLite-backed slot store.
func NewSQLiteStore(db *gorm.DB) adapter.SlotStore {
	return &sqliteStore{
		db: db,
	}
}

// Load reads the raw payload of a slot.
func (s *sqliteStore) Load(ctx context.Context, slot string) ([]byte, error) {
	var slotModel model.SlotModel
	result := s.db.WithContext(ctx).Where("name = ?", slot).First(&slotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSlotNotFound
		}
		return nil, result.Error
	}
	return slotModel.Payload, nil
}

// Save writes the raw payload of a slot, replacing any previous value.
func (s *sqliteStore) Save(ctx context.Context, slot string, payload []byte) error {
	slotModel := model.SlotModel{
		Name:    slot,
		Payload: payload,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&slotModel)
	if result.Error != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeSlotWriteFailed,
			"failed to write slot "+slot,
			errors.Join(domainerror.ErrSlotWriteFailed, result.Error),
		)
	}
	return nil
}

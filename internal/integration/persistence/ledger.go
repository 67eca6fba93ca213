// Package persistence implements the slot store backends and the ledger
// holding the in-memory collections.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

// Ledger is the application-state container: it loads the three collections
// from the slot store once, keeps them in memory as the single source of
// truth, and writes a collection's slot through before any mutation returns.
// A failed write leaves the in-memory state untouched.
//
// It implements adapter.TransactionRepository directly and exposes the
// category and goal collections as adapter.CategoryRepository and
// adapter.GoalRepository views; all other components reach the collections
// through those interfaces only.
type Ledger struct {
	store adapter.SlotStore

	mu           sync.RWMutex
	transactions []*entity.Transaction
	categories   []*entity.Category
	goals        []*entity.Goal
}

// Compile-time interface checks.
var (
	_ adapter.TransactionRepository = (*Ledger)(nil)
	_ adapter.CategoryRepository    = categoryView{}
	_ adapter.GoalRepository        = goalView{}
)

// OpenLedger loads all collections from the store. An absent or undecodable
// slot falls back to its typed default without touching storage; categories
// default to the seeded set. Store read failures other than absence abort.
func OpenLedger(ctx context.Context, store adapter.SlotStore) (*Ledger, error) {
	ledger := &Ledger{store: store}

	transactions, err := loadSlot(ctx, store, adapter.SlotTransactions, decodeTransactions, nil)
	if err != nil {
		return nil, err
	}
	ledger.transactions = transactions

	categories, err := loadSlot(ctx, store, adapter.SlotCategories, decodeCategories, entity.DefaultCategories())
	if err != nil {
		return nil, err
	}
	ledger.categories = categories

	goals, err := loadSlot(ctx, store, adapter.SlotGoals, decodeGoals, nil)
	if err != nil {
		return nil, err
	}
	ledger.goals = goals

	slog.Info("Ledger loaded",
		"transactions", len(ledger.transactions),
		"categories", len(ledger.categories),
		"goals", len(ledger.goals),
	)
	return ledger, nil
}

// loadSlot reads and decodes one slot, falling back to defaultValue when the
// slot is absent or its payload cannot be decoded.
func loadSlot[T any](
	ctx context.Context,
	store adapter.SlotStore,
	slot string,
	decode func([]byte) ([]T, error),
	defaultValue []T,
) ([]T, error) {
	payload, err := store.Load(ctx, slot)
	if err != nil {
		if errors.Is(err, domainerror.ErrSlotNotFound) {
			return defaultValue, nil
		}
		return nil, fmt.Errorf("failed to load slot %s: %w", slot, err)
	}

	decoded, err := decode(payload)
	if err != nil {
		slog.Warn("Discarding undecodable slot payload, using default",
			"slot", slot,
			"error", err,
		)
		return defaultValue, nil
	}
	return decoded, nil
}

func decodeTransactions(payload []byte) ([]*entity.Transaction, error) {
	var records []model.TransactionRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return model.TransactionsToEntities(records)
}

func decodeCategories(payload []byte) ([]*entity.Category, error) {
	var records []model.CategoryRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return model.CategoriesToEntities(records), nil
}

func decodeGoals(payload []byte) ([]*entity.Goal, error) {
	var records []model.GoalRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return model.GoalsToEntities(records), nil
}

// saveTransactions persists the given collection to the transactions slot.
func (l *Ledger) saveTransactions(ctx context.Context, transactions []*entity.Transaction) error {
	payload, err := json.Marshal(model.TransactionsFromEntities(transactions))
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return l.store.Save(ctx, adapter.SlotTransactions, payload)
}

// saveGoals persists the given collection to the goals slot.
func (l *Ledger) saveGoals(ctx context.Context, goals []*entity.Goal) error {
	payload, err := json.Marshal(model.GoalsFromEntities(goals))
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	return l.store.Save(ctx, adapter.SlotGoals, payload)
}

// --- adapter.TransactionRepository ---

// All returns a snapshot of the transactions collection in insertion order.
func (l *Ledger) All(ctx context.Context) ([]*entity.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]*entity.Transaction, len(l.transactions))
	for i, t := range l.transactions {
		clone := *t
		snapshot[i] = &clone
	}
	return snapshot, nil
}

// FindByID retrieves a copy of the transaction with the given ID.
func (l *Ledger) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// Append adds a transaction at the end of the collection and persists it.
func (l *Ledger) Append(ctx context.Context, transaction *entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	clone := *transaction
	next := append(cloneSlice(l.transactions), &clone)
	if err := l.saveTransactions(ctx, next); err != nil {
		return err
	}
	l.transactions = next
	return nil
}

// Replace swaps the transaction whose ID matches and persists the collection.
func (l *Ledger) Replace(ctx context.Context, transaction *entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := cloneSlice(l.transactions)
	found := false
	for i, t := range next {
		if t.ID == transaction.ID {
			clone := *transaction
			next[i] = &clone
			found = true
			break
		}
	}
	if !found {
		return domainerror.ErrTransactionNotFound
	}

	if err := l.saveTransactions(ctx, next); err != nil {
		return err
	}
	l.transactions = next
	return nil
}

// Remove deletes the transaction with the given ID and persists the collection.
func (l *Ledger) Remove(ctx context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]*entity.Transaction, 0, len(l.transactions))
	found := false
	for _, t := range l.transactions {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return domainerror.ErrTransactionNotFound
	}

	if err := l.saveTransactions(ctx, next); err != nil {
		return err
	}
	l.transactions = next
	return nil
}

// UnlinkGoal clears the goal reference on every transaction pointing at the
// goal and persists the collection when anything changed.
func (l *Ledger) UnlinkGoal(ctx context.Context, goalID uuid.UUID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := cloneSlice(l.transactions)
	unlinked := 0
	for i, t := range next {
		if t.GoalID != nil && *t.GoalID == goalID {
			clone := *t
			clone.GoalID = nil
			next[i] = &clone
			unlinked++
		}
	}
	if unlinked == 0 {
		return 0, nil
	}

	if err := l.saveTransactions(ctx, next); err != nil {
		return 0, err
	}
	l.transactions = next
	return unlinked, nil
}

// Categories returns the category view of the ledger.
func (l *Ledger) Categories() adapter.CategoryRepository {
	return categoryView{l}
}

// Goals returns the goal view of the ledger.
func (l *Ledger) Goals() adapter.GoalRepository {
	return goalView{l}
}

// Transactions returns the transaction view of the ledger.
func (l *Ledger) Transactions() adapter.TransactionRepository {
	return l
}

// categoryView exposes the ledger's categories as adapter.CategoryRepository.
type categoryView struct {
	ledger *Ledger
}

// All returns a snapshot of the categories collection in insertion order.
func (v categoryView) All(ctx context.Context) ([]*entity.Category, error) {
	v.ledger.mu.RLock()
	defer v.ledger.mu.RUnlock()

	snapshot := make([]*entity.Category, len(v.ledger.categories))
	for i, c := range v.ledger.categories {
		clone := *c
		snapshot[i] = &clone
	}
	return snapshot, nil
}

// FindByID retrieves a copy of the category with the given ID.
func (v categoryView) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	v.ledger.mu.RLock()
	defer v.ledger.mu.RUnlock()

	for _, c := range v.ledger.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFoundForTransaction
}

// goalView exposes the ledger's goals as adapter.GoalRepository.
type goalView struct {
	ledger *Ledger
}

// All returns a snapshot of the goals collection in insertion order.
func (v goalView) All(ctx context.Context) ([]*entity.Goal, error) {
	v.ledger.mu.RLock()
	defer v.ledger.mu.RUnlock()

	snapshot := make([]*entity.Goal, len(v.ledger.goals))
	for i, g := range v.ledger.goals {
		clone := *g
		snapshot[i] = &clone
	}
	return snapshot, nil
}

// FindByID retrieves a copy of the goal with the given ID.
func (v goalView) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	v.ledger.mu.RLock()
	defer v.ledger.mu.RUnlock()

	for _, g := range v.ledger.goals {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// Append adds a goal at the end of the collection and persists it.
func (v goalView) Append(ctx context.Context, goal *entity.Goal) error {
	l := v.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	clone := *goal
	next := append(cloneSlice(l.goals), &clone)
	if err := l.saveGoals(ctx, next); err != nil {
		return err
	}
	l.goals = next
	return nil
}

// Replace swaps the goal whose ID matches and persists the collection.
func (v goalView) Replace(ctx context.Context, goal *entity.Goal) error {
	l := v.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	next := cloneSlice(l.goals)
	found := false
	for i, g := range next {
		if g.ID == goal.ID {
			clone := *goal
			next[i] = &clone
			found = true
			break
		}
	}
	if !found {
		return domainerror.ErrGoalNotFound
	}

	if err := l.saveGoals(ctx, next); err != nil {
		return err
	}
	l.goals = next
	return nil
}

// Remove deletes the goal with the given ID and persists the collection.
func (v goalView) Remove(ctx context.Context, id uuid.UUID) error {
	l := v.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]*entity.Goal, 0, len(l.goals))
	found := false
	for _, g := range l.goals {
		if g.ID == id {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return domainerror.ErrGoalNotFound
	}

	if err := l.saveGoals(ctx, next); err != nil {
		return err
	}
	l.goals = next
	return nil
}

// cloneSlice copies the backing slice so a failed save never leaves a
// half-applied collection behind.
func cloneSlice[T any](s []*T) []*T {
	next := make([]*T, len(s))
	copy(next, s)
	return next
}

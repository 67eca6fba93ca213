package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

func newTestStore(t *testing.T) adapter.SlotStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.SlotModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewSQLiteStore(db)
}

func newTestTransaction(description string) *entity.Transaction {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	return entity.NewTransaction(description, decimal.NewFromInt(300), date,
		uuid.New(), entity.TransactionTypeExpense, false, entity.CurrencyARS, nil)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("loading an absent slot reports not found", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		if err != domainerror.ErrSlotNotFound {
			t.Errorf("expected ErrSlotNotFound, got %v", err)
		}
	})

	t.Run("save then load round-trips the payload", func(t *testing.T) {
		payload := []byte(`[{"id":"x"}]`)
		if err := store.Save(ctx, "transactions", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loaded, err := store.Load(ctx, "transactions")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(loaded) != string(payload) {
			t.Errorf("expected %s, got %s", payload, loaded)
		}
	})

	t.Run("save overwrites an existing slot", func(t *testing.T) {
		if err := store.Save(ctx, "transactions", []byte(`[]`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loaded, err := store.Load(ctx, "transactions")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(loaded) != `[]` {
			t.Errorf("expected [], got %s", loaded)
		}
	})
}

func TestOpenLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields defaults without writing them back", func(t *testing.T) {
		store := newTestStore(t)

		ledger, err := OpenLedger(ctx, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		transactions, _ := ledger.Transactions().All(ctx)
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}

		categories, _ := ledger.Categories().All(ctx)
		if len(categories) != len(entity.DefaultCategories()) {
			t.Errorf("expected %d default categories, got %d", len(entity.DefaultCategories()), len(categories))
		}

		// The defaults stay in memory only until something is written.
		if _, err := store.Load(ctx, adapter.SlotCategories); err != domainerror.ErrSlotNotFound {
			t.Errorf("expected categories slot to stay absent, got %v", err)
		}
	})

	t.Run("undecodable slot falls back to the default", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(ctx, adapter.SlotTransactions, []byte(`{not json`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ledger, err := OpenLedger(ctx, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		transactions, _ := ledger.Transactions().All(ctx)
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}
	})

	t.Run("reopening the ledger sees persisted mutations", func(t *testing.T) {
		store := newTestStore(t)

		ledger, err := OpenLedger(ctx, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created := newTestTransaction("Supermercado")
		if err := ledger.Transactions().Append(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reopened, err := OpenLedger(ctx, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		transactions, _ := reopened.Transactions().All(ctx)
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactions))
		}
		if transactions[0].ID != created.ID {
			t.Errorf("expected ID %s, got %s", created.ID, transactions[0].ID)
		}
		if !transactions[0].Date.Equal(created.Date) {
			t.Errorf("expected date %s, got %s", created.Date, transactions[0].Date)
		}
	})
}

func TestLedgerTransactions(t *testing.T) {
	ctx := context.Background()

	newLedger := func(t *testing.T) *Ledger {
		ledger, err := OpenLedger(ctx, newTestStore(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return ledger
	}

	t.Run("FindByID returns a copy", func(t *testing.T) {
		ledger := newLedger(t)
		created := newTestTransaction("Supermercado")
		if err := ledger.Append(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := ledger.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found.Description = "mutated"
		again, _ := ledger.FindByID(ctx, created.ID)
		if again.Description != "Supermercado" {
			t.Errorf("expected stored description untouched, got %s", again.Description)
		}
	})

	t.Run("Replace swaps the matching transaction", func(t *testing.T) {
		ledger := newLedger(t)
		created := newTestTransaction("Supermercado")
		if err := ledger.Append(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := *created
		updated.Amount = decimal.NewFromInt(450)
		if err := ledger.Replace(ctx, &updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, _ := ledger.FindByID(ctx, created.ID)
		if !found.Amount.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected amount 450, got %s", found.Amount)
		}
	})

	t.Run("Replace of an unknown ID reports not found", func(t *testing.T) {
		ledger := newLedger(t)
		if err := ledger.Replace(ctx, newTestTransaction("ghost")); err != domainerror.ErrTransactionNotFound {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("Remove deletes the matching transaction", func(t *testing.T) {
		ledger := newLedger(t)
		created := newTestTransaction("Supermercado")
		if err := ledger.Append(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := ledger.Remove(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := ledger.FindByID(ctx, created.ID); err != domainerror.ErrTransactionNotFound {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("Remove of an unknown ID reports not found", func(t *testing.T) {
		ledger := newLedger(t)
		if err := ledger.Remove(ctx, uuid.New()); err != domainerror.ErrTransactionNotFound {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("UnlinkGoal clears matching references only", func(t *testing.T) {
		ledger := newLedger(t)
		goalID := uuid.New()

		linked := newTestTransaction("Ahorro viaje")
		linked.Type = entity.TransactionTypeSaving
		linked.GoalID = &goalID
		unrelated := newTestTransaction("Supermercado")

		if err := ledger.Append(ctx, linked); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ledger.Append(ctx, unrelated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unlinked, err := ledger.UnlinkGoal(ctx, goalID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unlinked != 1 {
			t.Errorf("expected 1 unlinked, got %d", unlinked)
		}

		found, _ := ledger.FindByID(ctx, linked.ID)
		if found.GoalID != nil {
			t.Error("expected goal reference to be cleared")
		}
	})
}

func TestLedgerGoals(t *testing.T) {
	ctx := context.Background()

	ledger, err := OpenLedger(ctx, newTestStore(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	goals := ledger.Goals()

	created := entity.NewGoal("Viaje", "Vacaciones", decimal.NewFromInt(10000))

	t.Run("Append then FindByID", func(t *testing.T) {
		if err := goals.Append(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := goals.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Viaje" {
			t.Errorf("expected Viaje, got %s", found.Name)
		}
	})

	t.Run("Replace updates the goal", func(t *testing.T) {
		updated := *created
		updated.TargetAmount = decimal.NewFromInt(15000)
		if err := goals.Replace(ctx, &updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, _ := goals.FindByID(ctx, created.ID)
		if !found.TargetAmount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected target 15000, got %s", found.TargetAmount)
		}
	})

	t.Run("Remove deletes the goal", func(t *testing.T) {
		if err := goals.Remove(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := goals.FindByID(ctx, created.ID); err != domainerror.ErrGoalNotFound {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory adapter.TransactionRepository for tests.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) All(ctx context.Context) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Append(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) Replace(ctx context.Context, transaction *entity.Transaction) error {
	for i, t := range r.transactions {
		if t.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Remove(ctx context.Context, id uuid.UUID) error {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) UnlinkGoal(ctx context.Context, goalID uuid.UUID) (int, error) {
	unlinked := 0
	for _, t := range r.transactions {
		if t.GoalID != nil && *t.GoalID == goalID {
			t.GoalID = nil
			unlinked++
		}
	}
	return unlinked, nil
}

// fakeCategoryRepo is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) All(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFoundForTransaction
}

// fakeGoalRepo is an in-memory adapter.GoalRepository for tests.
type fakeGoalRepo struct {
	goals []*entity.Goal
}

func (r *fakeGoalRepo) All(ctx context.Context) ([]*entity.Goal, error) {
	return r.goals, nil
}

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) Append(ctx context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *fakeGoalRepo) Replace(ctx context.Context, goal *entity.Goal) error {
	for i, g := range r.goals {
		if g.ID == goal.ID {
			r.goals[i] = goal
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) Remove(ctx context.Context, id uuid.UUID) error {
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func testFixtures() (*fakeTransactionRepo, *fakeCategoryRepo, *fakeGoalRepo, *entity.Category, *entity.Goal) {
	expenseCategory := &entity.Category{
		ID:   uuid.New(),
		Name: "Alimentacion",
		Type: entity.TransactionTypeExpense,
	}
	savingCategory := &entity.Category{
		ID:   uuid.New(),
		Name: "Plazo Fijo",
		Type: entity.TransactionTypeSaving,
	}
	goal := &entity.Goal{
		ID:           uuid.New(),
		Name:         "Viaje",
		TargetAmount: decimal.NewFromInt(10000),
	}

	return &fakeTransactionRepo{},
		&fakeCategoryRepo{categories: []*entity.Category{expenseCategory, savingCategory}},
		&fakeGoalRepo{goals: []*entity.Goal{goal}},
		expenseCategory,
		goal
}

func savingCategoryOf(categoryRepo *fakeCategoryRepo) *entity.Category {
	for _, c := range categoryRepo.categories {
		if c.Type == entity.TransactionTypeSaving {
			return c
		}
	}
	return nil
}

func expectTransactionErrorCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected TransactionError, got %v", err)
	}
	if txnErr.Code != code {
		t.Errorf("expected code %s, got %s", code, txnErr.Code)
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid expense", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
		if output.Transaction.Currency != entity.CurrencyARS {
			t.Errorf("expected default currency ARS, got %s", output.Transaction.Currency)
		}
		if len(transactionRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("rejects blank description", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "   ",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeEmptyDescription)
	})

	t.Run("rejects overlong description", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: strings.Repeat("x", MaxDescriptionLength+1),
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeDescriptionTooLong)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := uc.Execute(ctx, CreateTransactionInput{
				Description: "Supermercado",
				Amount:      amount,
				Date:        date,
				CategoryID:  expenseCategory.ID,
				Type:        entity.TransactionTypeExpense,
			})
			expectTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionType("TRANSFER"),
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
			Currency:    entity.Currency("EUR"),
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionCurrency)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, _, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  uuid.New(),
			Type:        entity.TransactionTypeExpense,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeTxnCategoryNotFound)
	})

	t.Run("rejects category of another type", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Sueldo",
			Amount:      decimal.NewFromInt(1000),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeIncome,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeCategoryTypeMismatch)
	})

	t.Run("links a goal on a saving", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, _, goal := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Ahorro viaje",
			Amount:      decimal.NewFromInt(500),
			Date:        date,
			CategoryID:  savingCategoryOf(categoryRepo).ID,
			Type:        entity.TransactionTypeSaving,
			GoalID:      &goal.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.GoalID == nil || *output.Transaction.GoalID != goal.ID {
			t.Error("expected goal link to be kept")
		}
	})

	t.Run("rejects goal link on a non-saving", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, goal := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
			GoalID:      &goal.ID,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeGoalLinkNotAllowed)
	})

	t.Run("rejects unknown goal", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, _, _ := testFixtures()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		unknownGoal := uuid.New()
		_, err := uc.Execute(ctx, CreateTransactionInput{
			Description: "Ahorro",
			Amount:      decimal.NewFromInt(500),
			Date:        date,
			CategoryID:  savingCategoryOf(categoryRepo).ID,
			Type:        entity.TransactionTypeSaving,
			GoalID:      &unknownGoal,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeTxnGoalNotFound)
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	seed := func(transactionRepo *fakeTransactionRepo, categoryRepo *fakeCategoryRepo, goalRepo *fakeGoalRepo, expenseCategory *entity.Category) *entity.Transaction {
		create := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
		output, err := create.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
		})
		if err != nil {
			panic(err)
		}
		return output.Transaction
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		existing := seed(transactionRepo, categoryRepo, goalRepo, expenseCategory)
		uc := NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		newAmount := decimal.NewFromInt(450)
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: existing.ID,
			Amount:        &newAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Amount.Equal(newAmount) {
			t.Errorf("expected amount 450, got %s", output.Transaction.Amount)
		}
		if output.Transaction.Description != "Supermercado" {
			t.Errorf("expected description untouched, got %s", output.Transaction.Description)
		}
	})

	t.Run("unknown ID is an error", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, _, _ := testFixtures()
		uc := NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		newAmount := decimal.NewFromInt(450)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: uuid.New(),
			Amount:        &newAmount,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})

	t.Run("revalidates category on type change", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		existing := seed(transactionRepo, categoryRepo, goalRepo, expenseCategory)
		uc := NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		incomeType := entity.TransactionTypeIncome
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: existing.ID,
			Type:          &incomeType,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeCategoryTypeMismatch)
	})

	t.Run("clears the goal link when requested", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, _, goal := testFixtures()
		create := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
		output, err := create.Execute(ctx, CreateTransactionInput{
			Description: "Ahorro viaje",
			Amount:      decimal.NewFromInt(500),
			Date:        date,
			CategoryID:  savingCategoryOf(categoryRepo).ID,
			Type:        entity.TransactionTypeSaving,
			GoalID:      &goal.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
		updated, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: output.Transaction.ID,
			ClearGoal:     true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Transaction.GoalID != nil {
			t.Error("expected goal link to be cleared")
		}
	})

	t.Run("rejects invalid amount", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		existing := seed(transactionRepo, categoryRepo, goalRepo, expenseCategory)
		uc := NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		negative := decimal.NewFromInt(-10)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: existing.ID,
			Amount:        &negative,
		})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("deletes an existing transaction", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		create := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
		output, err := create.Execute(ctx, CreateTransactionInput{
			Description: "Supermercado",
			Amount:      decimal.NewFromInt(300),
			Date:        date,
			CategoryID:  expenseCategory.ID,
			Type:        entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteTransactionUseCase(transactionRepo)
		if _, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: output.Transaction.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactionRepo.transactions) != 0 {
			t.Errorf("expected empty repository, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("unknown ID is an error", func(t *testing.T) {
		transactionRepo, _, _, _, _ := testFixtures()
		uc := NewDeleteTransactionUseCase(transactionRepo)

		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New()})
		expectTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the requested month sorted by date", func(t *testing.T) {
		transactionRepo, categoryRepo, goalRepo, expenseCategory, _ := testFixtures()
		create := NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)

		dates := []time.Time{
			time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
		}
		for i, d := range dates {
			_, err := create.Execute(ctx, CreateTransactionInput{
				Description: "gasto",
				Amount:      decimal.NewFromInt(int64(100 + i)),
				Date:        d,
				CategoryID:  expenseCategory.ID,
				Type:        entity.TransactionTypeExpense,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		uc := NewListTransactionsUseCase(transactionRepo)
		output, err := uc.Execute(ctx, ListTransactionsInput{
			Month: mustMonth(t, "2024-03"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(output.Transactions))
		}
		if !output.Transactions[0].Date.After(output.Transactions[1].Date) {
			t.Error("expected most recent date first")
		}
	})
}

func mustMonth(t *testing.T, s string) report.Month {
	t.Helper()
	month, err := report.ParseMonth(s)
	if err != nil {
		t.Fatalf("bad month literal %q: %v", s, err)
	}
	return month
}

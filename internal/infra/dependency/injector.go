// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"github.com/mairuba/finanzas-backend/config"
	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/category"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/goal"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/transaction"
	"github.com/mairuba/finanzas-backend/internal/infra/server/router"
	"github.com/mairuba/finanzas-backend/internal/integration/email"
	"github.com/mairuba/finanzas-backend/internal/integration/email/templates"
	"github.com/mairuba/finanzas-backend/internal/integration/entrypoint/controller"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	Store          adapter.SlotStore
	Ledger         *persistence.Ledger
	Router         *router.Router
	ReminderWorker *email.ReminderWorker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The store health checker backs the /health endpoint.
func NewInjector(ctx context.Context, cfg *config.Config, store adapter.SlotStore, storeHealthChecker func() bool) (*Injector, error) {
	// Load the ledger from the store
	ledger, err := persistence.OpenLedger(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	transactionRepo := ledger.Transactions()
	categoryRepo := ledger.Categories()
	goalRepo := ledger.Goals()

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, goalRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, transactionRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, transactionRepo)

	// Create report use cases
	summaryUseCase := report.NewGetMonthlySummaryUseCase(transactionRepo)
	remindersUseCase := report.NewGetHabitualRemindersUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(storeHealthChecker)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	reportController := controller.NewReportController(summaryUseCase, remindersUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		goalController,
		reportController,
	)

	// Create reminder worker when enabled and fully configured
	var reminderWorker *email.ReminderWorker
	if cfg.Reminder.Enabled && cfg.Reminder.ResendAPIKey != "" && cfg.Reminder.ToEmail != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to create template renderer: %w", err)
		}

		sender := email.NewResendClient(
			cfg.Reminder.ResendAPIKey,
			cfg.Reminder.FromName,
			cfg.Reminder.FromEmail,
		)

		reminderWorker = email.NewReminderWorker(
			remindersUseCase,
			store,
			sender,
			renderer,
			cfg.Reminder.ToEmail,
			cfg.Reminder.CheckInterval,
		)
	}

	return &Injector{
		Config:         cfg,
		Store:          store,
		Ledger:         ledger,
		Router:         r,
		ReminderWorker: reminderWorker,
	}, nil
}

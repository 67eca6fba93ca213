// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
	"github.com/mairuba/finanzas-backend/internal/integration/email/templates"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

// ReminderWorker periodically checks for habitual expenses missing from the
// current month and emails a reminder. At most one reminder goes out per
// calendar month; the last notified month is tracked in the reminders slot.
type ReminderWorker struct {
	remindersUseCase *report.GetHabitualRemindersUseCase
	store            adapter.SlotStore
	sender           adapter.EmailSender
	renderer         *templates.Renderer
	toEmail          string
	checkInterval    time.Duration
}

// NewReminderWorker creates a new reminder worker.
func NewReminderWorker(
	remindersUseCase *report.GetHabitualRemindersUseCase,
	store adapter.SlotStore,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	toEmail string,
	checkInterval time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		remindersUseCase: remindersUseCase,
		store:            store,
		sender:           sender,
		renderer:         renderer,
		toEmail:          toEmail,
		checkInterval:    checkInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) {
	slog.Info("Reminder worker started", "check_interval", w.checkInterval)

	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	// Check immediately on start, then on ticker
	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check runs one reminder pass for the current month.
func (w *ReminderWorker) check(ctx context.Context) {
	month := report.MonthOf(time.Now().UTC())

	state, err := w.loadState(ctx)
	if err != nil {
		slog.Error("Failed to load reminder state", "error", err)
		return
	}
	if state.LastNotifiedMonth == month.String() {
		return
	}

	output, err := w.remindersUseCase.Execute(ctx, report.GetHabitualRemindersInput{
		Month: month,
	})
	if err != nil {
		slog.Error("Failed to compute habitual reminders", "error", err)
		return
	}
	if len(output.Missing) == 0 {
		return
	}

	if err := w.sendReminder(ctx, month, output.Missing); err != nil {
		slog.Error("Failed to send reminder email", "month", month.String(), "error", err)
		return
	}

	state.LastNotifiedMonth = month.String()
	if err := w.saveState(ctx, state); err != nil {
		slog.Error("Failed to save reminder state", "error", err)
		return
	}

	slog.Info("Reminder email sent",
		"month", month.String(),
		"missing", len(output.Missing),
	)
}

// sendReminder renders and sends the reminder email for the given month.
func (w *ReminderWorker) sendReminder(ctx context.Context, month report.Month, missing []*entity.Transaction) error {
	data := templates.HabitualReminderData{
		Month:    month.String(),
		Expenses: make([]templates.HabitualReminderExpense, 0, len(missing)),
	}

	total := decimal.Zero
	for _, t := range missing {
		data.Expenses = append(data.Expenses, templates.HabitualReminderExpense{
			Description: t.Description,
			Amount:      t.Amount.String(),
			Currency:    string(t.Currency),
		})
		if t.Currency != entity.CurrencyUSD {
			total = total.Add(t.Amount)
		}
	}
	data.TotalAmount = total.String() + " ARS"

	html, text, err := w.renderer.Render("habitual_reminder", data)
	if err != nil {
		return err
	}

	_, err = w.sender.Send(ctx, adapter.SendEmailInput{
		To:      w.toEmail,
		Subject: "Gastos habituales pendientes de " + month.String(),
		HTML:    html,
		Text:    text,
	})
	return err
}

// loadState reads the reminder state slot. An absent or undecodable slot
// yields the zero state.
func (w *ReminderWorker) loadState(ctx context.Context) (model.ReminderStateRecord, error) {
	var state model.ReminderStateRecord

	payload, err := w.store.Load(ctx, adapter.SlotReminders)
	if err != nil {
		if errors.Is(err, domainerror.ErrSlotNotFound) {
			return state, nil
		}
		return state, err
	}

	if err := json.Unmarshal(payload, &state); err != nil {
		slog.Warn("Discarding undecodable reminder state", "error", err)
		return model.ReminderStateRecord{}, nil
	}
	return state, nil
}

// saveState persists the reminder state slot.
func (w *ReminderWorker) saveState(ctx context.Context, state model.ReminderStateRecord) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return w.store.Save(ctx, adapter.SlotReminders, payload)
}

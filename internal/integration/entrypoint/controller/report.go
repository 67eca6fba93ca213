// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
	"github.com/mairuba/finanzas-backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase   *report.GetMonthlySummaryUseCase
	remindersUseCase *report.GetHabitualRemindersUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetMonthlySummaryUseCase,
	remindersUseCase *report.GetHabitualRemindersUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:   summaryUseCase,
		remindersUseCase: remindersUseCase,
	}
}

// Summary handles GET /reports/summary requests. The month query parameter
// selects the reference month (YYYY-MM) and defaults to the current one.
func (c *ReportController) Summary(ctx *gin.Context) {
	month, ok := parseMonthQuery(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetMonthlySummaryInput{
		Month: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// Reminders handles GET /reports/reminders requests.
func (c *ReportController) Reminders(ctx *gin.Context) {
	month, ok := parseMonthQuery(ctx)
	if !ok {
		return
	}

	output, err := c.remindersUseCase.Execute(ctx.Request.Context(), report.GetHabitualRemindersInput{
		Month: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute habitual reminders",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitualRemindersResponse(output))
}

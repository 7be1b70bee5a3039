package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentfolio/internal/analytics"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/pagination"
	"rentfolio/internal/services"
)

// DashboardHandler serves the dashboard statistics and summary snapshots.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	snapshotService  services.SnapshotServicer
	incomeMonths     int
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler. incomeMonths is the
// window of the income chart when no range is requested.
func NewDashboardHandler(dashboardService services.DashboardServicer, snapshotService services.SnapshotServicer, incomeMonths int) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		snapshotService:  snapshotService,
		incomeMonths:     incomeMonths,
		now:              time.Now,
	}
}

// GetOverview returns every dashboard figure at once
// @Summary     Dashboard overview
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Overview
// @Router      /dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetSummary returns the portfolio headline figures
// @Summary     Portfolio summary
// @Description Property, unit and tenant counts, rent income, expenses, net income and occupancy rate (null without units)
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} analytics.PortfolioSummary
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTrends compares this month with the last
// @Summary     Month-over-month trends
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} analytics.Trends
// @Router      /dashboard/trends [get]
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	trends, err := h.dashboardService.Trends(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// GetDistribution splits the portfolio into percentage shares
// @Summary     Distribution
// @Description Shares always sum to 100 unless the set is empty
// @Tags        dashboard
// @Produce     json
// @Param       partition path string true "property-types, occupancy or rent-collection"
// @Success     200 {array}  analytics.Share
// @Failure     404 {object} ErrorResponse "Unknown partition"
// @Router      /dashboard/distributions/{partition} [get]
func (h *DashboardHandler) GetDistribution(c *gin.Context) {
	shares, err := h.dashboardService.Distribution(analytics.Partition(c.Param("partition")))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partition": c.Param("partition"), "shares": shares})
}

// GetIncome returns monthly income and expenses
// @Summary     Income series
// @Description One zero-filled point per month; defaults to the trailing window ending this month
// @Tags        dashboard
// @Produce     json
// @Param       from query string false "First month (YYYY-MM)"
// @Param       to   query string false "Last month (YYYY-MM)"
// @Success     200 {object} analytics.IncomeSeries
// @Failure     400 {object} ErrorResponse "Invalid month or range"
// @Router      /dashboard/income [get]
func (h *DashboardHandler) GetIncome(c *gin.Context) {
	current := analytics.MonthOf(h.now())
	to, err := parseMonthQuery(c, "to", current)
	if err != nil {
		respondWithError(c, err)
		return
	}
	from, err := parseMonthQuery(c, "from", to.AddMonths(1-h.incomeMonths))
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.dashboardService.IncomeSeries(from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetActivities returns the newest feed entries
// @Summary     Recent activity
// @Tags        dashboard
// @Produce     json
// @Param       limit query int false "Number of entries"
// @Success     200 {array}  analytics.FeedEntry
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /dashboard/activities [get]
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > pagination.MaxPageSize {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	feed, err := h.dashboardService.RecentActivity(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": feed})
}

// GetPropertyPerformance returns per-property statistics
// @Summary     Property performance
// @Tags        dashboard
// @Produce     json
// @Success     200 {array} analytics.PropertyStats
// @Router      /dashboard/properties [get]
func (h *DashboardHandler) GetPropertyPerformance(c *gin.Context) {
	stats, err := h.dashboardService.PropertyPerformance()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": stats})
}

// GetSnapshots lists monthly summary snapshots
// @Summary     Summary snapshots
// @Tags        dashboard
// @Produce     json
// @Param       from_date query string false "Earliest snapshot (YYYY-MM-DD or RFC 3339)"
// @Param       to_date   query string false "Latest snapshot (YYYY-MM-DD or RFC 3339)"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.SummarySnapshot]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /dashboard/snapshots [get]
func (h *DashboardHandler) GetSnapshots(c *gin.Context) {
	from, err := parseOptionalTime(c.Query("from_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseOptionalTime(c.Query("to_date"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		respondWithError(c, apperrors.ErrInvalidDateRange)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.snapshotService.GetSnapshots(from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecordSnapshot stores the current summary for this month
// @Summary     Record a summary snapshot
// @Description Called by external schedulers; replaces this month's snapshot
// @Tags        dashboard
// @Produce     json
// @Security    PipelineAPIKey
// @Success     201 {object} models.SummarySnapshot
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /dashboard/snapshots [post]
func (h *DashboardHandler) RecordSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.RecordSnapshot(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

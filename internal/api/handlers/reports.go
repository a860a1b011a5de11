package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafisyahdn/go-dubbing-backend/internal/performance"
	"github.com/rafisyahdn/go-dubbing-backend/internal/service"
)

const dateLayout = "02-01-2006"

type ReportsHandler struct {
	Reports *service.ReportService
}

func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{Reports: reports}
}

// viewParams reads the shared filter query params: search, status, and either
// year+month or start/end (DD-MM-YYYY).
func viewParams(c *gin.Context) (performance.ViewParams, bool) {
	p := performance.ViewParams{
		Search:       c.Query("search"),
		StatusFilter: c.DefaultQuery("status", "all"),
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr != "" || monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return p, false
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return p, false
		}
		p.Year = year
		p.Month = time.Month(month)
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date format, use DD-MM-YYYY"})
			return p, false
		}
		p.Start = &start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date format, use DD-MM-YYYY"})
			return p, false
		}
		// inclusive end day
		end = end.AddDate(0, 0, 1)
		p.End = &end
	}

	return p, true
}

// GetLeaderboard returns ranked users with badges.
// GET /api/v1/reports/leaderboard
func (h *ReportsHandler) GetLeaderboard(c *gin.Context) {
	p, ok := viewParams(c)
	if !ok {
		return
	}

	ranked, err := h.Reports.Leaderboard(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(ranked), "users": ranked})
}

// GetCommission returns the flat-rate analytics table.
// GET /api/v1/reports/commission
func (h *ReportsHandler) GetCommission(c *gin.Context) {
	p, ok := viewParams(c)
	if !ok {
		return
	}

	rows, err := h.Reports.Commission(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "rows": rows})
}

// ExportCommission streams the commission table as a CSV attachment.
// GET /api/v1/reports/commission/export
func (h *ReportsHandler) ExportCommission(c *gin.Context) {
	p, ok := viewParams(c)
	if !ok {
		return
	}

	rows, err := h.Reports.CommissionCSV(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := "commission-report-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}

// GetSummary returns the dashboard headline totals.
// GET /api/v1/reports/summary
func (h *ReportsHandler) GetSummary(c *gin.Context) {
	summary, err := h.Reports.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetUserPayroll returns the experience-tiered payroll for one user.
// GET /api/v1/users/:id/payroll
func (h *ReportsHandler) GetUserPayroll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	p, ok := viewParams(c)
	if !ok {
		return
	}

	payroll, err := h.Reports.UserPayroll(c.Request.Context(), id, p)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payroll)
}

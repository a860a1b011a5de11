package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
	"github.com/rafisyahdn/go-dubbing-backend/internal/performance"
	"github.com/rafisyahdn/go-dubbing-backend/internal/service"
)

type stubSource struct {
	records []model.StatusRecord
}

func (s *stubSource) ListStatusRecords(ctx context.Context, from, to *time.Time) ([]model.StatusRecord, error) {
	return s.records, nil
}

func testRouter(records []model.StatusRecord) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewReportService(&stubSource{records: records}, performance.DefaultRateTable(), 0.80)
	h := NewReportsHandler(svc)

	r := gin.New()
	r.GET("/reports/leaderboard", h.GetLeaderboard)
	r.GET("/reports/commission", h.GetCommission)
	r.GET("/reports/commission/export", h.ExportCommission)
	r.GET("/reports/summary", h.GetSummary)
	r.GET("/users/:id/payroll", h.GetUserPayroll)
	return r
}

func fixture() []model.StatusRecord {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return []model.StatusRecord{
		{TaskID: 1, AssigneeID: 7, AssigneeName: "Ayu", Status: model.StatusCompleted, UpdatedAt: at, EstimatedHours: 10, Experience: model.ExperienceSenior},
		{TaskID: 2, AssigneeID: 8, AssigneeName: "Bram", Status: model.StatusToDo, UpdatedAt: at, EstimatedHours: 2},
	}
}

func TestGetLeaderboard(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/leaderboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Count int                      `json:"count"`
		Users []performance.RankedUser `json:"users"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 2 || resp.Users[0].UserID != 7 || resp.Users[0].Badge != performance.BadgeGold {
		t.Fatalf("unexpected leaderboard: %+v", resp)
	}
}

func TestGetLeaderboard_InvalidMonth(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/leaderboard?year=2026&month=13", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for month=13, got %d", w.Code)
	}
}

func TestGetCommission_BadDateFormat(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/commission?start=2026-03-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for ISO date (wants DD-MM-YYYY), got %d", w.Code)
	}
}

func TestExportCommission_CSV(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/commission/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), w.Body.String())
	}
	if !strings.HasPrefix(lines[0], "User ID,Name,") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	// Ayu: 10h x flat 5.00
	if !strings.Contains(lines[1], "50.00") {
		t.Fatalf("expected flat amount 50.00 in first row: %s", lines[1])
	}
}

func TestGetUserPayroll(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/7/payroll", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payroll model.PayrollSummary
	if err := json.Unmarshal(w.Body.Bytes(), &payroll); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	// senior tier: 10h x 8.00
	if payroll.HourlyRate != "8.00" || payroll.Amount != "80.00" {
		t.Fatalf("unexpected payroll: %+v", payroll)
	}
}

func TestGetUserPayroll_NotFound(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/999/payroll", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetSummary(t *testing.T) {
	r := testRouter(fixture())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sum model.ReportSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if sum.TotalUsers != 2 || sum.TotalPayout != "60.00" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

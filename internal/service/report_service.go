package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
	"github.com/rafisyahdn/go-dubbing-backend/internal/performance"
)

// RecordSource is the slice of the repository the report pipeline needs.
type RecordSource interface {
	ListStatusRecords(ctx context.Context, from, to *time.Time) ([]model.StatusRecord, error)
}

// ReportService runs the full pipeline (dedupe -> aggregate -> filter -> rank)
// over a fresh repository snapshot on every call.
type ReportService struct {
	Source           RecordSource
	Rates            performance.RateTable
	HighPerformerMin float64
}

func NewReportService(source RecordSource, rates performance.RateTable, highPerformerMin float64) *ReportService {
	return &ReportService{
		Source:           source,
		Rates:            rates,
		HighPerformerMin: highPerformerMin,
	}
}

func (s *ReportService) aggregates(ctx context.Context, p performance.ViewParams) ([]model.UserAggregate, error) {
	records, err := s.Source.ListStatusRecords(ctx, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	// The date window runs over raw records before dedup and aggregation;
	// when the window already bounded the repo query this is a no-op for
	// start/end and still applies any year/month selection.
	records = performance.Dedupe(performance.FilterRecords(records, p))
	return performance.AggregateList(records), nil
}

// Leaderboard returns ranked users with podium badges and the high-performer
// flag, after search/status/date filtering.
func (s *ReportService) Leaderboard(ctx context.Context, p performance.ViewParams) ([]performance.RankedUser, error) {
	aggs, err := s.aggregates(ctx, p)
	if err != nil {
		return nil, err
	}
	aggs = performance.FilterAggregates(aggs, p)
	return performance.Rank(aggs, s.HighPerformerMin), nil
}

// Commission builds the flat-rate analytics table: every user billed the
// flat commission rate regardless of experience level.
func (s *ReportService) Commission(ctx context.Context, p performance.ViewParams) ([]model.CommissionRow, error) {
	aggs, err := s.aggregates(ctx, p)
	if err != nil {
		return nil, err
	}
	aggs = performance.FilterAggregates(aggs, p)

	rows := make([]model.CommissionRow, 0, len(aggs))
	for _, a := range aggs {
		amount := s.Rates.Amount(a.TotalEstimatedHours, a.Experience, performance.PayPolicyFlat)
		rows = append(rows, model.CommissionRow{
			UserID:              a.UserID,
			DisplayName:         a.DisplayName,
			CompletedCount:      a.CompletedCount,
			TrackedCount:        a.TrackedCount(),
			TotalEstimatedHours: a.TotalEstimatedHours,
			TotalSpentHours:     a.TotalSpentHours,
			HourlyRate:          performance.FormatAmount(s.Rates.FlatCommission),
			Amount:              performance.FormatAmount(amount),
		})
	}
	return rows, nil
}

// CommissionCSV renders the commission table as CSV rows, header first.
func (s *ReportService) CommissionCSV(ctx context.Context, p performance.ViewParams) ([][]string, error) {
	rows, err := s.Commission(ctx, p)
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows)+1)
	out = append(out, []string{
		"User ID", "Name", "Completed", "Total Tasks",
		"Estimated Hours", "Spent Hours", "Hourly Rate", "Amount",
	})
	for _, row := range rows {
		out = append(out, []string{
			fmt.Sprintf("%d", row.UserID),
			row.DisplayName,
			fmt.Sprintf("%d", row.CompletedCount),
			fmt.Sprintf("%d", row.TrackedCount),
			fmt.Sprintf("%.2f", row.TotalEstimatedHours),
			fmt.Sprintf("%.2f", row.TotalSpentHours),
			row.HourlyRate,
			row.Amount,
		})
	}
	return out, nil
}

// UserPayroll builds the experience-tiered payroll summary for one user.
func (s *ReportService) UserPayroll(ctx context.Context, userID int64, p performance.ViewParams) (*model.PayrollSummary, error) {
	aggs, err := s.aggregates(ctx, p)
	if err != nil {
		return nil, err
	}

	for _, a := range aggs {
		if a.UserID != userID {
			continue
		}
		amount := s.Rates.Amount(a.TotalEstimatedHours, a.Experience, performance.PayPolicyTiered)
		return &model.PayrollSummary{
			UserID:              a.UserID,
			DisplayName:         a.DisplayName,
			Experience:          a.Experience,
			TodoCount:           a.TodoCount,
			InProgressCount:     a.InProgressCount,
			ReviewCount:         a.ReviewCount,
			CompletedCount:      a.CompletedCount,
			CompletionRate:      a.CompletionRate,
			TotalEstimatedHours: a.TotalEstimatedHours,
			TotalSpentHours:     a.TotalSpentHours,
			HourlyRate:          performance.FormatAmount(s.Rates.ForLevel(a.Experience)),
			Amount:              performance.FormatAmount(amount),
		}, nil
	}
	return nil, ErrUserNotFound
}

// Summary computes the dashboard headline totals. The payout total is the
// flat-rate commission summed at full precision and formatted once.
func (s *ReportService) Summary(ctx context.Context) (*model.ReportSummary, error) {
	aggs, err := s.aggregates(ctx, performance.ViewParams{})
	if err != nil {
		return nil, err
	}

	sum := &model.ReportSummary{TotalUsers: len(aggs)}
	payout := decimal.Zero
	for _, a := range aggs {
		sum.TotalRecords += a.TrackedCount()
		sum.TotalCompleted += a.CompletedCount
		sum.TotalEstimatedHours += a.TotalEstimatedHours
		sum.TotalSpentHours += a.TotalSpentHours
		payout = payout.Add(s.Rates.Amount(a.TotalEstimatedHours, a.Experience, performance.PayPolicyFlat))
	}
	sum.TotalPayout = performance.FormatAmount(payout)
	return sum, nil
}

var ErrUserNotFound = errors.New("user has no tracked records")

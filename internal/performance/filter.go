package performance

import (
	"strconv"
	"strings"
	"time"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

// ViewParams is the serializable view state (search box, status dropdown,
// date selection) a report request carries into the pipeline. The zero value
// filters nothing.
type ViewParams struct {
	Search string
	// StatusFilter passes users that have at least one record in that status;
	// "" or "all" passes everyone.
	StatusFilter string
	// Year/Month select a single calendar month of records.
	Year  int
	Month time.Month
	// Start/End bound records by UpdatedAt, inclusive start, exclusive end.
	Start *time.Time
	End   *time.Time
}

func (p ViewParams) hasWindow() bool {
	return (p.Year != 0 && p.Month != 0) || p.Start != nil || p.End != nil
}

// FilterRecords applies the date window to raw records before aggregation.
// Aggregating first and filtering after would conflate months, so this is the
// only filter that runs pre-aggregation. Records without a usable UpdatedAt
// are excluded once a window is set.
func FilterRecords(records []model.StatusRecord, p ViewParams) []model.StatusRecord {
	if !p.hasWindow() {
		return records
	}

	start, end := p.Start, p.End
	if p.Year != 0 && p.Month != 0 {
		s := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		e := s.AddDate(0, 1, 0)
		start, end = &s, &e
	}

	out := make([]model.StatusRecord, 0, len(records))
	for _, r := range records {
		if r.UpdatedAt.IsZero() {
			continue
		}
		if start != nil && r.UpdatedAt.Before(*start) {
			continue
		}
		if end != nil && !r.UpdatedAt.Before(*end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterAggregates applies the search and status filters to the aggregated
// users. All provided filters are AND-ed.
func FilterAggregates(users []model.UserAggregate, p ViewParams) []model.UserAggregate {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	status := model.StatusUnknown
	if f := strings.TrimSpace(p.StatusFilter); f != "" && !strings.EqualFold(f, "all") {
		status = model.ParseStatus(f)
	}

	out := make([]model.UserAggregate, 0, len(users))
	for _, u := range users {
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		// Presence, not majority: the user passes if any of their records sit
		// in the requested status.
		if status.Known() && u.CountFor(status) == 0 {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesSearch(u model.UserAggregate, search string) bool {
	if strings.Contains(strings.ToLower(u.DisplayName), search) {
		return true
	}
	return strings.Contains(strconv.FormatInt(u.UserID, 10), search)
}

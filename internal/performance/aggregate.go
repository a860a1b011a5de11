package performance

import (
	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

// AggregateList groups records by assignee and tallies per-user statistics.
// Users appear in first-seen input order, which downstream ranking relies on
// for its tie-break. Records with an unrecognized status are dropped from the
// counts and the completion-rate denominator, but their hours still sum into
// the user's totals. Call on deduplicated records.
func AggregateList(records []model.StatusRecord) []model.UserAggregate {
	byUser := make(map[int64]*model.UserAggregate, len(records))
	order := make([]int64, 0, len(records))

	for _, r := range records {
		agg, ok := byUser[r.AssigneeID]
		if !ok {
			agg = &model.UserAggregate{
				UserID:      r.AssigneeID,
				DisplayName: r.AssigneeName,
				AvatarURL:   r.AvatarURL,
			}
			byUser[r.AssigneeID] = agg
			order = append(order, r.AssigneeID)
		}
		if agg.DisplayName == "" {
			agg.DisplayName = r.AssigneeName
		}
		if agg.AvatarURL == "" {
			agg.AvatarURL = r.AvatarURL
		}
		// Experience level is per-user upstream; any record that carries one
		// sets it.
		if agg.Experience == model.ExperienceUnknown && r.Experience != model.ExperienceUnknown {
			agg.Experience = r.Experience
		}

		switch r.Status {
		case model.StatusToDo:
			agg.TodoCount++
		case model.StatusInProgress:
			agg.InProgressCount++
		case model.StatusReview:
			agg.ReviewCount++
		case model.StatusCompleted:
			agg.CompletedCount++
		}

		agg.TotalEstimatedHours += nonNegative(r.EstimatedHours)
		agg.TotalSpentHours += nonNegative(r.SpentHours)
	}

	out := make([]model.UserAggregate, 0, len(order))
	for _, id := range order {
		agg := byUser[id]
		if tracked := agg.TrackedCount(); tracked > 0 {
			agg.CompletionRate = float64(agg.CompletedCount) / float64(tracked)
		}
		out = append(out, *agg)
	}
	return out
}

// Aggregate is AggregateList keyed by user id.
func Aggregate(records []model.StatusRecord) map[int64]model.UserAggregate {
	list := AggregateList(records)
	out := make(map[int64]model.UserAggregate, len(list))
	for _, agg := range list {
		out[agg.UserID] = agg
	}
	return out
}

// Malformed numeric fields coerce to 0 upstream; NaN or negative values that
// slip through are treated the same way rather than corrupting a sum.
func nonNegative(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	return v
}

// Package performance implements the pure aggregation pipeline behind the
// dashboard reports: dedupe -> aggregate -> filter -> rank, plus the two
// pay policies. Nothing in this package performs I/O or mutates its input;
// every report request re-runs the pipeline over a fresh snapshot.
package performance

import (
	"sort"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

type recordKey struct {
	taskID     int64
	assigneeID int64
}

// Dedupe resolves duplicate status events for the same (task, assignee) pair
// with last-write-wins: only the record carrying the latest UpdatedAt
// survives. A zero UpdatedAt sorts as the oldest possible event and never
// beats a record with a real timestamp. The input slice is not modified.
func Dedupe(records []model.StatusRecord) []model.StatusRecord {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]model.StatusRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	seen := make(map[recordKey]struct{}, len(sorted))
	out := make([]model.StatusRecord, 0, len(sorted))
	for _, r := range sorted {
		k := recordKey{taskID: r.TaskID, assigneeID: r.AssigneeID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

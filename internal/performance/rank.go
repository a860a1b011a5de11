package performance

import (
	"sort"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

type Badge string

const (
	BadgeNone   Badge = ""
	BadgeGold   Badge = "gold"
	BadgeSilver Badge = "silver"
	BadgeBronze Badge = "bronze"
)

// DefaultHighPerformerMin is the completion rate from which a user is labeled
// a high performer, independent of rank.
const DefaultHighPerformerMin = 0.80

type RankedUser struct {
	model.UserAggregate
	Rank          int   `json:"rank"`
	Badge         Badge `json:"badge,omitempty"`
	HighPerformer bool  `json:"high_performer"`
}

// Rank orders users by completed-task count descending and assigns 1-based
// ranks with podium badges for the top 3. The sort is stable: ties keep their
// input order, there is no secondary key. highPerformerMin <= 0 falls back to
// the default threshold.
func Rank(users []model.UserAggregate, highPerformerMin float64) []RankedUser {
	if highPerformerMin <= 0 {
		highPerformerMin = DefaultHighPerformerMin
	}

	sorted := make([]model.UserAggregate, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedCount > sorted[j].CompletedCount
	})

	out := make([]RankedUser, len(sorted))
	for i, u := range sorted {
		out[i] = RankedUser{
			UserAggregate: u,
			Rank:          i + 1,
			Badge:         badgeFor(i + 1),
			HighPerformer: u.CompletionRate >= highPerformerMin,
		}
	}
	return out
}

func badgeFor(rank int) Badge {
	switch rank {
	case 1:
		return BadgeGold
	case 2:
		return BadgeSilver
	case 3:
		return BadgeBronze
	}
	return BadgeNone
}

package performance

import (
	"testing"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

func user(id int64, completed int, rate float64) model.UserAggregate {
	return model.UserAggregate{
		UserID:         id,
		CompletedCount: completed,
		CompletionRate: rate,
	}
}

func TestRank_StableTies(t *testing.T) {
	users := []model.UserAggregate{
		user(1, 5, 0),
		user(2, 5, 0),
		user(3, 2, 0),
	}

	ranked := Rank(users, 0)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked users, got %d", len(ranked))
	}
	wantOrder := []int64{1, 2, 3}
	for i, id := range wantOrder {
		if ranked[i].UserID != id {
			t.Fatalf("tie must keep input order, got user %d at rank %d", ranked[i].UserID, i+1)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, ranked[i].Rank)
		}
	}
}

func TestRank_Badges(t *testing.T) {
	users := []model.UserAggregate{
		user(1, 1, 0),
		user(2, 9, 0),
		user(3, 4, 0),
		user(4, 2, 0),
	}

	ranked := Rank(users, 0)
	want := map[int64]Badge{2: BadgeGold, 3: BadgeSilver, 4: BadgeBronze, 1: BadgeNone}
	for _, r := range ranked {
		if r.Badge != want[r.UserID] {
			t.Fatalf("user %d: expected badge %q, got %q", r.UserID, want[r.UserID], r.Badge)
		}
	}
}

func TestRank_HighPerformerIndependentOfRank(t *testing.T) {
	users := []model.UserAggregate{
		user(1, 10, 0.50), // rank 1, not a high performer
		user(2, 1, 0.80),  // last rank, exactly at threshold
	}

	ranked := Rank(users, 0)
	if ranked[0].UserID != 1 || ranked[0].HighPerformer {
		t.Fatalf("rank 1 below threshold must not be high performer: %+v", ranked[0])
	}
	if !ranked[1].HighPerformer {
		t.Fatalf("completion rate at threshold must be high performer: %+v", ranked[1])
	}
}

func TestRank_CustomThreshold(t *testing.T) {
	ranked := Rank([]model.UserAggregate{user(1, 1, 0.75)}, 0.70)
	if !ranked[0].HighPerformer {
		t.Fatal("expected high performer at custom threshold 0.70")
	}
}

func TestRank_InputNotMutated(t *testing.T) {
	users := []model.UserAggregate{user(1, 1, 0), user(2, 9, 0)}
	Rank(users, 0)
	if users[0].UserID != 1 || users[1].UserID != 2 {
		t.Fatal("input slice order was mutated")
	}
}

package query

import (
	"testing"

	"github.com/skarun/taskpad/internal/model"
)

func task(id int64, title string) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		CreatedAt: "2026-02-09T12:00:00Z",
		Priority:  model.PriorityMedium,
		Category:  model.CategoryUncategorized,
	}
}

func TestApplyHidesDone(t *testing.T) {
	a := task(1, "open")
	b := task(2, "closed")
	b.Done = true

	got := Apply([]model.Task{a, b}, Options{ShowDone: false, Category: CategoryAll, SortKey: SortCreated})
	for _, item := range got {
		if item.Done {
			t.Fatalf("done task leaked through filter: %+v", item)
		}
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("unexpected result: %+v", got)
	}

	got = Apply([]model.Task{a, b}, Options{ShowDone: true, Category: CategoryAll, SortKey: SortCreated})
	if len(got) != 2 {
		t.Fatalf("show done must keep both, got %+v", got)
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	a := task(1, "report")
	a.Category = model.CategoryWork
	b := task(2, "groceries")
	b.Category = model.CategoryShopping

	got := Apply([]model.Task{a, b}, Options{ShowDone: true, Category: "work", SortKey: SortCreated})
	if len(got) != 1 || got[0].Category != model.CategoryWork {
		t.Fatalf("unexpected work filter result: %+v", got)
	}

	got = Apply([]model.Task{a, b}, Options{ShowDone: true, Category: CategoryAll, SortKey: SortCreated})
	if len(got) != 2 {
		t.Fatalf("all must be a no-op filter, got %+v", got)
	}
}

func TestApplySortCreatedNewestFirst(t *testing.T) {
	old := task(1, "old")
	old.CreatedAt = "2026-02-01T00:00:00Z"
	recent := task(2, "recent")
	recent.CreatedAt = "2026-02-09T00:00:00Z"

	got := Apply([]model.Task{old, recent}, Options{ShowDone: true, Category: CategoryAll, SortKey: SortCreated})
	if got[0].ID != recent.ID || got[1].ID != old.ID {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestApplySortDueEmptyLast(t *testing.T) {
	none := task(1, "no due")
	late := task(2, "late")
	late.Due = "2026-03-01"
	soon := task(3, "soon")
	soon.Due = "2026-02-10"

	got := Apply([]model.Task{none, late, soon}, Options{ShowDone: true, Category: CategoryAll, SortKey: SortDue})
	want := []int64{soon.ID, late.ID, none.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("unexpected due order: %+v", got)
		}
	}
}

func TestApplySortPriorityStable(t *testing.T) {
	low := task(1, "low")
	low.Priority = model.PriorityLow
	med1 := task(2, "med first")
	med2 := task(3, "med second")
	high := task(4, "high")
	high.Priority = model.PriorityHigh

	got := Apply([]model.Task{low, med1, med2, high}, Options{ShowDone: true, Category: CategoryAll, SortKey: SortPriority})
	want := []int64{high.ID, med1.ID, med2.ID, low.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("unexpected priority order: %+v", got)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	a := task(1, "a")
	a.CreatedAt = "2026-02-01T00:00:00Z"
	b := task(2, "b")
	b.CreatedAt = "2026-02-09T00:00:00Z"
	in := []model.Task{a, b}

	Apply(in, Options{ShowDone: true, Category: CategoryAll, SortKey: SortCreated})
	if in[0].ID != a.ID || in[1].ID != b.ID {
		t.Fatalf("input mutated: %+v", in)
	}
}

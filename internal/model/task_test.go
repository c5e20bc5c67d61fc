package model

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        1768000000000,
		Title:     "Buy milk",
		CreatedAt: "2026-02-09T12:00:00Z",
		Due:       "2026-02-14",
		Priority:  PriorityHigh,
		Category:  CategoryShopping,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	task := Task{
		ID:        1768000000000,
		Title:     "Bad priority",
		CreatedAt: "2026-02-09T12:00:00Z",
		Priority:  Priority("Urgent"),
		Category:  CategoryWork,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.Priority = PriorityLow
	task.Category = Category("chores")
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got: %v", err)
	}
}

func TestTaskValidateDueFormat(t *testing.T) {
	task := Task{
		ID:        1768000000000,
		Title:     "Bad due",
		CreatedAt: "2026-02-09T12:00:00Z",
		Due:       "14/02/2026",
		Priority:  PriorityMedium,
		Category:  CategoryUncategorized,
	}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for malformed due date, got nil")
	}
	task.Due = ""
	if err := task.Validate(); err != nil {
		t.Fatalf("expected empty due to be valid, got: %v", err)
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() != 0 || PriorityMedium.Rank() != 1 || PriorityLow.Rank() != 2 {
		t.Fatalf("unexpected ranks: %d %d %d", PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("Whenever").Rank() != PriorityMedium.Rank() {
		t.Fatalf("unknown priority should rank as Medium, got %d", Priority("Whenever").Rank())
	}
}

func TestDeriveTitle(t *testing.T) {
	if got := DeriveTitle("  Call dentist  ", "long description"); got != "Call dentist" {
		t.Fatalf("expected trimmed title, got %q", got)
	}
	long := strings.Repeat("a", 80)
	got := DeriveTitle("", long)
	if got != strings.Repeat("a", 60)+"..." {
		t.Fatalf("expected truncated description prefix, got %q", got)
	}
	if got := DeriveTitle("", "short note"); got != "short note" {
		t.Fatalf("expected short description verbatim, got %q", got)
	}
}

func TestMatchCategory(t *testing.T) {
	if got := MatchCategory("Category: Work stuff"); got != CategoryWork {
		t.Fatalf("expected work, got %q", got)
	}
	if got := MatchCategory("this is PERSONAL"); got != CategoryPersonal {
		t.Fatalf("expected personal, got %q", got)
	}
	if got := MatchCategory("no idea"); got != CategoryOther {
		t.Fatalf("expected other fallback, got %q", got)
	}
	if got := MatchCategory("uncategorized"); got != CategoryOther {
		t.Fatalf("uncategorized must not match, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	task := Task{Priority: Priority("??"), Category: Category("??")}.Normalize()
	if task.Priority != PriorityMedium {
		t.Fatalf("expected Medium, got %q", task.Priority)
	}
	if task.Category != CategoryUncategorized {
		t.Fatalf("expected uncategorized, got %q", task.Category)
	}
}

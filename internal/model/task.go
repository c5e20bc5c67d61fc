package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidCategory = errors.New("model: invalid task category")
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting. Unknown values rank as Medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

type Category string

const (
	CategoryUncategorized Category = "uncategorized"
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategoryShopping      Category = "shopping"
	CategoryErrands       Category = "errands"
	CategoryLearning      Category = "learning"
	CategoryOther         Category = "other"
)

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func Categories() []Category {
	return []Category{
		CategoryUncategorized,
		CategoryWork,
		CategoryPersonal,
		CategoryShopping,
		CategoryErrands,
		CategoryLearning,
		CategoryOther,
	}
}

// MatchCategory scans free-form text for the first category it mentions,
// case-insensitively. Text that names none of them maps to CategoryOther.
// The uncategorized value is never matched; it is a storage default, not
// something an assistant answer would contain.
func MatchCategory(text string) Category {
	lowered := strings.ToLower(text)
	for _, c := range Categories() {
		if c == CategoryUncategorized {
			continue
		}
		if strings.Contains(lowered, string(c)) {
			return c
		}
	}
	return CategoryOther
}

// DueLayout is the wire format for Task.Due.
const DueLayout = "2006-01-02"

// Task is the sole persisted entity. JSON tags define the on-disk format.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	Due         string   `json:"due"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
	Done        bool     `json:"done"`
}

const derivedTitleLimit = 60

// DeriveTitle returns the title to store for a new task: the trimmed title
// when present, otherwise a truncated prefix of the description.
func DeriveTitle(title, description string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed != "" {
		return trimmed
	}
	desc := strings.TrimSpace(description)
	runes := []rune(desc)
	if len(runes) <= derivedTitleLimit {
		return desc
	}
	return string(runes[:derivedTitleLimit]) + "..."
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.CreatedAt == "" {
		return errors.New("model: task created_at is required")
	}
	if _, err := time.Parse(time.RFC3339, t.CreatedAt); err != nil {
		return fmt.Errorf("model: task created_at is not RFC 3339: %w", err)
	}
	if t.Due != "" {
		if _, err := time.Parse(DueLayout, t.Due); err != nil {
			return fmt.Errorf("model: task due is not YYYY-MM-DD: %w", err)
		}
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	return nil
}

// Normalize coerces out-of-enum values read from older or hand-edited files
// back into the enum so the rest of the program never sees them.
func (t Task) Normalize() Task {
	if !t.Priority.IsValid() {
		t.Priority = PriorityMedium
	}
	if !t.Category.IsValid() {
		t.Category = CategoryUncategorized
	}
	return t
}

// Package query computes the read-only projection the list view renders:
// filtering by completion and category, then a stable sort by one key.
package query

import (
	"sort"

	"github.com/skarun/taskpad/internal/model"
)

type SortKey string

const (
	SortCreated  SortKey = "created"
	SortDue      SortKey = "due"
	SortPriority SortKey = "priority"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortCreated, SortDue, SortPriority:
		return true
	default:
		return false
	}
}

// CategoryAll disables category filtering.
const CategoryAll = "all"

type Options struct {
	ShowDone bool
	Category string
	SortKey  SortKey
}

// dueSentinel sorts tasks without a due date after every real date.
const dueSentinel = "9999-99-99"

// Apply filters then sorts. The input slice is never mutated and equal keys
// keep their relative order.
func Apply(tasks []model.Task, opts Options) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !opts.ShowDone && t.Done {
			continue
		}
		if opts.Category != "" && opts.Category != CategoryAll && string(t.Category) != opts.Category {
			continue
		}
		out = append(out, t)
	}

	switch opts.SortKey {
	case SortDue:
		sort.SliceStable(out, func(i, j int) bool {
			return dueKey(out[i]) < dueKey(out[j])
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	default:
		// newest first; RFC 3339 UTC strings compare chronologically
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}
	return out
}

func dueKey(t model.Task) string {
	if t.Due == "" {
		return dueSentinel
	}
	return t.Due
}

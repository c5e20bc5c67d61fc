package storage

import (
	"errors"

	"github.com/skarun/taskpad/internal/model"
)

var ErrEmptyTask = errors.New("storage: task needs a title or a description")

// TaskPatch names the fields an edit may overwrite. Nil fields are left
// untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Due         *string
	Priority    *model.Priority
	Category    *model.Category
}

// LoadSource tags where the in-memory task list came from, so callers can
// tell an empty store apart from a file that failed to parse.
type LoadSource string

const (
	LoadSourceFile    LoadSource = "file"
	LoadSourceMissing LoadSource = "missing"
	LoadSourceCorrupt LoadSource = "corrupt"
)

type LoadResult struct {
	Source LoadSource
	Count  int
	Err    error
}

// Repository owns the ordered task list and its persistence. Every mutation
// rewrites the whole backing file; lookups on an id that is gone are silent
// no-ops.
type Repository interface {
	Load() LoadResult
	Tasks() []model.Task
	Add(in model.Task) (model.Task, error)
	Update(id int64, patch TaskPatch) error
	Delete(id int64) error
	MoveToTop(id int64) error
	SetDone(id int64, done bool) error
	Save() error
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/skarun/taskpad/internal/model"
)

// FileRepository keeps the authoritative task list in memory and mirrors it
// to a pretty-printed JSON array on disk. Single process, single writer; no
// locking.
type FileRepository struct {
	path   string
	logger *log.Logger
	now    func() time.Time
	tasks  []model.Task
	lastID int64
}

func NewFileRepository(path string, logger *log.Logger) *FileRepository {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &FileRepository{
		path:   path,
		logger: logger.WithPrefix("storage"),
		now:    time.Now,
	}
}

// Load reads the backing file into memory. A missing or unparsable file
// yields an empty list; the outcome is tagged rather than returned as an
// error because neither case is fatal.
func (r *FileRepository) Load() LoadResult {
	r.tasks = nil
	r.lastID = 0

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Source: LoadSourceMissing}
		}
		r.logger.Warn("task file unreadable, starting empty", "path", r.path, "err", err)
		return LoadResult{Source: LoadSourceCorrupt, Err: err}
	}

	if err := validateTaskDocument(raw); err != nil {
		r.logger.Warn("task file failed validation, starting empty", "path", r.path, "err", err)
		return LoadResult{Source: LoadSourceCorrupt, Err: err}
	}

	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		r.logger.Warn("task file failed to decode, starting empty", "path", r.path, "err", err)
		return LoadResult{Source: LoadSourceCorrupt, Err: err}
	}

	for i, t := range tasks {
		tasks[i] = t.Normalize()
		if t.ID > r.lastID {
			r.lastID = t.ID
		}
	}
	r.tasks = tasks
	return LoadResult{Source: LoadSourceFile, Count: len(tasks)}
}

// Tasks returns a copy of the ordered list; callers never see the backing
// slice.
func (r *FileRepository) Tasks() []model.Task {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *FileRepository) Add(in model.Task) (model.Task, error) {
	in.Title = model.DeriveTitle(in.Title, in.Description)
	if in.Title == "" {
		return model.Task{}, ErrEmptyTask
	}
	in.ID = r.nextID()
	in.CreatedAt = r.now().UTC().Format(time.RFC3339)
	in.Done = false
	in = in.Normalize()

	r.tasks = append(r.tasks, in)
	if err := r.Save(); err != nil {
		return model.Task{}, err
	}
	return in, nil
}

func (r *FileRepository) Update(id int64, patch TaskPatch) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	t := r.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Due != nil {
		t.Due = *patch.Due
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	r.tasks[idx] = t.Normalize()
	return r.Save()
}

func (r *FileRepository) Delete(id int64) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return r.Save()
}

func (r *FileRepository) MoveToTop(id int64) error {
	idx := r.indexOf(id)
	if idx <= 0 {
		return nil
	}
	t := r.tasks[idx]
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	r.tasks = append([]model.Task{t}, r.tasks...)
	return r.Save()
}

func (r *FileRepository) SetDone(id int64, done bool) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	if r.tasks[idx].Done == done {
		return nil
	}
	r.tasks[idx].Done = done
	return r.Save()
}

// Save rewrites the whole file. Write-to-temp plus rename keeps readers from
// ever seeing a half-written array.
func (r *FileRepository) Save() error {
	dir := filepath.Dir(r.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create data dir: %w", err)
		}
	}
	tasks := r.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode tasks: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("storage: write tasks: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("storage: replace tasks file: %w", err)
	}
	return nil
}

func (r *FileRepository) indexOf(id int64) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID is the millisecond timestamp of the injected clock, bumped past the
// previously issued id when two adds land on the same tick.
func (r *FileRepository) nextID() int64 {
	id := r.now().UTC().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

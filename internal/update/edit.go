package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skarun/taskpad/internal/model"
	"github.com/skarun/taskpad/internal/storage"
)

// beginEdit copies the cursor task into the form state and switches to the
// edit panel.
func (m Model) beginEdit() (Model, tea.Cmd) {
	task, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	f := newFormState()
	f.editingID = task.ID
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.due.SetValue(task.Due)
	for i, p := range model.Priorities() {
		if p == task.Priority {
			f.priorityIdx = i
		}
	}
	for i, c := range model.Categories() {
		if c == task.Category {
			f.categoryIdx = i
		}
	}
	m.form = f
	m.Mode = ModeEdit
	m.Status = StatusBar{Text: "editing task"}
	return m, nil
}

func (m Model) saveEdit(title, description, due string) (Model, tea.Cmd) {
	// the invariant is a non-empty title, so a blanked title field falls
	// back to the description prefix
	finalTitle := model.DeriveTitle(title, description)
	priority := m.form.priority()
	category := m.form.category()

	err := m.repo.Update(m.form.editingID, storage.TaskPatch{
		Title:       &finalTitle,
		Description: &description,
		Due:         &due,
		Priority:    &priority,
		Category:    &category,
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.logger.Info("task updated", "id", m.form.editingID)
	m.Mode = ModeList
	m.form = newFormState()
	m.assistBusy = false
	m.refresh()
	m.Status = StatusBar{Text: "saved"}
	return m, nil
}

package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skarun/taskpad/internal/model"
	"github.com/skarun/taskpad/internal/query"
)

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Up:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case m.Keys.Down:
		if m.Cursor < len(m.Visible)-1 {
			m.Cursor++
		}
	case m.Keys.Add:
		m.Mode = ModeForm
		m.form = newFormState()
		m.Status = StatusBar{Text: "adding a task"}
	case m.Keys.Toggle:
		return m.toggleDone()
	case m.Keys.Edit:
		return m.beginEdit()
	case m.Keys.Delete:
		return m.deleteTask()
	case m.Keys.MoveToTop:
		return m.moveToTop()
	case m.Keys.ShowDone:
		m.Filters.ShowDone = !m.Filters.ShowDone
		m.refresh()
		if m.Filters.ShowDone {
			m.Status = StatusBar{Text: "showing done tasks"}
		} else {
			m.Status = StatusBar{Text: "hiding done tasks"}
		}
	case m.Keys.CycleCat:
		m.Filters.Category = nextCategoryFilter(m.Filters.Category)
		m.refresh()
		m.Status = StatusBar{Text: "category: " + m.Filters.Category}
	case m.Keys.CycleSort:
		m.Filters.SortKey = nextSortKey(m.Filters.SortKey)
		m.refresh()
		m.Status = StatusBar{Text: "sorted by " + string(m.Filters.SortKey)}
	}
	return m, nil
}

func (m Model) toggleDone() (Model, tea.Cmd) {
	task, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if err := m.repo.SetDone(task.ID, !task.Done); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.refresh()
	if task.Done {
		m.Status = StatusBar{Text: "marked pending"}
	} else {
		m.Status = StatusBar{Text: "marked done"}
	}
	return m, nil
}

func (m Model) deleteTask() (Model, tea.Cmd) {
	task, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if err := m.repo.Delete(task.ID); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.logger.Info("task deleted", "id", task.ID)
	m.refresh()
	m.Status = StatusBar{Text: "deleted"}
	return m, nil
}

func (m Model) moveToTop() (Model, tea.Cmd) {
	task, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if err := m.repo.MoveToTop(task.ID); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.refresh()
	m.Status = StatusBar{Text: "moved to top"}
	return m, nil
}

func nextCategoryFilter(current string) string {
	options := []string{query.CategoryAll}
	for _, c := range model.Categories() {
		options = append(options, string(c))
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return query.CategoryAll
}

func nextSortKey(current query.SortKey) query.SortKey {
	switch current {
	case query.SortCreated:
		return query.SortDue
	case query.SortDue:
		return query.SortPriority
	default:
		return query.SortCreated
	}
}

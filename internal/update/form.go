package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skarun/taskpad/internal/model"
)

// handleFormKey drives both the add panel and the edit panel; the two differ
// only in what enter does with the collected fields.
func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Cancel:
		m.Mode = ModeList
		m.form = newFormState()
		m.assistBusy = false
		m.Status = StatusBar{Text: "cancelled"}
		return m, nil
	case m.Keys.NextField:
		m.form = m.form.focusNext()
		return m, nil
	case m.Keys.PrevField:
		m.form = m.form.focusPrev()
		return m, nil
	case m.Keys.Suggest:
		return m.startSuggestTitle()
	case m.Keys.Categorize:
		return m.startCategorize()
	case m.Keys.Confirm:
		// enter edits inside the description textarea instead of submitting
		if m.form.focus == fieldDescription {
			break
		}
		return m.submitForm()
	}

	switch m.form.focus {
	case fieldPriority:
		m.form = m.form.cycleSelector(msg.String())
		return m, nil
	case fieldCategory:
		m.form = m.form.cycleSelector(msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDescription:
		m.form.description, cmd = m.form.description.Update(msg)
	case fieldDue:
		m.form.due, cmd = m.form.due.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (Model, tea.Cmd) {
	title := strings.TrimSpace(m.form.title.Value())
	description := strings.TrimSpace(m.form.description.Value())
	due := strings.TrimSpace(m.form.due.Value())

	if title == "" && description == "" {
		m.Status = StatusBar{Text: "please provide at least a title or description", IsError: true}
		return m, nil
	}
	if due != "" {
		if _, err := time.Parse(model.DueLayout, due); err != nil {
			m.Status = StatusBar{Text: "due date must be YYYY-MM-DD", IsError: true}
			return m, nil
		}
	}

	if m.Mode == ModeEdit {
		return m.saveEdit(title, description, due)
	}

	added, err := m.repo.Add(model.Task{
		Title:       title,
		Description: description,
		Due:         due,
		Priority:    m.form.priority(),
		Category:    m.form.category(),
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.logger.Info("task added", "id", added.ID)
	m.Mode = ModeList
	m.form = newFormState()
	m.assistBusy = false
	m.refresh()
	m.Status = StatusBar{Text: "task added"}
	return m, nil
}

func (m Model) startSuggestTitle() (Model, tea.Cmd) {
	if m.assist == nil || !m.assist.Enabled() {
		m.Status = StatusBar{Text: "AI features are disabled"}
		return m, nil
	}
	description := strings.TrimSpace(m.form.description.Value())
	if description == "" {
		m.Status = StatusBar{Text: "write a description first"}
		return m, nil
	}
	if m.assistBusy {
		return m, nil
	}
	m.assistBusy = true
	m.Status = StatusBar{Text: "asking for a title suggestion"}
	call := m.assist.SuggestTitleCmd(description)
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		title, err := call()
		return SuggestTitleMsg{Title: title, Err: err}
	})
}

func (m Model) startCategorize() (Model, tea.Cmd) {
	if m.assist == nil || !m.assist.Enabled() {
		m.Status = StatusBar{Text: "AI features are disabled"}
		return m, nil
	}
	title := strings.TrimSpace(m.form.title.Value())
	description := strings.TrimSpace(m.form.description.Value())
	if title == "" && description == "" {
		m.Status = StatusBar{Text: "write a title or description first"}
		return m, nil
	}
	if m.assistBusy {
		return m, nil
	}
	m.assistBusy = true
	m.Status = StatusBar{Text: "asking for a category"}
	call := m.assist.CategorizeCmd(title, description)
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		category, err := call()
		return CategorizeMsg{Category: category, Err: err}
	})
}

func (m Model) applySuggestTitle(msg SuggestTitleMsg) Model {
	m.assistBusy = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: "couldn't get a suggestion", IsError: true}
		return m
	}
	if msg.Title == "" {
		m.Status = StatusBar{Text: "no suggestion available"}
		return m
	}
	m.form.title.SetValue(msg.Title)
	m.Status = StatusBar{Text: "title suggested"}
	return m
}

func (m Model) applyCategorize(msg CategorizeMsg) Model {
	m.assistBusy = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: "couldn't get a category", IsError: true}
		return m
	}
	if msg.Category == "" {
		m.Status = StatusBar{Text: "no category available"}
		return m
	}
	for i, c := range model.Categories() {
		if c == msg.Category {
			m.form.categoryIdx = i
			break
		}
	}
	m.Status = StatusBar{Text: "category set to " + string(msg.Category)}
	return m
}

func (f formState) focusNext() formState {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f formState) focusPrev() formState {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f formState) setFocus(target formField) formState {
	f.focus = target
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	switch target {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldDue:
		f.due.Focus()
	}
	return f
}

// cycleSelector moves the priority or category selector with the left/right
// (or h/l) keys.
func (f formState) cycleSelector(keyStr string) formState {
	delta := 0
	switch keyStr {
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	default:
		return f
	}
	switch f.focus {
	case fieldPriority:
		n := len(model.Priorities())
		f.priorityIdx = (f.priorityIdx + delta + n) % n
	case fieldCategory:
		n := len(model.Categories())
		f.categoryIdx = (f.categoryIdx + delta + n) % n
	}
	return f
}

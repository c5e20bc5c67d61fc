package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skarun/taskpad/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Mode == ModeForm || m.Mode == ModeEdit {
			return m.handleFormKey(typed)
		}

		switch keyStr {
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		case m.Keys.Palette:
			m.Palette.Active = true
			m.paletteInput.SetValue("")
			m.paletteInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Help:
			m.helpModel.ShowAll = !m.helpModel.ShowAll
			return m, nil
		}
		return m.handleListKey(typed)

	case spinner.TickMsg:
		if m.assistBusy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(typed)
			return m, cmd
		}
	case SuggestTitleMsg:
		return m.applySuggestTitle(typed), nil
	case CategorizeMsg:
		return m.applyCategorize(typed), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	items := make([]views.TaskItemData, 0, len(m.Visible))
	for _, t := range m.Visible {
		items = append(items, views.TaskItemData{
			ID:       t.ID,
			Title:    t.Title,
			Category: string(t.Category),
			Priority: string(t.Priority),
			Due:      t.Due,
			Done:     t.Done,
		})
	}
	mainPane := views.RenderListPanel(views.ListPanelData{
		Items:      items,
		Cursor:     m.Cursor,
		ShowDone:   m.Filters.ShowDone,
		Category:   m.Filters.Category,
		SortKey:    string(m.Filters.SortKey),
		TotalCount: len(m.Tasks),
	})

	sidePane := ""
	switch m.Mode {
	case ModeForm:
		sidePane = views.RenderFormPanel(views.FormPanelData{
			TitleView:       m.form.title.View(),
			DescriptionView: m.form.description.View(),
			DueView:         m.form.due.View(),
			Priority:        string(m.form.priority()),
			Category:        string(m.form.category()),
			FocusedField:    m.form.focus.name(),
			AssistBusy:      m.assistBusy,
			SpinnerView:     m.spin.View(),
			AssistEnabled:   m.assist != nil && m.assist.Enabled(),
		})
	case ModeEdit:
		sidePane = views.RenderEditPanel(views.EditPanelData{
			TaskID:          m.form.editingID,
			TitleView:       m.form.title.View(),
			DescriptionView: m.form.description.View(),
			DueView:         m.form.due.View(),
			Priority:        string(m.form.priority()),
			Category:        string(m.form.category()),
			FocusedField:    m.form.focus.name(),
			MarkdownPreview: views.RenderMarkdown(m.form.description.Value()),
		})
	}
	if m.Palette.Active {
		palette := views.RenderCommandPalette(true, m.paletteInput.View())
		if sidePane == "" {
			sidePane = palette
		} else {
			sidePane = palette + "\n" + sidePane
		}
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     "taskpad | smart to-do list",
		MainPane:   mainPane,
		SidePane:   sidePane,
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer: views.RenderFooter(views.FooterData{
			DataFile:      m.dataFile,
			AssistEnabled: m.assist != nil && m.assist.Enabled(),
			HelpView:      m.helpModel.View(m.helpKeys),
		}),
	})
}

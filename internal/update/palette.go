package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skarun/taskpad/internal/commands"
	"github.com/skarun/taskpad/internal/model"
	"github.com/skarun/taskpad/internal/query"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.Cancel:
		m.Palette.Active = false
		m.paletteInput.SetValue("")
		m.paletteInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case m.Keys.Confirm:
		m = m.executePaletteCommand(m.paletteInput.Value())
	default:
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) executePaletteCommand(raw string) Model {
	m.Palette.Active = false
	m.paletteInput.SetValue("")
	m.paletteInput.Blur()

	cmd, err := commands.Parse(strings.TrimSpace(raw))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			added, err := m.repo.Add(model.Task{Title: a.Title})
			if err != nil {
				return commands.Result{}, err
			}
			m.refresh()
			return commands.Result{Message: fmt.Sprintf("added: %s", added.Title)}, nil
		},
		Sort: func(s commands.SortArgs) (commands.Result, error) {
			m.Filters.SortKey = query.SortKey(s.Key)
			m.refresh()
			return commands.Result{Message: "sorted by " + s.Key}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.Filters.Category = f.Category
			m.refresh()
			return commands.Result{Message: "category: " + f.Category}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			m.Filters.ShowDone = s.Mode == "done"
			m.refresh()
			return commands.Result{Message: "show " + s.Mode}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}
	return m
}

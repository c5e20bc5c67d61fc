package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID       int64
	Title    string
	Category string
	Priority string
	Due      string
	Done     bool
}

type ListPanelData struct {
	Items      []TaskItemData
	Cursor     int
	ShowDone   bool
	Category   string
	SortKey    string
	TotalCount int
}

type FormPanelData struct {
	TitleView       string
	DescriptionView string
	DueView         string
	Priority        string
	Category        string
	FocusedField    string
	AssistBusy      bool
	SpinnerView     string
	AssistEnabled   bool
}

type EditPanelData struct {
	TaskID          int64
	TitleView       string
	DescriptionView string
	DueView         string
	Priority        string
	Category        string
	FocusedField    string
	MarkdownPreview string
}

type FooterData struct {
	DataFile      string
	AssistEnabled bool
	HelpView      string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks (%d of %d):\n", len(data.Items), data.TotalCount))
	b.WriteString(fmt.Sprintf("filters: done=%s category=%s sort=%s\n",
		onOff(data.ShowDone), data.Category, data.SortKey))
	b.WriteString("actions: [space]done [e]edit [d]delete [t]top [a]add\n")

	if len(data.Items) == 0 {
		b.WriteString("(no tasks found)")
		return strings.TrimSpace(b.String())
	}

	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		title := item.Title
		if item.Done {
			check = "[x]"
			title = doneStyle.Render(title)
		}
		meta := fmt.Sprintf("[%s] %s", item.Category, item.Priority)
		if item.Due != "" {
			meta += " due " + item.Due
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n", cursor, check, title, meta))
	}
	return strings.TrimSpace(b.String())
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString("add a task:\n")
	b.WriteString(field("title", data.TitleView, data.FocusedField == "title"))
	b.WriteString(field("description", data.DescriptionView, data.FocusedField == "description"))
	b.WriteString(field("due", data.DueView, data.FocusedField == "due"))
	b.WriteString(selector("priority", data.Priority, data.FocusedField == "priority"))
	b.WriteString(selector("category", data.Category, data.FocusedField == "category"))
	if data.AssistBusy {
		b.WriteString(fmt.Sprintf("%s asking the assistant...\n", data.SpinnerView))
	} else if data.AssistEnabled {
		b.WriteString("assist: [ctrl+s]suggest-title [ctrl+g]categorize\n")
	}
	b.WriteString("actions: [tab]next [enter]save [esc]cancel")
	return strings.TrimSpace(b.String())
}

func RenderEditPanel(data EditPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("edit task %d:\n", data.TaskID))
	b.WriteString(field("title", data.TitleView, data.FocusedField == "title"))
	b.WriteString(field("description", data.DescriptionView, data.FocusedField == "description"))
	b.WriteString(field("due", data.DueView, data.FocusedField == "due"))
	b.WriteString(selector("priority", data.Priority, data.FocusedField == "priority"))
	b.WriteString(selector("category", data.Category, data.FocusedField == "category"))
	if data.MarkdownPreview != "" {
		b.WriteString("preview:\n" + data.MarkdownPreview + "\n")
	}
	b.WriteString("actions: [tab]next [enter]save [esc]cancel")
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderFooter(data FooterData) string {
	var b strings.Builder
	b.WriteString("data stored locally in " + data.DataFile + "\n")
	if data.AssistEnabled {
		b.WriteString("AI features enabled\n")
	} else {
		b.WriteString("AI features disabled - set TASKPAD_API_KEY to enable smart features\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

func field(name, view string, focused bool) string {
	marker := " "
	if focused {
		marker = ">"
	}
	return fmt.Sprintf("%s %s: %s\n", marker, name, view)
}

func selector(name, value string, focused bool) string {
	marker := " "
	if focused {
		marker = ">"
	}
	return fmt.Sprintf("%s %s: < %s >\n", marker, name, value)
}

func onOff(v bool) string {
	if v {
		return "shown"
	}
	return "hidden"
}
